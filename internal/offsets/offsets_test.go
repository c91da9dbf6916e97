package offsets

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var testSigs = []Signature{
	{Name: "alpha", Pattern: "48 8B ?? 05"},
	{Name: "beta", Pattern: "C3 CC ? CC", Offset: 1},
}

func TestScan(t *testing.T) {
	image := []byte{0x90, 0x48, 0x8B, 0x48, 0x8B, 0x0D, 0x05, 0x00, 0xC3, 0xCC, 0x01, 0xCC}
	found, err := Scan(image, testSigs)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"alpha": 3, "beta": 9}, found)
}

func TestScanReportsMissing(t *testing.T) {
	found, err := Scan([]byte{0x48, 0x8B, 0x00, 0x06}, testSigs)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "alpha")
	require.Contains(t, err.Error(), "beta")
	require.Empty(t, found)
}

func TestScanRejectsMalformedPatterns(t *testing.T) {
	for _, pattern := range []string{"", "48 XY", "?? 48", "480"} {
		_, err := Scan([]byte{0x48}, []Signature{{Name: "bad", Pattern: pattern}})
		require.Error(t, err, pattern)
		require.False(t, errors.Is(err, ErrNotFound), pattern)
	}
}

func TestScanPatternAtEnd(t *testing.T) {
	found, err := Scan([]byte{0x00, 0x00, 0x48, 0x8B, 0x11, 0x05}, testSigs[:1])
	require.NoError(t, err)
	require.Equal(t, 2, found["alpha"])
}

// buildPE assembles a minimal PE image with one section.
func buildPE(t *testing.T, name string, characteristics uint32, code []byte) []byte {
	t.Helper()
	const (
		peOffset   = 0x40
		dataOffset = 0x200
	)
	var buf bytes.Buffer
	dos := make([]byte, peOffset)
	dos[0], dos[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(dos[0x3c:], peOffset)
	buf.Write(dos)
	buf.WriteString("PE\x00\x00")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, pe.FileHeader{
		Machine:          pe.IMAGE_FILE_MACHINE_AMD64,
		NumberOfSections: 1,
		Characteristics:  pe.IMAGE_FILE_EXECUTABLE_IMAGE,
	}))
	var sh pe.SectionHeader32
	copy(sh.Name[:], name)
	sh.VirtualSize = uint32(len(code))
	sh.VirtualAddress = 0x1000
	sh.SizeOfRawData = uint32(len(code))
	sh.PointerToRawData = dataOffset
	sh.Characteristics = characteristics
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, sh))
	buf.Write(make([]byte, dataOffset-buf.Len()))
	buf.Write(code)
	return buf.Bytes()
}

func TestFromPE(t *testing.T) {
	code := []byte{0xCC, 0xCC, 0x48, 0x8B, 0x05, 0x05, 0xC3, 0xCC, 0x00, 0xCC}
	image := buildPE(t, ".text", pe.IMAGE_SCN_CNT_CODE|pe.IMAGE_SCN_MEM_EXECUTE|pe.IMAGE_SCN_MEM_READ, code)
	offs, err := FromPE(bytes.NewReader(image), testSigs)
	require.NoError(t, err)
	require.Equal(t, Offsets{"alpha": 0x1002, "beta": 0x1007}, offs)
}

func TestFromPESkipsDataSections(t *testing.T) {
	code := []byte{0x48, 0x8B, 0x05, 0x05, 0xC3, 0xCC, 0x00, 0xCC}
	image := buildPE(t, ".data", pe.IMAGE_SCN_CNT_INITIALIZED_DATA|pe.IMAGE_SCN_MEM_READ, code)
	_, err := FromPE(bytes.NewReader(image), testSigs)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFromPERejectsGarbage(t *testing.T) {
	image := make([]byte, 128)
	image[0], image[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(image[0x3c:], 0x40)
	_, err := FromPE(bytes.NewReader(image), testSigs)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestStaticProvider(t *testing.T) {
	offs, err := Static{Values: Offsets{"alpha": 1}}.Offsets()
	require.NoError(t, err)
	require.Equal(t, uint32(1), offs["alpha"])

	_, err = Static{Err: ErrNotFound}.Offsets()
	require.ErrorIs(t, err, ErrNotFound)
}
