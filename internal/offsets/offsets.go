// Package offsets discovers addresses inside the host executable which the
// native core patches. Addresses are found by scanning the executable
// sections of the host image for byte signatures and reported as RVAs.
package offsets

import (
	"bytes"
	"debug/pe"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.offsets")
}

// ErrNotFound is wrapped by errors for signatures missing from an image.
var ErrNotFound = errors.New("signature not found")

// Offsets maps signature names to relative virtual addresses.
type Offsets map[string]uint32

// Provider discovers process offsets.
type Provider interface {
	Offsets() (Offsets, error)
}

// Signature is a named byte pattern in IDA notation: hex bytes separated by
// blanks, "?" or "??" for wildcard bytes. Offset is added to the position
// of the first pattern byte.
type Signature struct {
	Name    string
	Pattern string
	Offset  int
}

type compiled struct {
	bytes []byte
	mask  []bool // true for bytes which must match
}

func compile(sig Signature) (compiled, error) {
	fields := strings.Fields(sig.Pattern)
	if len(fields) == 0 {
		return compiled{}, fmt.Errorf("signature %s: empty pattern", sig.Name)
	}
	c := compiled{bytes: make([]byte, len(fields)), mask: make([]bool, len(fields))}
	for i, f := range fields {
		if f == "?" || f == "??" {
			continue
		}
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return compiled{}, fmt.Errorf("signature %s: malformed byte %q", sig.Name, f)
		}
		c.bytes[i], c.mask[i] = byte(b), true
	}
	if !c.mask[0] {
		return compiled{}, fmt.Errorf("signature %s: pattern must not start with a wildcard", sig.Name)
	}
	return c, nil
}

func (c compiled) find(image []byte) int {
	n := len(c.bytes)
	for start := 0; start+n <= len(image); {
		i := bytes.IndexByte(image[start:len(image)-n+1], c.bytes[0])
		if i < 0 {
			return -1
		}
		at := start + i
		if c.matchAt(image[at : at+n]) {
			return at
		}
		start = at + 1
	}
	return -1
}

func (c compiled) matchAt(window []byte) bool {
	for i, b := range window {
		if c.mask[i] && b != c.bytes[i] {
			return false
		}
	}
	return true
}

// Scan finds the first occurrence of each signature in image and returns
// their positions plus offsets. Missing signatures are reported as an error
// wrapping ErrNotFound, together with the positions found.
func Scan(image []byte, sigs []Signature) (map[string]int, error) {
	found := make(map[string]int, len(sigs))
	var missing []string
	for _, sig := range sigs {
		c, err := compile(sig)
		if err != nil {
			return nil, err
		}
		at := c.find(image)
		if at < 0 {
			missing = append(missing, sig.Name)
			continue
		}
		found[sig.Name] = at + sig.Offset
	}
	if len(missing) > 0 {
		return found, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
	}
	return found, nil
}

const scnMemExecute = 0x20000000

// FromPE scans the executable sections of a PE image for sigs and reports
// the RVA of each.
func FromPE(r io.ReaderAt, sigs []Signature) (Offsets, error) {
	f, err := pe.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("read PE image: %w", err)
	}
	defer f.Close()

	result := make(Offsets, len(sigs))
	pending := sigs
	for _, sec := range f.Sections {
		if sec.Characteristics&scnMemExecute == 0 || len(pending) == 0 {
			continue
		}
		data, err := sec.Data()
		if err != nil {
			return nil, fmt.Errorf("read section %s: %w", sec.Name, err)
		}
		found, err := Scan(data, pending)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		var rest []Signature
		for _, sig := range pending {
			if at, ok := found[sig.Name]; ok {
				result[sig.Name] = sec.VirtualAddress + uint32(at)
				tracer().Debugf("offsets: %s at %s+%#x", sig.Name, sec.Name, at)
			} else {
				rest = append(rest, sig)
			}
		}
		pending = rest
	}
	if len(pending) > 0 {
		names := make([]string, len(pending))
		for i, sig := range pending {
			names[i] = sig.Name
		}
		return result, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(names, ", "))
	}
	return result, nil
}

// FromFile scans the PE image at path.
func FromFile(path string, sigs []Signature) (Offsets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromPE(f, sigs)
}

// CurrentExe provides the offsets of the running executable.
type CurrentExe struct {
	Signatures []Signature
}

func (p CurrentExe) Offsets() (Offsets, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate current executable: %w", err)
	}
	return FromFile(exe, p.Signatures)
}

// Static provides fixed offsets, or a fixed error if Err is set.
type Static struct {
	Values Offsets
	Err    error
}

func (p Static) Offsets() (Offsets, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Values, nil
}
