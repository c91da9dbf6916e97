package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassName(t *testing.T) {
	require.Equal(t, "EVERYTHING_TASKBAR_NOTIFICATION", ClassName(""))
	require.Equal(t, "EVERYTHING_TASKBAR_NOTIFICATION_(1.5a)", ClassName("1.5a"))
}

func TestAddressString(t *testing.T) {
	addr := Address{Window: 0x1234, Version: MakeVersion(1, 5, 0, 1384)}
	require.Equal(t, "1.5.0.1384", addr.Version.String())
	require.Contains(t, addr.String(), "0x1234")
	require.Contains(t, addr.String(), "1.5.0.1384")
	require.Contains(t, Address{}.String(), "unknown")
}
