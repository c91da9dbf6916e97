package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setVersion(t *testing.T, v string) {
	t.Helper()
	original := Version
	t.Cleanup(func() { Version = original })
	Version = v
}

func TestStringIncludesBuildMetadata(t *testing.T) {
	originalCommit, originalDate := Commit, Date
	t.Cleanup(func() {
		Commit = originalCommit
		Date = originalDate
	})
	setVersion(t, "1.2.3")
	Commit = "abc123"
	Date = "2026-02-18"

	got := String()
	require.Contains(t, got, "pinsearch 1.2.3")
	require.Contains(t, got, "commit=abc123")
	require.Contains(t, got, "date=2026-02-18")
	require.Contains(t, got, "go=")
}

func TestIsPrerelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{version: "0.8.0", want: false},
		{version: "v1.2.3", want: false},
		{version: "0.8.0-beta.1", want: true},
		{version: "0.8.0-dev", want: true},
		{version: "dev", want: true},
	}
	for _, tc := range tests {
		setVersion(t, tc.version)
		require.Equal(t, tc.want, IsPrerelease(), tc.version)
	}
}
