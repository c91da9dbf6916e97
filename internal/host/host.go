// Package host locates the host application's IPC window and negotiates
// its version.
package host

import (
	"errors"
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.host")
}

// ErrNotAvailable is returned when the host IPC window cannot be found.
var ErrNotAvailable = errors.New("host IPC window not available")

// WindowClass is the class name of the host's IPC window.
const WindowClass = "EVERYTHING_TASKBAR_NOTIFICATION"

// IPC commands, sent as wParam of a WM_USER message.
const (
	ipcGetMajorVersion = 0
	ipcGetMinorVersion = 1
	ipcGetRevision     = 2
	ipcGetBuildNumber  = 3
)

// Address is the host's IPC window together with its version.
type Address struct {
	Window  uintptr
	Version *goversion.Version
}

func (a Address) String() string {
	if a.Version == nil {
		return fmt.Sprintf("window %#x (version unknown)", a.Window)
	}
	return fmt.Sprintf("window %#x, version %s", a.Window, a.Version)
}

// ClassName returns the IPC window class for a named host instance.
// The unnamed instance uses WindowClass.
func ClassName(instance string) string {
	if instance == "" {
		return WindowClass
	}
	return WindowClass + "_(" + instance + ")"
}

// MakeVersion builds a version from the four numbers the host reports.
func MakeVersion(major, minor, revision, build uint32) *goversion.Version {
	v, err := goversion.NewVersion(fmt.Sprintf("%d.%d.%d.%d", major, minor, revision, build))
	if err != nil {
		panic(fmt.Sprintf("host: cannot build version: %v", err))
	}
	return v
}

// Discover finds the IPC window of the host instance and queries its version.
func Discover(instance string) (Address, error) {
	class := ClassName(instance)
	addr, err := discover(class)
	if err != nil {
		tracer().Infof("host: %s: %v", class, err)
		return Address{}, err
	}
	tracer().Debugf("host: %s", addr)
	return addr, nil
}
