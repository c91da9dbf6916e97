//go:build windows

package core

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// LibraryName is the file name of the native core library.
const LibraryName = "IbEverythingLib.dll"

type nativeCore struct {
	dll   *windows.LazyDLL
	start *windows.LazyProc
	stop  *windows.LazyProc
}

// Native returns the native core library, loaded on first use.
func Native() Core {
	dll := windows.NewLazyDLL(LibraryName)
	return &nativeCore{
		dll:   dll,
		start: dll.NewProc("start"),
		stop:  dll.NewProc("stop"),
	}
}

func (c *nativeCore) Start(args *StartArgs) error {
	if err := c.start.Find(); err != nil {
		return fmt.Errorf("core: %w", err)
	}
	c.start.Call(uintptr(unsafe.Pointer(args)))
	return nil
}

func (c *nativeCore) Stop() error {
	if err := c.stop.Find(); err != nil {
		return fmt.Errorf("core: %w", err)
	}
	c.stop.Call()
	return nil
}
