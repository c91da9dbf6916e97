//go:build windows

package host

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const wmUser = 0x0400

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW  = user32.NewProc("FindWindowW")
	procSendMessageW = user32.NewProc("SendMessageW")
)

func discover(class string) (Address, error) {
	name, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return Address{}, err
	}
	hwnd, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(name)), 0)
	if hwnd == 0 {
		return Address{}, ErrNotAvailable
	}
	query := func(cmd uintptr) uint32 {
		r, _, _ := procSendMessageW.Call(hwnd, wmUser, cmd, 0)
		return uint32(r)
	}
	major := query(ipcGetMajorVersion)
	if major == 0 {
		return Address{}, fmt.Errorf("%w: window %#x does not answer version queries", ErrNotAvailable, hwnd)
	}
	v := MakeVersion(major, query(ipcGetMinorVersion), query(ipcGetRevision), query(ipcGetBuildNumber))
	return Address{Window: hwnd, Version: v}, nil
}
