// Package core hands control to the native core library, which installs the
// search hooks inside the host process.
package core

import (
	"runtime"
	"unicode/utf16"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.core")
}

// StartArgs is the startup record passed to the native start entry point.
// Its layout matches the C struct
//
//	struct start_args {
//	    bool host;
//	    const char *config;            // UTF-8 JSON, NUL terminated
//	    HWND ipc_window;               // 0 if unknown
//	    const wchar_t *instance_name;  // UTF-16, double NUL terminated
//	};
type StartArgs struct {
	Host         bool
	Config       *byte
	IPCWindow    uintptr
	InstanceName *uint16
}

// Core is the native core library.
type Core interface {
	Start(args *StartArgs) error
	Stop() error
}

// EncodeInstanceName encodes name as UTF-16 followed by two zero units.
func EncodeInstanceName(name string) []uint16 {
	return append(utf16.Encode([]rune(name)), 0, 0)
}

// Handoff owns the buffers a StartArgs record points to.
type Handoff struct {
	args     StartArgs
	config   []byte
	instance []uint16
	pinner   runtime.Pinner
}

// NewHandoff prepares a startup record.
func NewHandoff(host bool, config string, ipcWindow uintptr, instanceName string) *Handoff {
	h := &Handoff{
		config:   append([]byte(config), 0),
		instance: EncodeInstanceName(instanceName),
	}
	h.args = StartArgs{
		Host:         host,
		Config:       &h.config[0],
		IPCWindow:    ipcWindow,
		InstanceName: &h.instance[0],
	}
	return h
}

// Start calls c.Start with the record. The record and its buffers stay
// pinned until the call returns.
func (h *Handoff) Start(c Core) error {
	h.pinner.Pin(&h.config[0])
	h.pinner.Pin(&h.instance[0])
	h.pinner.Pin(&h.args)
	defer h.pinner.Unpin()
	tracer().Debugf("core: start (host=%v, window=%#x, %d bytes of config)",
		h.args.Host, h.args.IPCWindow, len(h.config)-1)
	return c.Start(&h.args)
}

// Args returns the record. It is only valid for the duration of Start
// when handed to foreign code.
func (h *Handoff) Args() *StartArgs {
	return &h.args
}
