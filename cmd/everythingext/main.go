/*
Command everythingext is the plugin library loaded by the host search
application. Build it with

	go build -buildmode=c-shared -o IbEverythingExt.dll ./cmd/everythingext

The host drives matching through search_compile, search_exec and
search_free, which are shaped like regcomp, regexec and regfree. Compiled
patterns are identified by pointer-sized handles.

Lifecycle:

	plugin_create(host, instance_name)  // optional, once, right after loading
	plugin_set_host_window(...)         // optional, for hosts which create their IPC window late
	plugin_start(host, instance_name)   // once; creates the plugin if plugin_create was not called
	plugin_stop()                       // once, before unloading

plugin_set_host_window may be called at any point before plugin_start.
*/
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>

typedef struct {
	int32_t rm_so;
	int32_t rm_eo;
} regmatch_t;
*/
import "C"

import (
	"sync"
	"sync/atomic"
	"unicode/utf16"
	"unsafe"

	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/pinsearch/internal/bridge"
	"github.com/npillmayer/pinsearch/internal/config"
	"github.com/npillmayer/pinsearch/internal/factory"
	"github.com/npillmayer/pinsearch/internal/host"
	"github.com/npillmayer/pinsearch/phonetic"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.plugin")
}

// The layouts of regmatch_t and bridge.RegMatch must agree.
var _ [unsafe.Sizeof(C.regmatch_t{}) - unsafe.Sizeof(bridge.RegMatch{})]struct{}
var _ [unsafe.Sizeof(bridge.RegMatch{}) - unsafe.Sizeof(C.regmatch_t{})]struct{}

// compilerSwitch compiles with the default configuration until the plugin
// is created, and with the controller's configuration afterwards.
type compilerSwitch struct {
	current  atomic.Pointer[bridge.Compiler]
	fallback sync.Once
}

func (s *compilerSwitch) Compile(pattern string) *pinsearch.Matcher {
	if c := s.current.Load(); c != nil {
		return (*c).Compile(pattern)
	}
	var c bridge.Compiler
	s.fallback.Do(func() {
		tracer().Infof("compiling before plugin start, using the default configuration")
		c = factory.New(config.Default(), phonetic.Default())
		s.current.CompareAndSwap(nil, &c)
	})
	return (*s.current.Load()).Compile(pattern)
}

func (s *compilerSwitch) use(c bridge.Compiler) {
	s.current.Store(&c)
}

var plug = newPlugin()

//export search_compile
func search_compile(pattern *C.char, cflags C.uint32_t, modifiers C.uint32_t) C.uintptr_t {
	var p string
	if pattern != nil {
		p = C.GoString(pattern)
	}
	return C.uintptr_t(plug.searches.Compile(p, uint32(cflags), uint32(modifiers)))
}

//export search_exec
func search_exec(h C.uintptr_t, s *C.char, length C.uint32_t, nmatch C.size_t,
	pmatch *C.regmatch_t, eflags C.uint32_t) C.int32_t {

	var haystack []byte
	if s != nil && length > 0 {
		haystack = unsafe.Slice((*byte)(unsafe.Pointer(s)), int(length))
	}
	var matches []bridge.RegMatch
	if pmatch != nil && nmatch > 0 {
		matches = unsafe.Slice((*bridge.RegMatch)(unsafe.Pointer(pmatch)), int(nmatch))
	}
	return C.int32_t(plug.searches.Exec(bridge.Handle(h), haystack, matches, uint32(eflags)))
}

//export search_free
func search_free(h C.uintptr_t) {
	plug.searches.Free(bridge.Handle(h))
}

//export plugin_create
func plugin_create(hosted C.bool, instanceName *C.uint16_t) C.bool {
	return C.bool(plug.create(bool(hosted), utf16String((*uint16)(unsafe.Pointer(instanceName)))))
}

//export plugin_start
func plugin_start(hosted C.bool, instanceName *C.uint16_t) C.bool {
	return C.bool(plug.start(bool(hosted), utf16String((*uint16)(unsafe.Pointer(instanceName)))))
}

//export plugin_set_host_window
func plugin_set_host_window(window C.uintptr_t, major, minor, revision, build C.uint32_t) {
	plug.setHostWindow(host.Address{
		Window:  uintptr(window),
		Version: host.MakeVersion(uint32(major), uint32(minor), uint32(revision), uint32(build)),
	})
}

//export plugin_stop
func plugin_stop() {
	plug.stop()
}

// utf16String decodes a NUL terminated UTF-16 string.
func utf16String(p *uint16) string {
	if p == nil {
		return ""
	}
	var units []uint16
	for ; *p != 0; p = (*uint16)(unsafe.Add(unsafe.Pointer(p), 2)) {
		units = append(units, *p)
	}
	return string(utf16.Decode(units))
}

func main() {}
