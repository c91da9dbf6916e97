// Package bridge implements the compile/exec/free surface through which the
// host's native search engine drives pinsearch matchers, shaped like the
// POSIX regex API.
//
// Compiled matchers are kept in a handle table; foreign code only ever sees
// the handle. Exec may be called concurrently from any number of threads
// for the same handle. Every compiled handle must be freed exactly once.
package bridge

import (
	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/pinsearch/internal/handles"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.bridge")
}

// Handle is the opaque value handed out by Compile.
type Handle = handles.Handle

// RegMatch mirrors the C regmatch_t: byte offsets of a match.
type RegMatch struct {
	So int32 // start offset
	Eo int32 // end offset, exclusive
}

// Compiler builds a matcher for a pattern.
type Compiler interface {
	Compile(pattern string) *pinsearch.Matcher
}

// Bridge owns the compiled matchers handed out to foreign code.
type Bridge struct {
	compiler Compiler
	matchers *handles.Table[*pinsearch.Matcher]
}

// New creates a bridge compiling patterns with c.
func New(c Compiler) *Bridge {
	return &Bridge{
		compiler: c,
		matchers: handles.NewTable[*pinsearch.Matcher](),
	}
}

// Compile builds a matcher for pattern and returns its handle. It never
// fails; patterns which cannot be matched phonetically are matched
// literally. cflags and modifiers are reserved.
func (b *Bridge) Compile(pattern string, cflags, modifiers uint32) Handle {
	m := b.compiler.Compile(pattern)
	h := b.matchers.Insert(m)
	tracer().Debugf("compile %q (cflags=%#x, modifiers=%#x): %s, %v",
		pattern, cflags, modifiers, m.Engine(), h)
	return h
}

// Exec searches haystack with the matcher of h.
//
// It returns 1 if a match was found and written to pmatch[0], 0 if a match
// was found but pmatch is empty, and -1 if there is no match or h is not a
// live handle. pmatch is left untouched unless 1 is returned. eflags is
// reserved.
func (b *Bridge) Exec(h Handle, haystack []byte, pmatch []RegMatch, eflags uint32) int32 {
	m, ok := b.matchers.Get(h)
	if !ok {
		tracer().Errorf("exec with unknown %v", h)
		return -1
	}
	text, toCaller := haystackView(haystack)
	match, found := m.Find(text)
	if !found {
		return -1
	}
	if len(pmatch) == 0 {
		return 0
	}
	pmatch[0] = RegMatch{
		So: int32(toCaller(match.Start)),
		Eo: int32(toCaller(match.End)),
	}
	return 1
}

// Free releases the matcher of h. Unknown or already freed handles are
// reported and otherwise ignored.
func (b *Bridge) Free(h Handle) {
	if _, ok := b.matchers.Remove(h); !ok {
		tracer().Errorf("free of unknown %v", h)
	}
}

// Live returns the number of compiled, not yet freed matchers.
func (b *Bridge) Live() int {
	return b.matchers.Len()
}
