package pathutil

import (
	"strconv"
	"strings"
	"sync"

	"github.com/go-openapi/jsonpointer"
)

// PointerPrefix starts every rendered document pointer.
const PointerPrefix = "#/"

const (
	pooledSegments    = 16
	maxPooledSegments = 128
)

var builders = sync.Pool{
	New: func() any { return &PathBuilder{segments: make([]string, 0, pooledSegments)} },
}

// Acquire returns an empty PathBuilder from a shared pool. Hand it back with
// Release once no rendered string needs to be produced from it anymore.
func Acquire() *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Release returns p to the pool. Builders that grew past the pool's size
// limit, and nil, are dropped.
func Release(p *PathBuilder) {
	if p != nil && cap(p.segments) <= maxPooledSegments {
		builders.Put(p)
	}
}

// PathBuilder provides efficient incremental construction of document pointers.
// Uses push/pop semantics to avoid allocations during traversal.
// Segments are stored escaped per RFC 6901 ("/" becomes "~1", "~" becomes "~0"),
// and the full string is only materialized when String() is called.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a named segment to the path, escaping it as a pointer token.
func (p *PathBuilder) Push(segment string) {
	p.pushEscaped(jsonpointer.Escape(segment))
}

// PushIndex adds an array index segment.
func (p *PathBuilder) PushIndex(i int) {
	p.pushEscaped(strconv.Itoa(i))
}

func (p *PathBuilder) pushEscaped(seg string) {
	p.segments = append(p.segments, seg)
	if len(p.segments) > 1 {
		p.length++ // For slash separator
	}
	p.length += len(seg)
}

// Pop removes the last segment. It returns false when the builder was already empty.
func (p *PathBuilder) Pop() bool {
	if len(p.segments) == 0 {
		return false
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
	if len(p.segments) > 0 {
		p.length--
	}
	return true
}

// Depth returns the number of segments currently pushed.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Segments returns a copy of the escaped segments.
func (p *PathBuilder) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full pointer, e.g. "#/paths/~1pets/get".
// Only call when the path is needed.
func (p *PathBuilder) String() string {
	var b strings.Builder
	b.Grow(len(PointerPrefix) + p.length)
	b.WriteString(PointerPrefix)
	for i, seg := range p.segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Child renders the pointer of a direct child without mutating the builder.
func (p *PathBuilder) Child(segment string) string {
	base := p.String()
	if len(p.segments) == 0 {
		return base + jsonpointer.Escape(segment)
	}
	return base + "/" + jsonpointer.Escape(segment)
}

// Join renders a pointer from unescaped segments.
func Join(segments ...string) string {
	p := Acquire()
	defer Release(p)
	for _, s := range segments {
		p.Push(s)
	}
	return p.String()
}
