package source

import "fmt"

// Span is a half-open byte range [Start, End) into a single file.
type Span struct {
	File  FileID
	Start uint32 // in bytes, inclusive
	End   uint32 // in bytes, exclusive
}

// NoSpan is the zero Span; used where a node has no meaningful location.
var NoSpan = Span{}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span that contains both s and other.
// If the spans belong to different files, s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
