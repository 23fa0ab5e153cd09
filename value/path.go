package value

import "fmt"

// SegmentKind discriminates a PathSegment.
type SegmentKind int

// Segment kinds.
const (
	SegKey SegmentKind = iota
	SegIndex
)

// PathSegment is one step of a Path: either an object Key or an array Index.
type PathSegment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

// Key builds a Key segment.
func Key(name string) PathSegment { return PathSegment{Kind: SegKey, Key: name} }

// Index builds an Index segment.
func Index(i int) PathSegment { return PathSegment{Kind: SegIndex, Index: i} }

// String renders a segment as "key" or "[index]".
func (s PathSegment) String() string {
	if s.Kind == SegKey {
		return s.Key
	}
	return fmt.Sprintf("[%d]", s.Index)
}

// Path is an ordered sequence of segments identifying a position in the
// partial tree under construction.
type Path []PathSegment

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	cp := make(Path, len(p))
	copy(cp, p)
	return cp
}

// String renders a dotted/indexed path, e.g. "user.addresses[0].street".
func (p Path) String() string {
	out := ""
	for i, seg := range p {
		if seg.Kind == SegKey {
			if i > 0 {
				out += "."
			}
			out += seg.Key
		} else {
			out += seg.String()
		}
	}
	return out
}
