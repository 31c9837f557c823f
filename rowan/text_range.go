package rowan

import "fmt"

// TextRange is a half-open byte range [Start, End) into the original
// source. It has no offsets of its own to invert — it is always produced
// relative to a red cursor's absolute offset.
type TextRange struct {
	Start, End int
}

func (r TextRange) Len() int { return r.End - r.Start }

func (r TextRange) Contains(pos int) bool { return pos >= r.Start && pos < r.End }

// ContainsInclusive reports whether pos lies within [Start, End], i.e.
// including the end boundary — useful for cursor-at-end-of-token checks.
func (r TextRange) ContainsInclusive(pos int) bool { return pos >= r.Start && pos <= r.End }

func (r TextRange) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }
