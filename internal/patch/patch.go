package patch

import (
	"errors"
	"fmt"
)

// ErrAnchorNotFound is returned when neither an anchor nor its fallback
// matches any line.
var ErrAnchorNotFound = errors.New("anchor not found")

// Position places inserted lines relative to the anchor line.
type Position int

const (
	// After inserts below the anchor line.
	After Position = iota

	// Before inserts above the anchor line.
	Before
)

// Anchor locates the line an insertion is made against.
type Anchor struct {
	// Description names the anchor in errors and logs.
	Description string

	// Match selects candidate lines.
	Match Matcher

	// Position places the insertion relative to the matched line.
	Position Position

	// Last selects the last matching line instead of the first.
	Last bool

	// Fallback is tried when Match selects nothing. May be nil.
	Fallback *Anchor
}

// locate returns the insertion index for the anchor chain.
func (a *Anchor) locate(doc *Document) (int, error) {
	for cur := a; cur != nil; cur = cur.Fallback {
		i := doc.Index(cur.Match, 0)
		if cur.Last {
			i = doc.LastIndex(cur.Match)
		}
		if i < 0 {
			continue
		}
		if cur.Position == After {
			i++
		}
		return i, nil
	}
	return -1, fmt.Errorf("%w: %s", ErrAnchorNotFound, a.Description)
}

// Patch inserts Lines at an Anchor.
type Patch struct {
	Anchor Anchor
	Lines  []string

	// Guard marks the patch as already applied when any line matches.
	// When nil the exact Lines block is used instead.
	Guard Matcher
}

// Applied reports whether the patch content is already present.
func (p *Patch) Applied(doc *Document) bool {
	if p.Guard != nil {
		return doc.Any(p.Guard)
	}
	return doc.FindBlock(p.Lines) >= 0
}

// Apply inserts the patch lines. It returns false without changes when the
// patch is already applied.
func (p *Patch) Apply(doc *Document) (bool, error) {
	if p.Applied(doc) {
		return false, nil
	}
	i, err := p.Anchor.locate(doc)
	if err != nil {
		return false, err
	}
	doc.InsertAt(i, p.Lines...)
	return true, nil
}

// Revert removes the exact patch lines. It returns false when they are absent.
func (p *Patch) Revert(doc *Document) bool {
	return doc.RemoveBlock(p.Lines)
}
