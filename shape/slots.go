package shape

import (
	"slices"

	"github.com/npillmayer/persian/charmap"
)

// slot is the working state of one input rune during a conversion.
type slot struct {
	src    rune
	desc   charmap.Descriptor
	mapped bool
	form   charmap.Form
}

// exempt reports whether the slot is kept in reading order when a
// right-to-left run is reversed.
func (s *slot) exempt() bool {
	return !s.mapped || s.desc.LeftToRight || s.src == ' '
}

// glyph returns the output of the slot for its resolved form.
func (s *slot) glyph() string {
	if !s.mapped {
		return string(s.src)
	}
	return s.desc.Glyph(s.form)
}

// slotBuffer is a grow-only buffer of slots. Only the first n slots are
// active; the remaining capacity is kept for subsequent conversions.
type slotBuffer struct {
	slots []slot
	n     int
}

func newSlotBuffer(capacity int) slotBuffer {
	return slotBuffer{slots: make([]slot, capacity)}
}

// reset activates n slots, growing the buffer if necessary. Active slots are
// not cleared; the mapping pass overwrites every field.
func (sb *slotBuffer) reset(n int) []slot {
	if n > len(sb.slots) {
		tracer().Debugf("growing slot buffer from %d to %d", len(sb.slots), n)
		sb.slots = make([]slot, n)
	}
	sb.n = n
	return sb.slots[:n]
}

// Len returns the number of active slots.
func (sb *slotBuffer) Len() int {
	return sb.n
}

// Cap returns the number of slots the buffer holds without growing.
func (sb *slotBuffer) Cap() int {
	return len(sb.slots)
}

func (sb *slotBuffer) at(i int) *slot {
	return &sb.slots[i]
}

// reverse reverses the active slots in the closed interval [from, to].
// Bounds are clamped to the active range.
func (sb *slotBuffer) reverse(from, to int) {
	if from < 0 {
		from = 0
	}
	if to >= sb.n {
		to = sb.n - 1
	}
	for from < to {
		sb.slots[from], sb.slots[to] = sb.slots[to], sb.slots[from]
		from++
		to--
	}
}

// resolveForms assigns a contextual form to every mapped slot, looking at its
// direct neighbours only.
func (sb *slotBuffer) resolveForms() {
	for i := 0; i < sb.n; i++ {
		cur := sb.at(i)
		if !cur.mapped {
			continue
		}
		var prev, next *charmap.Descriptor
		if i > 0 && sb.slots[i-1].mapped {
			prev = &sb.slots[i-1].desc
		}
		if i < sb.n-1 && sb.slots[i+1].mapped {
			next = &sb.slots[i+1].desc
		}
		cur.form = joiningForm(&cur.desc, prev, next)
	}
}

// joiningForm selects the form of d between neighbours prev and next (nil if
// the neighbour is missing or unmapped).
func joiningForm(d, prev, next *charmap.Descriptor) charmap.Form {
	switch {
	case prev == nil:
		if next != nil && next.StickToPrevious && d.StickToNext {
			return charmap.Initial
		}
	case next == nil:
		if prev.StickToNext {
			return charmap.Final
		}
	case next.StickToPrevious && prev.StickToNext:
		if d.StickToNext {
			return charmap.Medial
		}
		return charmap.Final
	case prev.StickToNext:
		return charmap.Final
	case next.StickToPrevious && d.StickToNext:
		return charmap.Initial
	}
	return charmap.Isolated
}

// reorderVisual turns logical order into visual order for a left-to-right
// surface. The whole text is reversed, then every run of exempt slots is
// reversed once more to restore its reading order. Spaces at the end of such
// a run stay in place, next to the right-to-left text following them.
//
// Text without any right-to-left slot is left untouched.
func (sb *slotBuffer) reorderVisual() {
	if !slices.ContainsFunc(sb.slots[:sb.n], func(s slot) bool { return !s.exempt() }) {
		return
	}
	sb.reverse(0, sb.n-1)
	start := -1
	for i := 0; i < sb.n; i++ {
		s := sb.at(i)
		if s.exempt() {
			if start < 0 && s.src != ' ' {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		spaces := 0
		for k := i - 1; k >= start && sb.slots[k].src == ' '; k-- {
			spaces++
		}
		sb.reverse(start, i-1-spaces)
		start = -1
	}
	if start >= 0 {
		sb.reverse(start, sb.n-1)
	}
}
