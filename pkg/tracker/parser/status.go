package parser

import "strings"

// NotDoneGlyph marks unfinished work in status cells.
const NotDoneGlyph = "⬜"

// IsDone reports whether a status cell counts as done: it must be non-blank
// and differ from NotDoneGlyph after trimming. Any other mark, including the
// glyph followed by an emoji variation selector, counts as done.
func IsDone(raw string) bool {
	s := strings.TrimSpace(raw)
	return s != "" && s != NotDoneGlyph
}
