package bdfsheet

import (
	"image/color"
	"strings"
)

// StringDrawable implements Drawable so glyphs can be rendered as text, one
// 'X' per lit pixel. It is handy for dumping fonts and for readable test
// failures.
type StringDrawable struct {
	lines [][]byte
}

// Set marks x,y. The color is ignored. Negative coordinates are dropped.
func (s *StringDrawable) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 {
		return
	}
	for len(s.lines) <= y {
		s.lines = append(s.lines, nil)
	}
	if len(s.lines[y]) <= x {
		nb := make([]byte, 1+(x-len(s.lines[y])))
		s.lines[y] = append(s.lines[y], nb...)
	}
	s.lines[y][x] = 'X'
}

// String returns the current string representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current string representation of this Drawable with a
// user-provided prefix before each line. Useful for adding output in code comments.
func (s *StringDrawable) PrefixString(p string) string {
	var sb strings.Builder
	for _, line := range s.lines {
		sb.WriteString(p)
		sb.WriteString(strings.TrimRight(strings.ReplaceAll(string(line), "\x00", " "), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
