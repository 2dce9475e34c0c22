package bdf

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseError reports a malformed BDF input and the line it was found on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bdf: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	ErrNotBDF     = errors.New("missing STARTFONT")
	ErrMissingBBX = errors.New("BITMAP before BBX")
)

type parser struct {
	font *Font
	char *Char

	inProps   bool
	inBitmap  bool
	sawBBX    bool
	sawHeader bool
}

// Parse reads a BDF font from r.
func Parse(r io.Reader) (*Font, error) {
	p := &parser{
		font: &Font{
			Properties: make(map[string]string),
			Glyphs:     make(map[rune]*Char),
		},
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if err := p.line(line); err != nil {
			return nil, &ParseError{Line: lineno, Err: err}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if !p.sawHeader {
		return nil, &ParseError{Line: lineno, Err: ErrNotBDF}
	}
	if p.char != nil {
		return nil, &ParseError{Line: lineno, Err: fmt.Errorf("unexpected end of file in glyph %q", p.char.Name)}
	}
	return p.font, nil
}

func (p *parser) line(line string) error {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		parts = append(parts, "")
	}
	keyword, rest := parts[0], strings.TrimSpace(parts[1])

	if !p.sawHeader {
		if keyword != "STARTFONT" {
			return ErrNotBDF
		}
		p.sawHeader = true
		p.font.Version = rest
		return nil
	}

	switch {
	case p.inBitmap:
		if keyword == "ENDCHAR" {
			return p.endChar()
		}
		return p.bitmapRow(keyword)

	case p.inProps:
		if keyword == "ENDPROPERTIES" {
			p.inProps = false
			return nil
		}
		p.font.Properties[keyword] = strings.Trim(rest, `"`)
		return nil

	case p.char != nil:
		switch keyword {
		case "BITMAP":
			if !p.sawBBX {
				return ErrMissingBBX
			}
			p.inBitmap = true
			p.char.Bitmap = make([][]byte, 0, p.char.Height())
			return nil
		case "ENDCHAR":
			return p.endChar()
		case "STARTCHAR", "ENDFONT":
			return fmt.Errorf("%s inside glyph %q", keyword, p.char.Name)
		}
		if cfunc, ok := charparsers[keyword]; ok {
			if err := cfunc(p.char, rest); err != nil {
				return err
			}
			p.sawBBX = p.sawBBX || keyword == "BBX"
		}
		return nil
	}

	if pfunc, ok := parsers[keyword]; ok {
		return pfunc(p, rest)
	}
	return nil
}

func (p *parser) bitmapRow(row string) error {
	ch := p.char
	if len(ch.Bitmap) == ch.Height() {
		return fmt.Errorf("glyph %q has more than %d bitmap rows", ch.Name, ch.Height())
	}
	b, err := hex.DecodeString(row)
	if err != nil {
		return fmt.Errorf("glyph %q: bad bitmap row %q: %w", ch.Name, row, err)
	}
	if need := (ch.Width() + 7) / 8; len(b) < need {
		return fmt.Errorf("glyph %q: bitmap row %q is %d bytes, need %d", ch.Name, row, len(b), need)
	}
	ch.Bitmap = append(ch.Bitmap, b)
	return nil
}

func (p *parser) endChar() error {
	ch := p.char
	if !p.inBitmap {
		return fmt.Errorf("glyph %q has no BITMAP", ch.Name)
	}
	if len(ch.Bitmap) != ch.Height() {
		return fmt.Errorf("glyph %q has %d bitmap rows, BBX says %d", ch.Name, len(ch.Bitmap), ch.Height())
	}
	p.font.Chars = append(p.font.Chars, ch)
	if ch.Encoding >= 0 {
		p.font.Glyphs[ch.Encoding] = ch
	}
	p.char = nil
	p.inBitmap = false
	p.sawBBX = false
	return nil
}

////////

var charparsers = map[string]func(*Char, string) error{
	"ENCODING": func(c *Char, line string) error {
		nc := 0
		if _, err := fmt.Sscanf(line, "%d", &nc); err != nil {
			return fmt.Errorf("glyph %q: ENCODING: %w", c.Name, err)
		}
		if nc < 0 {
			nc = -1
		}
		c.Encoding = rune(nc)
		return nil
	},
	"SWIDTH": func(c *Char, line string) error {
		_, err := fmt.Sscanf(line, "%d %d", &c.SWidth[0], &c.SWidth[1])
		return wrapField(c, "SWIDTH", err)
	},
	"DWIDTH": func(c *Char, line string) error {
		_, err := fmt.Sscanf(line, "%d %d", &c.DWidth[0], &c.DWidth[1])
		return wrapField(c, "DWIDTH", err)
	},
	"BBX": func(c *Char, line string) error {
		// width, height, x-offset, y-offset
		_, err := fmt.Sscanf(line, "%d %d %d %d", &c.BoundingBox[0], &c.BoundingBox[1], &c.BoundingBox[2], &c.BoundingBox[3])
		if err != nil {
			return wrapField(c, "BBX", err)
		}
		if c.BoundingBox[0] < 0 || c.BoundingBox[1] < 0 {
			return fmt.Errorf("glyph %q: negative BBX size %dx%d", c.Name, c.BoundingBox[0], c.BoundingBox[1])
		}
		return nil
	},
}

func wrapField(c *Char, field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("glyph %q: %s: %w", c.Name, field, err)
}

var parsers = map[string]func(*parser, string) error{
	"COMMENT": func(p *parser, line string) error {
		p.font.Comments += line + "\n"
		return nil
	},
	"FONT": func(p *parser, line string) error {
		p.font.FontName = line
		return nil
	},
	"SIZE": func(p *parser, line string) error {
		f := p.font
		_, err := fmt.Sscanf(line, "%d %d %d", &f.PointSize, &f.ResolutionX, &f.ResolutionY)
		if err != nil {
			return fmt.Errorf("SIZE: %w", err)
		}
		return nil
	},
	"FONTBOUNDINGBOX": func(p *parser, line string) error {
		bb := &p.font.BoundingBox
		_, err := fmt.Sscanf(line, "%d %d %d %d", &bb[0], &bb[1], &bb[2], &bb[3])
		if err != nil {
			return fmt.Errorf("FONTBOUNDINGBOX: %w", err)
		}
		return nil
	},
	"STARTPROPERTIES": func(p *parser, line string) error {
		p.inProps = true
		return nil
	},
	"CHARS": func(p *parser, line string) error {
		if _, err := fmt.Sscanf(line, "%d", &p.font.NumGlyphs); err != nil {
			return fmt.Errorf("CHARS: %w", err)
		}
		return nil
	},
	"STARTCHAR": func(p *parser, line string) error {
		p.char = &Char{Name: line, Encoding: -1}
		return nil
	},
}
