package parser

import (
	"fmt"

	"fortio.org/safecast"

	"catlint/internal/source"
)

// lineCursor iterates over a document line by line, keeping the byte
// offsets needed to build spans. Catalog documents are line oriented, so a
// line cursor rather than a byte cursor is all the parser needs.
type lineCursor struct {
	file  *source.File
	off   uint32 // начало текущей строки
	limit uint32
}

func newLineCursor(f *source.File) lineCursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return lineCursor{file: f, off: 0, limit: limit}
}

// eof reports whether every line has been consumed.
func (c *lineCursor) eof() bool {
	return c.off >= c.limit
}

// line is one raw document line with its position.
type line struct {
	text string      // без завершающего \n
	span source.Span // включает только текст строки
}

// next consumes and returns the current line.
func (c *lineCursor) next() line {
	start := c.off
	end := start
	for end < c.limit && c.file.Content[end] != '\n' {
		end++
	}
	ln := line{
		text: string(c.file.Content[start:end]),
		span: source.Span{File: c.file.ID, Start: start, End: end},
	}
	if end < c.limit {
		end++ // съесть \n
	}
	c.off = end
	return ln
}

// peek returns the current line without consuming it.
func (c *lineCursor) peek() line {
	saved := c.off
	ln := c.next()
	c.off = saved
	return ln
}
