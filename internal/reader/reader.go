// Package reader implements the Fift source reader: a rune cursor over one
// or more input streams with an include stack, and the word/char scanning
// primitives the tokenizer-cum-executor drives directly (spec §4.6).
package reader

import (
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/tonfift/fift/internal/runeio"
)

// Location names a line in an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line combines a Location with the bytes scanned so far on it.
type Line struct {
	Location
	bytes.Buffer
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

type frame struct {
	rr   io.RuneReader
	name string
	line int
	cl   io.Closer
}

// Input is the Fift include stack: a sequence of nested rune readers. The
// topmost frame is read from until it hits EOF, at which point it is
// popped and the parent frame resumes exactly where it left off --
// because each frame retains its own io.RuneReader with its own read
// cursor, per spec §3.3/§4.6.
type Input struct {
	stack []frame

	pending   rune
	hasPend   bool
	pendSize  int

	Last Line
	Scan Line
}

// Push opens a new top-of-stack input frame; it becomes the active source
// for ReadRune until it reaches EOF, at which point the previous frame
// resumes. This implements `include`.
func (in *Input) Push(r io.Reader) {
	in.flushPending()
	name := nameOf(r)
	var cl io.Closer
	if c, ok := r.(io.Closer); ok {
		cl = c
	}
	in.stack = append(in.stack, frame{rr: runeio.NewReader(r), name: name, line: 1, cl: cl})
	in.Scan = Line{Location: Location{Name: name, Line: 1}}
}

// Depth reports how many input frames are open (0 means EOF on everything).
func (in *Input) Depth() int { return len(in.stack) }

func (in *Input) flushPending() {
	in.hasPend = false
	in.pending = 0
	in.pendSize = 0
}

// ReadRune reads one rune from the active input frame, normalizing CRLF to
// LF and honoring a trailing backslash as a line continuation (spec §6.3).
// EOF on the active frame pops it and resumes the parent frame (or returns
// io.EOF if the include stack is empty).
func (in *Input) ReadRune() (rune, int, error) {
	r, n, err := in.nextRaw()
	if err != nil {
		return 0, 0, err
	}

	if r == '\r' {
		r2, n2, err2 := in.nextRaw()
		if err2 == nil && r2 != '\n' {
			in.pushback(r2, n2)
		} else if err2 == nil {
			n += n2
		}
		r = '\n'
	}

	if r == '\\' {
		r2, n2, err2 := in.nextRaw()
		if err2 == nil && (r2 == '\n' || r2 == '\r') {
			if r2 == '\r' {
				if r3, n3, err3 := in.nextRaw(); err3 == nil && r3 != '\n' {
					in.pushback(r3, n3)
				} else if err3 == nil {
					n2 += n3
				}
			}
			return in.ReadRune()
		}
		if err2 == nil {
			in.pushback(r2, n2)
		}
	}

	if r == '\n' {
		in.nextLine()
	} else {
		in.Scan.WriteRune(r)
	}
	return r, n, nil
}

func (in *Input) pushback(r rune, n int) {
	in.pending, in.hasPend, in.pendSize = r, true, n
}

func (in *Input) nextRaw() (rune, int, error) {
	if in.hasPend {
		r, n := in.pending, in.pendSize
		in.flushPending()
		return r, n, nil
	}
	for {
		if len(in.stack) == 0 {
			return 0, 0, io.EOF
		}
		top := &in.stack[len(in.stack)-1]
		r, n, err := top.rr.ReadRune()
		if err == io.EOF {
			in.popFrame()
			continue
		}
		if err != nil {
			return 0, 0, err
		}
		return r, n, nil
	}
}

func (in *Input) popFrame() {
	i := len(in.stack) - 1
	if i < 0 {
		return
	}
	top := in.stack[i]
	in.stack = in.stack[:i]
	if top.cl != nil {
		top.cl.Close()
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
	if i := len(in.stack) - 1; i >= 0 {
		in.stack[i].line++
	}
}

// Word reads runes, skipping leading whitespace/control runes, then
// collects runes until the next whitespace/control rune or EOF. This is
// `word bl` in spec §4.6 terms, generalized to any delimiter test.
func (in *Input) Word() (string, error) {
	return in.WordFunc(func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) })
}

// WordFunc is the generalized scanner behind `(word)`: it skips leading
// delimiters, then reads until the next delimiter (consumed and dropped)
// or EOF.
func (in *Input) WordFunc(isDelim func(rune) bool) (string, error) {
	var sb []rune
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return "", err
		}
		if !isDelim(r) {
			sb = append(sb, r)
			break
		}
	}
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		} else if isDelim(r) {
			break
		}
		sb = append(sb, r)
	}
	return string(sb), nil
}

// RestOfLine reads and returns every rune up to (and consuming) the next
// newline, or EOF. This backs `0 word` / parse-rest-of-line per spec §4.6.
func (in *Input) RestOfLine() (string, error) {
	var sb []rune
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			if len(sb) == 0 {
				return "", err
			}
			break
		} else if err != nil {
			return "", err
		} else if r == '\n' {
			break
		}
		sb = append(sb, r)
	}
	return string(sb), nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
