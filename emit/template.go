package emit

// runtimeTemplate is the scanner runtime spliced into every generated
// file: a longest-match loop driven by the combined trans/actions
// tables, reading runes one at a time and restarting at the rule's
// initial combined state after each accepted (or, on total failure,
// single-rune-skipped) match.
const runtimeTemplate = `// Code generated by lexgen. DO NOT EDIT.

{{.Header}}

import (
	"bufio"
	"io"
)

// sentinel marks "no transition" / "no accept" in the combined tables.
const sentinel = 65535

var trans = {{.TransLiteral}}

var actions = {{.ActionsLiteral}}

type lexerState struct {
	in     *bufio.Reader
	buf    []rune
	pos    int
	eof    bool
	line   int
	column int
}

func newLexerState(r io.Reader) *lexerState {
	return &lexerState{in: bufio.NewReader(r)}
}

func (s *lexerState) next() (rune, bool) {
	if len(s.buf) > s.pos {
		r := s.buf[s.pos]
		s.pos++
		return r, false
	}
	if s.eof {
		return 0, true
	}
	r, _, err := s.in.ReadRune()
	if err == io.EOF {
		s.eof = true
		return 0, true
	}
	if err != nil {
		panic(err)
	}
	s.buf = append(s.buf, r)
	s.pos++
	return r, false
}

func (s *lexerState) resetBuffer(n int) {
	for _, r := range s.buf[:n] {
		if r == '\n' {
			s.line++
			s.column = 0
		} else {
			s.column++
		}
	}
	s.buf = s.buf[n:]
	s.pos = 0
}

// scanOne finds the longest prefix of the remaining input accepted
// starting from combined state start, returning the accepted clause
// index (-1 on total failure at end of input) and the matched text.
func scanOne(s *lexerState, start int) (int, string) {
	st := start
	matchPos, matchAccept := -1, -1
	if actions[st] != sentinel {
		matchPos, matchAccept = 0, int(actions[st])
	}
	for {
		r, eof := s.next()
		if eof {
			break
		}
		c := int(r)
		if c >= len(trans[st]) {
			break
		}
		nextSt := int(trans[st][c])
		if nextSt == sentinel {
			break
		}
		st = nextSt
		if actions[st] != sentinel {
			matchPos, matchAccept = s.pos, int(actions[st])
		}
	}
	if matchPos == -1 {
		if len(s.buf) == 0 {
			return -1, ""
		}
		s.resetBuffer(1)
		return scanOne(s, start)
	}
	text := string(s.buf[:matchPos])
	s.resetBuffer(matchPos)
	return matchAccept, text
}

{{range .Rules}}
// Scan{{.Name}} runs rule {{.Name}} over r, invoking the matched
// clause's action for every token until input is exhausted.
func Scan{{.Name}}(r io.Reader) {
	s := newLexerState(r)
	for {
		clause, text := scanOne(s, {{.InitialState}})
		if clause < 0 {
			break
		}
		_ = text
		switch clause {
{{.Cases}}
		}
	}
}
{{end}}

{{.Footer}}
`
