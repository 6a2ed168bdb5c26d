// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cfamily is a small tokenizer for C-family source text. It exists to
// build realistic chunk lists for tests and for cmd/fmtdump; it classifies
// only as much as the chunk list itself cares about.
package cfamily

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/report"
)

// Lex tokenizes text and appends the resulting chunks to list. Problems with
// the input, such as unterminated comments, are reported to errs, which may
// be nil.
func Lex(text string, list *chunk.List, errs *report.Report) {
	if errs == nil {
		errs = new(report.Report)
	}
	l := &lexer{
		text:   text,
		list:   list,
		Report: errs,
		line:   1,
		col:    1,
		bol:    true,
	}
	l.lex()
}

// LexString is a helper that tokenizes text into a new list.
func LexString(text string) *chunk.List {
	list := chunk.NewList(chunk.Options{})
	Lex(text, list, nil)
	return list
}

type lexer struct {
	text string
	list *chunk.List
	*report.Report

	cursor    int
	line, col int
	bol       bool // Only whitespace since the last newline.

	// Delimiters opened outside and inside the current directive.
	stack, ppStack []chunk.Kind

	inPP      bool
	directive chunk.Kind // Kind of the current directive's name, once seen.
	ppLevel   int
	prev      chunk.Chunk
}

// start is where the token currently being lexed began.
type start struct {
	offset, line, col int
}

func (l *lexer) lex() {
	for l.cursor < len(l.text) {
		before := l.cursor
		l.next()
		if l.cursor == before {
			panic(fmt.Sprintf("fmtcore/cfamily: lexer failed to make progress at offset %d", l.cursor))
		}
	}

	if l.inPP {
		l.endDirective()
	}
	if len(l.stack) > 0 {
		l.Warnf("%d unclosed delimiters at end of file", len(l.stack)).With(report.Tag("unclosed-delimiter"))
	}
}

func (l *lexer) next() {
	s := start{l.cursor, l.line, l.col}
	r := l.pop()

	switch {
	case r == '\n':
		count := 1
		for {
			rest := strings.TrimLeft(l.text[l.cursor:], " \t\r\f\v")
			if !strings.HasPrefix(rest, "\n") {
				break
			}
			l.cursor = len(l.text) - len(rest)
			l.pop()
			count++
		}
		inPP := l.inPP
		l.inPP = false
		c := l.emitText(s, chunk.Newline, "\n", 0)
		c.SetNLCount(count)
		if inPP {
			l.endDirective()
		}
		l.bol = true
		return

	case r == ' ' || r == '\t' || r == '\r' || r == '\f' || r == '\v':
		return

	case r == '\\' && l.peek() == '\n':
		l.pop()
		c := l.emitText(s, chunk.NLCont, "\\\n", 0)
		c.SetNLCount(1)
		return
	}

	wasBOL := l.bol
	l.bol = false

	switch {
	case r == '/' && l.peek() == '/':
		for l.cursor < len(l.text) && l.text[l.cursor] != '\n' {
			l.pop()
		}
		l.emit(s, chunk.CommentCPP, 0)

	case r == '/' && l.peek() == '*':
		l.pop()
		end := strings.Index(l.text[l.cursor:], "*/")
		if end < 0 {
			l.Warnf("unterminated block comment").With(
				report.Tag("unterminated-comment"),
				report.Location{Line: s.line, Column: s.col, Text: "/*"},
			)
			end = len(l.text) - l.cursor
		} else {
			end += len("*/")
		}
		l.advance(end)
		l.emit(s, chunk.CommentMulti, 0)

	case r == '#' && wasBOL && !l.inPP:
		l.inPP = true
		l.directive = chunk.None
		l.emit(s, chunk.Hash, chunk.Punctuator)

	case r == '"' || r == '\'':
		l.quoted(s, r)

	case r == '_' || unicode.IsLetter(r):
		for l.cursor < len(l.text) {
			r, n := utf8.DecodeRuneInString(l.text[l.cursor:])
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			l.cursor += n
			l.col++
		}
		l.word(s)

	case unicode.IsDigit(r):
		for l.cursor < len(l.text) {
			r, n := utf8.DecodeRuneInString(l.text[l.cursor:])
			if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			l.cursor += n
			l.col++
		}
		l.emit(s, chunk.Number, 0)

	default:
		l.punct(s, r)
	}
}

var words = map[string]struct {
	kind  chunk.Kind
	flags chunk.Flags
}{
	"return": {chunk.Return, chunk.Reserved},
	"struct": {chunk.Struct, chunk.Reserved},
	"union":  {chunk.Struct, chunk.Reserved},
	"class":  {chunk.Struct, chunk.Reserved},

	"int": {chunk.Type, 0}, "char": {chunk.Type, 0}, "void": {chunk.Type, 0},
	"long": {chunk.Type, 0}, "short": {chunk.Type, 0}, "float": {chunk.Type, 0},
	"double": {chunk.Type, 0}, "bool": {chunk.Type, 0}, "size_t": {chunk.Type, 0},
	"signed": {chunk.Type, 0}, "unsigned": {chunk.Type, 0},
}

var keywords = []string{
	"if", "else", "for", "while", "do", "switch", "case", "default", "break",
	"continue", "goto", "typedef", "enum", "static", "const", "sizeof",
}

var directives = map[string]chunk.Kind{
	"define":  chunk.PPDefine,
	"include": chunk.PPInclude,
	"if":      chunk.PPIf,
	"ifdef":   chunk.PPIf,
	"ifndef":  chunk.PPIf,
	"elif":    chunk.PPElse,
	"else":    chunk.PPElse,
	"endif":   chunk.PPEndif,
	"pragma":  chunk.PPPragma,
}

func (l *lexer) word(s start) {
	text := l.text[s.offset:l.cursor]

	switch {
	case l.inPP && l.prev.Is(chunk.Hash):
		kind, ok := directives[text]
		if !ok {
			kind = chunk.PPOther
		}
		l.directive = kind
		l.emit(s, kind, 0)

	case l.inPP && l.directive == chunk.PPDefine && l.prev.Is(chunk.PPDefine):
		kind := chunk.Macro
		if l.peek() == '(' {
			kind = chunk.MacroFunc
		}
		l.emit(s, kind, 0)

	default:
		if w, ok := words[text]; ok {
			l.emit(s, w.kind, w.flags)
			return
		}
		for _, kw := range keywords {
			if kw == text {
				l.emit(s, chunk.Keyword, chunk.Reserved)
				return
			}
		}
		l.emit(s, chunk.Word, 0)
	}
}

func (l *lexer) quoted(s start, quote rune) {
	kind := chunk.String
	if quote == '\'' {
		kind = chunk.Char
	}

	for {
		if l.cursor >= len(l.text) || l.text[l.cursor] == '\n' {
			l.Warnf("unterminated %v literal", kind).With(
				report.Tag("unterminated-literal"),
				report.Location{Line: s.line, Column: s.col, Text: string(quote)},
			)
			break
		}
		r := l.pop()
		if r == '\\' && l.cursor < len(l.text) && l.text[l.cursor] != '\n' {
			l.pop()
			continue
		}
		if r == quote {
			break
		}
	}
	l.emit(s, kind, 0)
}

var puncts = []struct {
	text string
	kind chunk.Kind
}{
	{"->", chunk.Arrow},
	{"[]", chunk.TSquare},
	{"<<=", chunk.Assign}, {">>=", chunk.Assign},
	{"+=", chunk.Assign}, {"-=", chunk.Assign}, {"*=", chunk.Assign}, {"/=", chunk.Assign},
	{"%=", chunk.Assign}, {"&=", chunk.Assign}, {"|=", chunk.Assign}, {"^=", chunk.Assign},
	{"==", chunk.Arith}, {"!=", chunk.Arith}, {"<=", chunk.Arith}, {">=", chunk.Arith},
	{"&&", chunk.Arith}, {"||", chunk.Arith}, {"<<", chunk.Arith}, {">>", chunk.Arith},
	{"++", chunk.Arith}, {"--", chunk.Arith},
	{"{", chunk.BraceOpen}, {"}", chunk.BraceClose},
	{"(", chunk.ParenOpen}, {")", chunk.ParenClose},
	{"[", chunk.SquareOpen}, {"]", chunk.SquareClose},
	{";", chunk.Semicolon}, {",", chunk.Comma}, {":", chunk.Colon},
	{"=", chunk.Assign}, {".", chunk.Dot}, {"*", chunk.Star}, {"&", chunk.Amp},
	{"+", chunk.Arith}, {"-", chunk.Arith}, {"/", chunk.Arith}, {"%", chunk.Arith},
	{"<", chunk.Arith}, {">", chunk.Arith}, {"!", chunk.Arith}, {"~", chunk.Arith},
	{"^", chunk.Arith}, {"|", chunk.Arith}, {"?", chunk.Arith},
}

func (l *lexer) punct(s start, r rune) {
	rest := l.text[s.offset:]
	for _, p := range puncts {
		if strings.HasPrefix(rest, p.text) {
			l.advance(len(p.text) - utf8.RuneLen(r))
			l.emit(s, p.kind, chunk.Punctuator)
			return
		}
	}
	l.emit(s, chunk.Unknown, 0)
}

// emit mints a chunk for the text between s and the cursor.
func (l *lexer) emit(s start, kind chunk.Kind, flags chunk.Flags) chunk.Chunk {
	return l.emitText(s, kind, l.text[s.offset:l.cursor], flags)
}

func (l *lexer) emitText(s start, kind chunk.Kind, text string, flags chunk.Flags) chunk.Chunk {
	stack := &l.stack
	if l.inPP {
		flags |= chunk.InPreproc
		stack = &l.ppStack
	}

	if kind.IsClose() {
		if n := len(*stack); n > 0 && (*stack)[n-1] == kind.Match() {
			*stack = (*stack)[:n-1]
		} else {
			l.Warnf("unmatched %v", kind).With(
				report.Tag("unmatched-delimiter"),
				report.Location{Line: s.line, Column: s.col, Text: text},
			)
		}
	}

	level := len(l.stack)
	braces := count(l.stack, chunk.BraceOpen)
	if l.inPP {
		level += len(l.ppStack)
		braces += count(l.ppStack, chunk.BraceOpen)
	}

	if kind.IsOpen() {
		*stack = append(*stack, kind)
	}

	end := l.col
	if kind.IsNewline() {
		end = s.col + 1
	}

	c := l.list.Append(chunk.Data{
		Kind:       kind,
		Text:       text,
		OrigLine:   s.line,
		OrigCol:    s.col,
		OrigColEnd: end,
		Column:     s.col,
		Level:      level,
		BraceLevel: braces,
		PPLevel:    l.ppLevel,
		Flags:      flags,
	})
	l.prev = c
	return c
}

// endDirective closes the current directive. Conditional nesting changes
// after the directive line, so an #endif line still reports the inner
// PPLevel.
func (l *lexer) endDirective() {
	l.inPP = false
	switch l.directive {
	case chunk.PPIf:
		l.ppLevel++
	case chunk.PPEndif:
		l.ppLevel = max(0, l.ppLevel-1)
	}
	l.directive = chunk.None
	l.ppStack = l.ppStack[:0]
}

func (l *lexer) pop() rune {
	r, n := utf8.DecodeRuneInString(l.text[l.cursor:])
	l.cursor += n
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) peek() rune {
	if l.cursor >= len(l.text) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.text[l.cursor:])
	return r
}

// advance pops the next n bytes.
func (l *lexer) advance(n int) {
	for end := l.cursor + n; l.cursor < end; {
		l.pop()
	}
}

func count(stack []chunk.Kind, kind chunk.Kind) int {
	n := 0
	for _, k := range stack {
		if k == kind {
			n++
		}
	}
	return n
}
