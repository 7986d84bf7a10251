package html

import (
	"strings"

	nethtml "golang.org/x/net/html"
)

// TokenType represents the type of a markup token.
type TokenType int

const (
	// TagToken holds the raw contents between '<' and '>', including
	// the tag name, any attributes, and a leading '/' for close tags.
	TagToken TokenType = iota
	// TextToken holds entity-unescaped character data between tags.
	TextToken
)

// Token is a single lexical unit of the markup stream.
type Token struct {
	Type TokenType
	Data string
}

// Tokenizer splits markup into tag and text tokens by scanning for the
// '<' and '>' delimiters. It has no failure mode: an unterminated tag
// at end of input is simply dropped, and stray '>' characters become
// part of the surrounding text.
type Tokenizer struct {
	input string
	pos   int
}

// NewTokenizer creates a tokenizer over the given markup.
func NewTokenizer(markup string) *Tokenizer {
	return &Tokenizer{input: markup}
}

// Next returns the next token. The second result is false once the
// input is exhausted. Whitespace-only text between tags is dropped.
func (t *Tokenizer) Next() (Token, bool) {
	for t.pos < len(t.input) {
		if t.input[t.pos] == '<' {
			return t.readTag()
		}
		tok, ok := t.readText()
		if ok {
			return tok, true
		}
	}
	return Token{}, false
}

func (t *Tokenizer) readTag() (Token, bool) {
	t.pos++ // consume '<'
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '>' {
		t.pos++
	}
	if t.pos >= len(t.input) {
		// Unterminated tag at end of input; drop it.
		return Token{}, false
	}
	contents := t.input[start:t.pos]
	t.pos++ // consume '>'
	return Token{Type: TagToken, Data: contents}, true
}

// readText accumulates character data up to the next '<'. It returns
// false for whitespace-only runs, which are insignificant between
// tags and would otherwise produce layout-visible ghost nodes from
// source indentation.
func (t *Tokenizer) readText() (Token, bool) {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	raw := t.input[start:t.pos]
	if strings.TrimSpace(raw) == "" {
		return Token{}, false
	}
	return Token{Type: TextToken, Data: nethtml.UnescapeString(raw)}, true
}
