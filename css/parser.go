package css

import (
	"errors"
	"strings"
)

// Parser is a recursive-descent stylesheet parser with local error
// recovery: a declaration that fails to parse is skipped up to the
// next ';' or '}', and a rule that fails to parse is skipped past its
// closing '}', so one malformed construct never poisons the rest of
// the sheet.
type Parser struct {
	s string
	i int
}

// NewParser creates a parser over the given stylesheet text.
func NewParser(css string) *Parser {
	return &Parser{s: css}
}

// Parse returns the rules of a stylesheet in source order. It never
// aborts on malformed input.
func Parse(css string) []Rule {
	return NewParser(css).Parse()
}

// Parse consumes the whole input, collecting every parseable rule.
func (p *Parser) Parse() []Rule {
	var rules []Rule
	for p.i < len(p.s) {
		p.whitespace()
		if p.i >= len(p.s) {
			break
		}
		sel, err := p.selector()
		if err != nil {
			p.skipRule()
			continue
		}
		p.whitespace()
		if err := p.literal('{'); err != nil {
			p.skipRule()
			continue
		}
		p.whitespace()
		decls := p.body()
		// body stops at '}' or end of input; consume the brace.
		p.literal('}')
		rules = append(rules, Rule{Selector: sel, Declarations: decls})
	}
	return rules
}

// ParseDeclarations parses a bare declaration list, as found in an
// element's style attribute.
func ParseDeclarations(s string) map[string]string {
	p := NewParser(s)
	p.whitespace()
	return p.body()
}

func (p *Parser) whitespace() {
	for p.i < len(p.s) && isSpace(p.s[p.i]) {
		p.i++
	}
}

// word consumes a run of alphanumeric characters plus the handful of
// punctuation that appears in property names, values, and selectors.
func (p *Parser) word() (string, error) {
	start := p.i
	for p.i < len(p.s) && isWordChar(p.s[p.i]) {
		p.i++
	}
	if p.i == start {
		return "", errors.New("css: expected word")
	}
	return p.s[start:p.i], nil
}

func (p *Parser) literal(c byte) error {
	if p.i >= len(p.s) || p.s[p.i] != c {
		return errors.New("css: expected literal " + string(c))
	}
	p.i++
	return nil
}

// pair consumes one "property : value" declaration. Values may span
// several words (e.g. shorthand lists), joined by single spaces.
func (p *Parser) pair() (string, string, error) {
	prop, err := p.word()
	if err != nil {
		return "", "", err
	}
	p.whitespace()
	if err := p.literal(':'); err != nil {
		return "", "", err
	}
	p.whitespace()
	var parts []string
	for {
		val, err := p.word()
		if err != nil {
			break
		}
		parts = append(parts, val)
		p.whitespace()
	}
	if len(parts) == 0 {
		return "", "", errors.New("css: expected value")
	}
	return strings.ToLower(prop), strings.Join(parts, " "), nil
}

// body consumes declarations up to (but not including) the closing
// '}'. A declaration that fails to parse is skipped to the next ';'
// or '}' before resuming.
func (p *Parser) body() map[string]string {
	decls := make(map[string]string)
	for p.i < len(p.s) && p.s[p.i] != '}' {
		prop, val, err := p.pair()
		if err == nil {
			decls[prop] = val
			p.whitespace()
			if err := p.literal(';'); err != nil {
				break
			}
			p.whitespace()
			continue
		}
		found, ok := p.ignoreUntil(";}")
		if !ok {
			break
		}
		if found == ';' {
			p.literal(';')
			p.whitespace()
		}
		// A '}' is left for the caller.
		if found == '}' {
			break
		}
	}
	return decls
}

// selector dispatches on the leading character: '#' for id, '.' for
// class, otherwise a lower-cased tag name.
func (p *Parser) selector() (Selector, error) {
	if p.i < len(p.s) {
		switch p.s[p.i] {
		case '#':
			p.i++
			name, err := p.word()
			if err != nil {
				return Selector{}, err
			}
			return Selector{Type: IDSelector, Value: name}, nil
		case '.':
			p.i++
			name, err := p.word()
			if err != nil {
				return Selector{}, err
			}
			return Selector{Type: ClassSelector, Value: name}, nil
		}
	}
	name, err := p.word()
	if err != nil {
		return Selector{}, err
	}
	return Selector{Type: TagSelector, Value: strings.ToLower(name)}, nil
}

// skipRule discards input through the end of the current rule.
func (p *Parser) skipRule() {
	if _, ok := p.ignoreUntil("}"); ok {
		p.literal('}')
	}
}

// ignoreUntil advances to the first occurrence of any character in
// chars, returning which one was found. It does not consume it.
func (p *Parser) ignoreUntil(chars string) (byte, bool) {
	for p.i < len(p.s) {
		if strings.IndexByte(chars, p.s[p.i]) >= 0 {
			return p.s[p.i], true
		}
		p.i++
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '%' || c == '#'
}
