package html

import "strings"

// voidElements never take children and are never pushed onto the open
// element stack.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// headElements may only appear inside <head>; an occurrence of any
// other tag while <head> is open implies the head section has ended.
var headElements = map[string]bool{
	"base": true, "basefont": true, "bgsound": true, "noscript": true,
	"link": true, "meta": true, "title": true, "style": true,
	"script": true,
}

// Parser assembles a document tree from a token stream. The unfinished
// stack holds the currently-open elements, root first; every entry
// except the first is a child of the entry before it.
type Parser struct {
	tokenizer  *Tokenizer
	unfinished []*Node
}

// NewParser creates a parser for the given markup.
func NewParser(markup string) *Parser {
	return &Parser{tokenizer: NewTokenizer(markup)}
}

// Parse builds a document tree from markup. It cannot fail: malformed
// input is repaired via implicit-tag insertion and attribute
// tolerance, and the result always has exactly one root element.
func Parse(markup string) *Node {
	return NewParser(markup).Parse()
}

// Parse consumes the whole token stream and returns the root element.
func (p *Parser) Parse() *Node {
	for {
		tok, ok := p.tokenizer.Next()
		if !ok {
			break
		}
		switch tok.Type {
		case TextToken:
			p.addText(tok.Data)
		case TagToken:
			p.addTag(tok.Data)
		}
	}
	return p.finish()
}

func (p *Parser) addText(text string) {
	p.implicitTags("")
	parent := p.unfinished[len(p.unfinished)-1]
	parent.AppendChild(NewText(text))
}

func (p *Parser) addTag(contents string) {
	tag, attrs := parseTagContents(contents)
	if strings.HasPrefix(tag, "!") {
		// Doctype declarations and comments.
		return
	}
	p.implicitTags(tag)
	switch {
	case strings.HasPrefix(tag, "/"):
		if len(p.unfinished) == 1 {
			// Closing the root would leave the stack empty; ignore.
			return
		}
		node := p.unfinished[len(p.unfinished)-1]
		p.unfinished = p.unfinished[:len(p.unfinished)-1]
		parent := p.unfinished[len(p.unfinished)-1]
		parent.AppendChild(node)
	case voidElements[tag]:
		parent := p.unfinished[len(p.unfinished)-1]
		parent.AppendChild(NewElement(tag, attrs))
	default:
		node := NewElement(tag, attrs)
		if len(p.unfinished) > 0 {
			node.Parent = p.unfinished[len(p.unfinished)-1]
		}
		p.unfinished = append(p.unfinished, node)
	}
}

// implicitTags inserts the structural tags the source omitted, so that
// the stack always describes a well-formed html/head/body skeleton
// before any content is attached. The incoming tag is "" for text.
func (p *Parser) implicitTags(tag string) {
	for {
		switch {
		case len(p.unfinished) == 0:
			if tag == "html" {
				return
			}
			p.addTag("html")
		case len(p.unfinished) == 1 && p.unfinished[0].Tag == "html":
			if tag == "head" || tag == "body" || tag == "/html" {
				return
			}
			if headElements[tag] {
				p.addTag("head")
			} else {
				p.addTag("body")
			}
		case len(p.unfinished) == 2 && p.unfinished[1].Tag == "head":
			if tag == "/head" || headElements[tag] {
				return
			}
			p.addTag("/head")
		default:
			return
		}
	}
}

// finish closes any still-open elements in LIFO order and returns the
// root. Empty input yields a bare <html> root.
func (p *Parser) finish() *Node {
	if len(p.unfinished) == 0 {
		p.addTag("html")
	}
	for len(p.unfinished) > 1 {
		node := p.unfinished[len(p.unfinished)-1]
		p.unfinished = p.unfinished[:len(p.unfinished)-1]
		parent := p.unfinished[len(p.unfinished)-1]
		parent.AppendChild(node)
	}
	root := p.unfinished[0]
	p.unfinished = nil
	return root
}

// parseTagContents splits raw tag contents into a lower-cased tag name
// and an attribute map. Attribute pairs are split on the first '=';
// a missing value defaults to the empty string, and a value wrapped in
// matching quotes has the quotes stripped. Malformed pairs are kept on
// a best-effort basis, never rejected.
func parseTagContents(contents string) (string, map[string]string) {
	parts := splitTagParts(contents)
	if len(parts) == 0 {
		return "", map[string]string{}
	}
	tag := strings.ToLower(parts[0])
	attrs := make(map[string]string, len(parts)-1)
	for _, part := range parts[1:] {
		key, value, found := strings.Cut(part, "=")
		if !found {
			attrs[strings.ToLower(part)] = ""
			continue
		}
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}
		attrs[strings.ToLower(key)] = value
	}
	return tag, attrs
}

// splitTagParts splits tag contents on whitespace, except inside
// quoted attribute values, so that name="value with spaces" survives
// as a single part.
func splitTagParts(contents string) []string {
	var parts []string
	var current strings.Builder
	var quote byte
	for i := 0; i < len(contents); i++ {
		c := contents[i]
		switch {
		case quote != 0:
			current.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			current.WriteByte(c)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
