package parse

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/tagz/internal/errors"
	"github.com/vango-dev/tagz/pkg/vdom"
)

// Result is the outcome of a parse: either a full page or a single element
// (possibly a fragment).
type Result struct {
	Element *vdom.Element
	Page    *vdom.Page
}

// Node returns the page root for documents and the element otherwise.
func (r Result) Node() *vdom.Element {
	if r.Page != nil {
		return r.Page.Root
	}
	return r.Element
}

// IsPage reports whether the input was a full html document.
func (r Result) IsPage() bool {
	return r.Page != nil
}

// Parser builds an element tree from markup fed to it in any number of
// pieces. Parsing is permissive: malformed markup never fails, unmatched
// end tags are ignored and unclosed elements are closed at the end.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	buf     bytes.Buffer
	factory *vdom.Factory
}

// New creates a parser that takes element flags from the default HTML
// factory.
func New() *Parser {
	return NewWithFactory(vdom.HTML)
}

// NewWithFactory creates a parser that takes the void and raw-text flags of
// each element from f. Default children and attributes are not applied.
func NewWithFactory(f *vdom.Factory) *Parser {
	return &Parser{factory: f}
}

// Feed appends markup.
func (p *Parser) Feed(s string) {
	p.buf.WriteString(s)
}

// Write appends markup. It never fails.
func (p *Parser) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

// Result parses everything fed so far.
func (p *Parser) Result() (Result, error) {
	b := &builder{factory: p.factory}
	if err := b.run(bytes.NewReader(p.buf.Bytes())); err != nil {
		return Result{}, err
	}
	return b.result()
}

// String parses a complete document or fragment.
func String(src string) (Result, error) {
	p := New()
	p.Feed(src)
	return p.Result()
}

// Reader reads r to the end and parses it.
func Reader(r io.Reader) (Result, error) {
	p := New()
	if _, err := io.Copy(p, r); err != nil {
		return Result{}, errors.New("E120").Wrap(err)
	}
	return p.Result()
}

// builder consumes tokenizer events with an explicit stack of open
// elements.
type builder struct {
	factory *vdom.Factory
	stack   []*vdom.Element
	roots   []any
	doctype string
}

// rawTextTags are read by the tokenizer without entity decoding. Unless the
// element is open and raw-text, what follows is tokenized as markup instead.
// title and textarea are left alone: their text is decoded.
var rawTextTags = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"xmp":       true,
}

func (b *builder) run(r io.Reader) error {
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return errors.New("E120").Wrap(err)
			}
			return nil

		case html.DoctypeToken:
			b.doctype = string(z.Raw())

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			el, err := b.element(tok)
			if err != nil {
				return err
			}
			if err := b.attach(el); err != nil {
				return err
			}
			pushed := tt == html.StartTagToken && !el.IsVoid()
			if pushed {
				b.stack = append(b.stack, el)
			}
			if rawTextTags[tok.Data] && (!pushed || !el.IsRawText()) {
				z.NextIsNotRawText()
			}

		case html.EndTagToken:
			if n := len(b.stack); n > 0 {
				b.stack = b.stack[:n-1]
			}

		case html.TextToken:
			if err := b.attach(string(z.Text())); err != nil {
				return err
			}

		case html.CommentToken:
			// dropped
		}
	}
}

func (b *builder) element(tok html.Token) (*vdom.Element, error) {
	cfg := b.factory.Config(tok.Data)
	el, err := vdom.NewElementConfig(tok.Data, vdom.TagConfig{Void: cfg.Void, RawText: cfg.RawText})
	if err != nil {
		return nil, err
	}
	for _, a := range tok.Attr {
		if a.Key == "class" {
			el.AddClass(a.Val)
			continue
		}
		var value any = a.Val
		if a.Val == "" {
			value = nil
		}
		if err := el.SetAttr(a.Key, value); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// attach adds a node to the innermost open element, or to the root list.
func (b *builder) attach(node any) error {
	if n := len(b.stack); n > 0 {
		return b.stack[n-1].Append(node)
	}
	b.roots = append(b.roots, node)
	return nil
}

func (b *builder) result() (Result, error) {
	roots := make([]any, 0, len(b.roots))
	for _, r := range b.roots {
		if s, ok := r.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		roots = append(roots, r)
	}

	switch len(roots) {
	case 0:
		return Result{Element: vdom.Fragment()}, nil
	case 1:
		switch v := roots[0].(type) {
		case string:
			return Result{Element: vdom.Fragment(v)}, nil
		case *vdom.Element:
			if v.Name() == "html" {
				page, err := b.page(v)
				if err != nil {
					return Result{}, err
				}
				return Result{Page: page}, nil
			}
			return Result{Element: v}, nil
		}
	}
	return Result{Element: vdom.Fragment(roots...)}, nil
}

// page lifts a parsed html element into a Page.
func (b *builder) page(root *vdom.Element) (*vdom.Page, error) {
	var head, body *vdom.Element
	for _, child := range root.Children() {
		el, ok := child.(*vdom.Element)
		if !ok {
			continue
		}
		switch {
		case head == nil && el.Name() == "head":
			head = el
		case body == nil && el.Name() == "body":
			body = el
		}
	}

	var headElements []*vdom.Element
	if head != nil {
		for _, child := range head.Children() {
			if el, ok := child.(*vdom.Element); ok {
				headElements = append(headElements, el)
			}
		}
	}

	var rootArgs []any
	if classes := root.Classes(); len(classes) > 0 {
		rootArgs = append(rootArgs, vdom.Class(classes...))
	}
	attrs := root.Attrs()
	for _, key := range root.AttrKeys() {
		if s, ok := attrs[key].(string); ok {
			rootArgs = append(rootArgs, vdom.A(key, s))
		}
	}

	page, err := vdom.NewPage(body, headElements, rootArgs...)
	if err != nil {
		return nil, err
	}
	if b.doctype != "" {
		page.Preamble = b.doctype + "\n"
	}
	return page, nil
}
