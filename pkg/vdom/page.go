package vdom

// DefaultPreamble is written before every rendered page unless a parsed
// document recorded its own declaration.
const DefaultPreamble = "<!doctype html>\n"

// Page is a full HTML document: an html root holding a head and a body.
// The three elements are shared with the root, so mutating Head or Body
// changes the rendered page.
type Page struct {
	Root *Element
	Head *Element
	Body *Element

	// Preamble is emitted before the root element.
	Preamble string
}

// NewPage assembles html(head, body). A nil body becomes an empty <body>;
// headElements become the children of <head>. rootArgs are applied to the
// <html> element (usually attributes such as A("lang", "en")).
func NewPage(body *Element, headElements []*Element, rootArgs ...any) (*Page, error) {
	if body == nil {
		var err error
		if body, err = HTML.Get("body").New(); err != nil {
			return nil, err
		}
	}

	head, err := HTML.Get("head").New(headElements)
	if err != nil {
		return nil, err
	}

	root, err := HTML.Get("html").build(rootArgs, true)
	if err != nil {
		return nil, err
	}
	// head and body are owned by the page, not copied into it.
	root.children = append([]any{head, body}, root.children...)

	return &Page{
		Root:     root,
		Head:     head,
		Body:     body,
		Preamble: DefaultPreamble,
	}, nil
}

// MustPage is like NewPage but panics on error.
func MustPage(body *Element, headElements []*Element, rootArgs ...any) *Page {
	p, err := NewPage(body, headElements, rootArgs...)
	if err != nil {
		panic(err)
	}
	return p
}

// Copy returns an independent deep copy of the page.
func (p *Page) Copy() *Page {
	root := p.Root.Copy()
	clone := &Page{Root: root, Preamble: p.Preamble}
	for _, child := range root.children {
		el, ok := child.(*Element)
		if !ok {
			continue
		}
		switch {
		case clone.Head == nil && el.name == "head":
			clone.Head = el
		case clone.Body == nil && el.name == "body":
			clone.Body = el
		}
	}
	return clone
}
