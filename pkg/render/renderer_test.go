package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tagz/pkg/vdom"
)

func el(name string, args ...any) *vdom.Element {
	return vdom.MustEl(name, args...)
}

func TestRenderCompact(t *testing.T) {
	node := el("p", "Hello, World!", el("a", "go to index", "", vdom.Href("/")), el("i"))
	assert.Equal(t, `<p>Hello, World!<a href="/">go to index</a><i></i></p>`, String(node))
}

func TestRenderPretty(t *testing.T) {
	node := el("p", "Hello, World!", el("a", "go to index", "", vdom.Href("/")), el("i"))
	want := "<p>\n" +
		"\tHello, World!\n" +
		"\t<a href=\"/\">\n" +
		"\t\tgo to index\n" +
		"\t</a>\n" +
		"\t<i>\n" +
		"\t</i>\n" +
		"</p>\n"
	assert.Equal(t, want, Pretty(node))
}

func TestRenderPrettyCustomIndent(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true, Indent: "  "})
	node := el("ul", el("li", "a"))
	assert.Equal(t, "<ul>\n  <li>\n    a\n  </li>\n</ul>\n", r.RenderToString(node))
}

func TestRendererDefaultIndent(t *testing.T) {
	assert.Equal(t, DefaultIndent, NewRenderer(RendererConfig{Pretty: true}).Config().Indent)
}

func TestRenderCustomTag(t *testing.T) {
	assert.Equal(t, "<my-custom-tag></my-custom-tag>", String(el("my_custom_tag")))
	assert.Equal(t, "<my-custom-tag>test</my-custom-tag>", String(el("my_custom_tag", "test")))
}

func TestRenderVoidElements(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.Element
		want string
	}{
		{"br", el("br"), `<br/>`},
		{"input", el("input", vdom.Type("text"), vdom.Name("email")), `<input name="email" type="text"/>`},
		{"img", el("img", vdom.Src("/image.png"), vdom.Alt("test")), `<img alt="test" src="/image.png"/>`},
		{"hr", el("hr"), `<hr/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := String(tt.node)
			assert.Equal(t, tt.want, html)
			assert.NotContains(t, html, "</"+tt.name+">")
		})
	}

	assert.Equal(t, "<div>\n\t<br/>\n</div>\n", Pretty(el("div", el("br"))))
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.Element
		want string
	}{
		{"valueless", el("div", vdom.A("custom", nil)), `<div custom></div>`},
		{"classes sorted", el("div", vdom.Class("foo", "bar")), `<div class="bar foo"></div>`},
		{"number", el("div", vdom.A("foo", 123)), `<div foo="123"></div>`},
		{"escaped", el("div", vdom.A("foo", "<b>unsafe</b>")), `<div foo="&lt;b&gt;unsafe&lt;/b&gt;"></div>`},
		{"quotes", el("div", vdom.A("q", `a"b'c`)), `<div q="a&quot;b&#39;c"></div>`},
		{"class among sorted", el("div", vdom.A("z", "2"), vdom.Class("c"), vdom.A("a", "1")), `<div a="1" class="c" z="2"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.node))
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	node := el("input",
		vdom.A("disabled", true),
		vdom.A("hidden", false),
		vdom.A("gone", vdom.Absent),
		vdom.A("bare", nil),
	)
	assert.Equal(t, `<input bare disabled/>`, String(node))

	require.NoError(t, node.SetAttr("disabled", false))
	assert.Equal(t, `<input bare/>`, String(node))
}

func TestRenderDeterministicAttributeOrder(t *testing.T) {
	a := el("div", vdom.A("id", "x"), vdom.A("title", "t"), vdom.Class("k"), vdom.A("data_v", "1"))
	b := el("div", vdom.A("data_v", "1"), vdom.Class("k"), vdom.A("title", "t"), vdom.A("id", "x"))
	assert.Equal(t, String(a), String(b))
	assert.Equal(t, `<div class="k" data-v="1" id="x" title="t"></div>`, String(a))
}

func TestRenderTextEscaping(t *testing.T) {
	node := el("p", `<script>alert('xss')</script> & "q"`)
	assert.Equal(t, `<p>&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt; &amp; &quot;q&quot;</p>`, String(node))
}

func TestRenderRawText(t *testing.T) {
	assert.Equal(t, "<script>if (a < b && c) {}</script>", String(el("script", "if (a < b && c) {}")))
	assert.Equal(t, "<div><b>x</b></div>", String(el("div", vdom.Raw("<b>x</b>"))))

	script := el("script", func() string { return "x<y" })
	assert.Equal(t, "<script>x<y</script>", String(script))

	div := el("div", func() string { return "x<y" })
	assert.Equal(t, "<div>x&lt;y</div>", String(div))
}

func TestRenderDeferredChildren(t *testing.T) {
	assert.Equal(t, "<div>hello</div>", String(el("div", func() string { return "hello" })))
	assert.Equal(t, "<div><span>world</span></div>",
		String(el("div", func() *vdom.Element { return el("span", "world") })))
	assert.Equal(t, "<div>42</div>", String(el("div", vdom.Deferred(func() any { return 42 }))))
	assert.Equal(t, "<div></div>", String(el("div", vdom.Deferred(func() any { return nil }))))

	div := el("div")
	require.NoError(t, div.Append(func() any { return "foo" }))
	assert.Equal(t, "<div>foo</div>", String(div))
}

func TestRenderDeferredSingleEvaluation(t *testing.T) {
	attrCalls, childCalls := 0, 0
	node := el("div",
		vdom.Dynamic("foo", func() any { attrCalls++; return "attrval" }),
		func() string { childCalls++; return "childval" },
	)

	html := String(node)
	assert.Equal(t, `<div foo="attrval">childval</div>`, html)
	assert.Equal(t, 1, attrCalls)
	assert.Equal(t, 1, childCalls)

	// Inspecting the output does not re-evaluate.
	_ = strings.Contains(html, "childval")
	assert.Equal(t, 1, childCalls)

	// Each pass evaluates again, exactly once.
	_ = Pretty(node)
	assert.Equal(t, 2, attrCalls)
	assert.Equal(t, 2, childCalls)
}

func TestRenderDeferredAttributeAbsent(t *testing.T) {
	present := true
	node := el("div", vdom.Dynamic("test", func() any {
		if present {
			return "value"
		}
		return vdom.Absent
	}))

	assert.Equal(t, `<div test="value"></div>`, String(node))
	present = false
	assert.Equal(t, `<div></div>`, String(node))
	present = true
	assert.Equal(t, `<div test="value"></div>`, String(node))
}

func TestRenderDeferredAttributeElementIsNotMarkup(t *testing.T) {
	node := el("div", vdom.Dynamic("foo", func() any { return el("span", vdom.A("bar", "baz")) }))
	html := String(node)

	assert.NotContains(t, html, "<span")
	assert.Equal(t, `<div foo="&lt;span bar=&quot;baz&quot;/&gt;"></div>`, html)
}

func TestRenderDeferredAttributeNilIsBare(t *testing.T) {
	node := el("option", vdom.Dynamic("selected", func() any { return nil }))
	assert.Equal(t, `<option selected></option>`, String(node))
}

func TestRenderFragmentTransparency(t *testing.T) {
	node := el("div", el("h1", "T"), vdom.Fragment(el("p", "a"), el("p", "b")))

	assert.Equal(t, "<div><h1>T</h1><p>a</p><p>b</p></div>", String(node))

	want := "<div>\n" +
		"\t<h1>\n" +
		"\t\tT\n" +
		"\t</h1>\n" +
		"<p>\n" +
		"\ta\n" +
		"</p>\n" +
		"<p>\n" +
		"\tb\n" +
		"</p>\n" +
		"</div>\n"
	assert.Equal(t, want, Pretty(node))
}

func TestRenderTopLevelFragment(t *testing.T) {
	f := vdom.Fragment(el("p", "a"), "tail")
	assert.Equal(t, "<p>a</p>tail", String(f))
	assert.Equal(t, "<p>\n\ta\n</p>\ntail\n", Pretty(f))
	assert.Equal(t, "", String(vdom.Fragment()))
}

func TestRenderPrettyMultilineText(t *testing.T) {
	node := el("style", "a {}\n\nb {}")
	assert.Equal(t, "<style>\n\ta {}\n\n\tb {}\n</style>\n", Pretty(node))
}

func TestRenderPrettySkipsEmptyText(t *testing.T) {
	node := el("div", "", "   ", el("b"))
	assert.Equal(t, "<div>\n\t<b>\n\t</b>\n</div>\n", Pretty(node))
}

func TestRenderNil(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "", HTML5(nil, false))
}

func TestRenderToWriter(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(RendererConfig{})
	require.NoError(t, r.RenderToWriter(&buf, el("div", el("span", "x"))))
	assert.Equal(t, "<div><span>x</span></div>", buf.String())
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("write failed")
}

func TestRenderToWriterStopsOnError(t *testing.T) {
	calls := 0
	node := el("div", func() string { calls++; return "x" })

	w := &failingWriter{}
	err := NewRenderer(RendererConfig{}).RenderToWriter(w, node)

	require.EqualError(t, err, "write failed")
	assert.Equal(t, 1, w.writes)
	assert.Zero(t, calls, "traversal stops at the first failed write")
}
