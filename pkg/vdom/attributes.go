package vdom

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return A("id", id) }

// Class adds class tokens. Each argument may hold several space-separated
// tokens.
func Class(classes ...string) Attr { return A("class", classes) }

// ClassSet adds the classes whose value is true.
func ClassSet(classes map[string]bool) Attr { return A("class", classes) }

// StyleAttr sets the style attribute (named to avoid conflict with Style
// element). The value is usually a string or a style.Style.
func StyleAttr(style any) Attr { return A("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return A("data-"+key, value) }

// Aria creates an aria-* attribute.
func Aria(key string, value any) Attr { return A("aria-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return A("role", role) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return A("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return A("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return A("dir", dir) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attr { return A("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return A("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return A("alt", text) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return A("rel", rel) }

// Target sets the target attribute.
func Target(target string) Attr { return A("target", target) }

// Width sets the width attribute.
func Width(w int) Attr { return A("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return A("height", h) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return A("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return A("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return A("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return A("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return A("for", id) }

// Action sets the action attribute.
func Action(url string) Attr { return A("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return A("method", method) }

// Boolean attributes

// Disabled sets the disabled attribute.
func Disabled() Attr { return A("disabled", true) }

// Checked sets the checked attribute.
func Checked() Attr { return A("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return A("selected", true) }

// Required sets the required attribute.
func Required() Attr { return A("required", true) }

// Readonly sets the readonly attribute.
func Readonly() Attr { return A("readonly", true) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return A("hidden", true) }

// Async sets the async attribute for script elements.
func Async() Attr { return A("async", true) }

// Defer_ sets the defer attribute for script elements.
func Defer_() Attr { return A("defer", true) }

// Meta attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return A("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return A("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) Attr { return A("http-equiv", value) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return Class(class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Dynamic sets an attribute computed at render time.
func Dynamic(key string, fn func() any) Attr { return A(key, Deferred(fn)) }
