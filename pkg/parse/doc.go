// Package parse builds vdom trees from HTML text.
//
// The parser runs the golang.org/x/net/html tokenizer over its input and
// keeps an explicit stack of open elements. It does not apply the HTML5
// tree construction rules: a start tag nests under the innermost open
// element, and any end tag closes it.
//
//	res, err := parse.String(`<!DOCTYPE html><html><body><p>hi</p></body></html>`)
//	if res.IsPage() {
//		fmt.Print(render.HTML5(res.Page, true))
//	}
//
// A single html root becomes a *vdom.Page that keeps the declared doctype
// as its preamble. Any other input yields one element, or a fragment when
// there are several top-level nodes.
package parse
