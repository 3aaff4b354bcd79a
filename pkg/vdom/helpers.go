package vdom

import "fmt"

// Fragment groups children without a wrapper element. It panics only if a
// child has an unsupported type.
func Fragment(children ...any) *Element {
	el, err := newElement("", TagConfig{}, children)
	if err != nil {
		panic(err)
	}
	return el
}

// Raw creates a fragment whose text is emitted without escaping.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Element {
	el, err := newElement("", TagConfig{RawText: true}, []any{html})
	if err != nil {
		panic(err)
	}
	return el
}

// Textf formats a text child.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// If returns the element if condition is true, nil otherwise.
// Constructors ignore nil arguments.
func If(condition bool, el *Element) *Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first element if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, el *Element) *Element {
	if !condition {
		return el
	}
	return nil
}

// Range maps items to elements, skipping nil results.
func Range[T any](items []T, fn func(int, T) *Element) []*Element {
	out := make([]*Element, 0, len(items))
	for i, item := range items {
		if el := fn(i, item); el != nil {
			out = append(out, el)
		}
	}
	return out
}
