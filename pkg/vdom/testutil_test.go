package vdom

import "fmt"

// fmtPointer renders a func value's address for identity comparisons.
func fmtPointer(v any) string {
	return fmt.Sprintf("%p", v)
}
