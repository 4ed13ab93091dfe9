package ctxlog

import "slices"

// Context carries the structured annotations of a single log call.
// Key order is irrelevant; adapters that need stable output use Keys.
type Context map[string]any

// Keys returns the context keys in sorted order.
func (c Context) Keys() []string {
	if len(c) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func orEmpty(c Context) Context {
	if c == nil {
		return Context{}
	}
	return c
}
