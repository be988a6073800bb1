package h2fields

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Headers is an ordered list of Header entries, as assembled before hand-off
// to a compression layer. Insertion order is significant and repeated names
// are legal (cookies rely on this); nothing here deduplicates, sorts, or
// case-folds. The zero value is an empty list.
//
// A Headers is meant for single-owner construction followed by read-only
// sharing; concurrent Add/Push calls need external synchronization.
type Headers []Header

// Add appends a header built from two text arguments. Binary-valued headers
// go through Push instead.
func (hs *Headers) Add(name, value string) {
	*hs = append(*hs, NewHeader(name, value))
}

// Push appends an already-built Header.
func (hs *Headers) Push(h Header) {
	*hs = append(*hs, h)
}

// Get returns the value of the first entry whose name byte-equals the UTF-8
// encoding of name, reinterpreted as text.
//
// Callers must know, by protocol contract, that such an entry exists and that
// its value is valid UTF-8: a miss on either count is a precondition
// violation and panics. Call sites that cannot promise this use Lookup.
func (hs Headers) Get(name string) string {
	for i := range hs {
		if string(hs[i].Name()) == name {
			v := hs[i].Value()
			if !utf8.Valid(v) {
				panic(fmt.Errorf("header %#v has a non-UTF-8 value: %#v", name, hs[i].value))
			}
			return string(v)
		}
	}
	panic(fmt.Errorf("no header named %#v", name))
}

// Lookup is the non-fatal counterpart of Get: it reports ok=false, instead of
// panicking, when no entry matches or the first match has a non-UTF-8 value.
func (hs Headers) Lookup(name string) (value string, ok bool) {
	for i := range hs {
		if string(hs[i].Name()) == name {
			v := hs[i].Value()
			if !utf8.Valid(v) {
				return "", false
			}
			return string(v), true
		}
	}
	return "", false
}

// LookupBytes returns the raw value of the first entry whose name equals
// name, with no text requirement on the value.
func (hs Headers) LookupBytes(name []byte) (value []byte, ok bool) {
	for i := range hs {
		if bytes.Equal(hs[i].Name(), name) {
			return hs[i].Value(), true
		}
	}
	return nil, false
}

// GetDefault returns the value for name, or def when Lookup fails.
func (hs Headers) GetDefault(name, def string) string {
	if v, ok := hs.Lookup(name); ok {
		return v
	}
	return def
}

// Copy returns a new list with the same entries. Headers are immutable
// values, so a shallow copy is a full logical copy.
func (hs Headers) Copy() Headers {
	return append(Headers(nil), hs...)
}

// Combine returns a new list holding hs followed by other; the receiver is
// left untouched.
func (hs Headers) Combine(other Headers) Headers {
	return append(hs.Copy(), other...)
}
