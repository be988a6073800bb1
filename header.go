package h2fields

import "fmt"

// A Header is a single name/value pair. Both parts are opaque byte sequences;
// this layer attaches no meaning to them (not even pseudo-header or case
// rules — that policy lives in the protocol layer above). A Header never
// changes after construction.
type Header struct {
	name, value ByteField
}

// NewHeader builds a Header from any two byte-ish or text-ish sources. The
// sources are copied, so the Header never aliases caller memory. It cannot
// fail.
func NewHeader[N, V ByteSource](name N, value V) Header {
	return Header{
		name:  byteFieldOf(name),
		value: byteFieldOf(value),
	}
}

// HeaderFromFields pairs two already-built ByteFields without copying. This is
// the entry point for binary values constructed via NewByteField and friends.
func HeaderFromFields(name, value ByteField) Header {
	return Header{name: name, value: value}
}

// HeaderFromPair is shorthand for NewHeader over a two-element pair.
func HeaderFromPair[T ByteSource](p [2]T) Header {
	return NewHeader(p[0], p[1])
}

// Name returns a read-only view of the header name. The returned slice must
// not be modified.
func (h Header) Name() []byte {
	return h.name.Bytes()
}

// Value returns a read-only view of the header value. The returned slice must
// not be modified.
func (h Header) Value() []byte {
	return h.value.Bytes()
}

// Equal reports whether both the names and the values are byte-for-byte
// equal. Header contains slice-backed fields, so == does not compile; this is
// the only equality.
func (h Header) Equal(other Header) bool {
	return h.name.Equal(other.name) && h.value.Equal(other.value)
}

func (h Header) GoString() string {
	return fmt.Sprintf("Header{name: %#v, value: %#v}", h.name, h.value)
}
