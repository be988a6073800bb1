package h2fields

import (
	"bytes"
	"fmt"
)

// A ByteField is an immutable byte sequence holding a header name or value.
// The bytes need not be valid text. Copying a ByteField is cheap: copies
// share the backing storage, which is safe because the contents never change
// after construction.
type ByteField struct {
	bs []byte
}

// ByteSource is the set of types that convert to a ByteField at a call site
// without an explicit constructor.
type ByteSource interface {
	~string | ~[]byte
}

// NewByteField wraps b without copying. The caller hands over ownership and
// must not modify b afterward; every other constructor funnels into this one.
func NewByteField(b []byte) ByteField {
	return ByteField{bs: b}
}

// CopyByteField copies b into an owned buffer. Use this when b is borrowed
// from a caller or a reused buffer. Fixed-size arrays go through it as
// CopyByteField(a[:]).
func CopyByteField(b []byte) ByteField {
	c := make([]byte, len(b))
	copy(c, b)
	return NewByteField(c)
}

// StringByteField takes the byte encoding of s.
func StringByteField(s string) ByteField {
	return NewByteField([]byte(s))
}

// BufferByteField copies the current contents of buf. Later writes to buf are
// not observed.
func BufferByteField(buf *bytes.Buffer) ByteField {
	return CopyByteField(buf.Bytes())
}

// byteFieldOf copies v into an owned buffer regardless of source type, so the
// result never aliases caller memory.
func byteFieldOf[T ByteSource](v T) ByteField {
	return CopyByteField([]byte(v))
}

// Bytes returns a read-only view of the contents. The returned slice must not
// be modified.
func (f ByteField) Bytes() []byte {
	return f.bs
}

func (f ByteField) Len() int {
	return len(f.bs)
}

// String returns the contents reinterpreted as text. It is the inverse of
// StringByteField for any input.
func (f ByteField) String() string {
	return string(f.bs)
}

// Equal reports whether f and other hold the same bytes, whether or not they
// share storage.
func (f ByteField) Equal(other ByteField) bool {
	return bytes.Equal(f.bs, other.bs)
}

// GoString renders the contents as a quoted byte-string literal: printable
// ASCII as-is, everything else as \xhh. Diagnostics only, not a wire format.
func (f ByteField) GoString() string {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`b"`)
	for _, c := range f.bs {
		if c >= 0x20 && c < 0x7f {
			buf.WriteByte(c)
		} else {
			_, _ = fmt.Fprintf(buf, `\x%02x`, c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
