package h2fields

import (
	"bytes"

	"github.com/quic-go/qpack"
)

// EncodeQpack serializes the list into a QPACK encoded field section, in
// insertion order. Like EncodeHpack, the encoder is stateless across calls.
func (hs Headers) EncodeQpack() []byte {
	buf := bytes.NewBuffer(nil)
	enc := qpack.NewEncoder(buf)
	for i := range hs {
		_ = enc.WriteField(qpack.HeaderField{
			Name:  string(hs[i].Name()),
			Value: string(hs[i].Value()),
		})
	}
	return buf.Bytes()
}

// DecodeQpack decodes a complete QPACK encoded field section into a Headers,
// preserving field order.
func DecodeQpack(block []byte) (Headers, error) {
	var hs Headers
	dec := qpack.NewDecoder(func(f qpack.HeaderField) {
		hs.Push(NewHeader(f.Name, f.Value))
	})
	if _, err := dec.Write(block); err != nil {
		return nil, err
	}
	return hs, nil
}
