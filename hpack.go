package h2fields

import (
	"bytes"

	"golang.org/x/net/http2/hpack"
)

// EncodeHpack serializes the list into a single HPACK header block, in
// insertion order. The encoder is fresh per call, so the block carries no
// dynamic-table state; connection-scoped encoding belongs to the framing
// layer that owns the connection.
func (hs Headers) EncodeHpack() []byte {
	buf := bytes.NewBuffer(nil)
	enc := hpack.NewEncoder(buf)
	for i := range hs {
		_ = enc.WriteField(hpack.HeaderField{
			Name:  string(hs[i].Name()),
			Value: string(hs[i].Value()),
		})
	}
	return buf.Bytes()
}

// DecodeHpack decodes a complete HPACK header block into a Headers,
// preserving field order. The block must be self-contained: fields referring
// to another connection's dynamic table fail to decode.
func DecodeHpack(block []byte) (Headers, error) {
	var hs Headers
	dec := hpack.NewDecoder(^uint32(0), func(f hpack.HeaderField) {
		hs.Push(NewHeader(f.Name, f.Value))
	})
	if _, err := dec.Write(block); err != nil {
		return nil, err
	}
	if err := dec.Close(); err != nil {
		return nil, err
	}
	return hs, nil
}
