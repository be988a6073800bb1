package h2fields

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildList(t *testing.T) Headers {
	t.Helper()
	var hs Headers
	hs.Add("a", "1")
	hs.Add("b", "2")
	hs.Add("a", "3")
	return hs
}

func TestHeadersZeroValueIsEmpty(t *testing.T) {
	var hs Headers
	require.Len(t, hs, 0)
	_, ok := hs.Lookup("anything")
	require.False(t, ok)
}

func TestHeadersPreserveInsertionOrder(t *testing.T) {
	hs := buildList(t)
	require.Len(t, hs, 3)

	expected := []struct{ name, value string }{
		{"a", "1"},
		{"b", "2"},
		{"a", "3"},
	}
	for i, e := range expected {
		require.Equal(t, []byte(e.name), hs[i].Name())
		require.Equal(t, []byte(e.value), hs[i].Value())
	}
}

func TestHeadersGetReturnsFirstMatch(t *testing.T) {
	hs := buildList(t)
	require.Equal(t, "1", hs.Get("a"))
	require.Equal(t, "2", hs.Get("b"))
}

func TestHeadersGetPanicsOnAbsentName(t *testing.T) {
	hs := buildList(t)
	require.Panics(t, func() { hs.Get("z") })
	require.Panics(t, func() { Headers{}.Get("a") })
}

func TestHeadersGetPanicsOnBinaryValue(t *testing.T) {
	var hs Headers
	hs.Push(HeaderFromFields(StringByteField("x-bin"), NewByteField([]byte{0xff, 0xfe})))
	require.Panics(t, func() { hs.Get("x-bin") })

	// the same value stays reachable through the bytes accessor
	v, ok := hs.LookupBytes([]byte("x-bin"))
	require.True(t, ok)
	require.Equal(t, []byte{0xff, 0xfe}, v)
}

func TestHeadersLookup(t *testing.T) {
	hs := buildList(t)

	v, ok := hs.Lookup("a")
	require.True(t, ok)
	require.Equal(t, "1", v)

	_, ok = hs.Lookup("z")
	require.False(t, ok)

	hs.Push(HeaderFromFields(StringByteField("x-bin"), NewByteField([]byte{0x80})))
	_, ok = hs.Lookup("x-bin")
	require.False(t, ok)
}

func TestHeadersGetDefault(t *testing.T) {
	hs := buildList(t)
	require.Equal(t, "1", hs.GetDefault("a", "fallback"))
	require.Equal(t, "fallback", hs.GetDefault("z", "fallback"))
}

func TestHeadersPushBinary(t *testing.T) {
	var hs Headers
	hs.Add("accept", "*/*")
	hs.Push(NewHeader("x-raw", []byte{0x00, 0x01, 0x02}))
	require.Len(t, hs, 2)
	require.Equal(t, []byte{0x00, 0x01, 0x02}, hs[1].Value())
}

func TestHeadersCopyIsIndependent(t *testing.T) {
	hs := buildList(t)
	cp := hs.Copy()
	cp.Add("c", "4")
	require.Len(t, hs, 3)
	require.Len(t, cp, 4)
	for i := range hs {
		require.True(t, hs[i].Equal(cp[i]))
	}
}

func TestHeadersCombine(t *testing.T) {
	hs := buildList(t)
	var other Headers
	other.Add("c", "4")

	combined := hs.Combine(other)
	require.Len(t, combined, 4)
	require.Len(t, hs, 3)
	require.Equal(t, "4", combined.Get("c"))
	require.Equal(t, "1", combined.Get("a"))
}

func TestHeadersNameMatchIsByteExact(t *testing.T) {
	var hs Headers
	hs.Add("Content-Type", "text/plain")
	_, ok := hs.Lookup("content-type")
	require.False(t, ok)
	require.Equal(t, "text/plain", hs.Get("Content-Type"))
}
