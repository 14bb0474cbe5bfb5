package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func makeTestTree() *Tree {
	var f Frequencies
	copy(f[:], []uint64{5, 9, 12, 13, 16, 45})
	t, err := BuildTree(&f)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(makeTestTree())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		var expect byte
		if symbol < len(expectSizes) {
			expect = expectSizes[symbol]
		}
		if actual := e.Encode(Symbol(symbol)).Size; expect != actual {
			t.Errorf("wrong size for symbol %d: expect %d, actual %d", symbol, expect, actual)
		}
	}

	if n := e.NumCodes(); n != 6 {
		t.Errorf("expected 6 codes, got %d", n)
	}
}

func TestEncoder_Degenerate(t *testing.T) {
	f := CountFrequencies([]byte("zzz"))
	tree, err := BuildTree(&f)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	var e Encoder
	e.Init(tree)

	expect := MakeCode(1, 0)
	actual := e.Encode('z')
	if expect != actual {
		t.Errorf("wrong code: expect %s, actual %s", expect, actual)
	}
	if e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", e.MinSize(), e.MaxSize())
	}
}

func TestEncoder_EncodeTo(t *testing.T) {
	var e Encoder
	e.Init(makeTestTree())

	var payload Bits
	if err := e.EncodeTo(&payload, []byte{5, 2, 0, 4}); err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}
	expect := "01001100111"
	if actual := payload.String(); expect != actual {
		t.Errorf("wrong payload:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	// Appending must preserve bits already in dst, even mid-byte.
	prefixed, _ := ParseBits("101")
	if err := e.EncodeTo(&prefixed, []byte{5, 2, 0, 4}); err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}
	if expect, actual := "101"+expect, prefixed.String(); expect != actual {
		t.Errorf("wrong payload:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := []byte{0xa9, 0x9c}, prefixed.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}

	before := payload.String()
	err := e.EncodeTo(&payload, []byte{5, 6})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if after := payload.String(); before != after {
		t.Errorf("payload modified on error:\n\tbefore: %s\n\tafter:  %s", before, after)
	}
}
