package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x0, expect: `""`},
		{size: 1, bits: 0x1, expect: `"1"`},
		{size: 3, bits: 0x1, expect: `"001"`},
		{size: 9, bits: 0x101, expect: `"100000001"`},
	}
	for _, row := range testData {
		if actual := MakeCode(row.size, row.bits).String(); row.expect != actual {
			t.Errorf("MakeCode(%d, %#x): expect %s, actual %s", row.size, row.bits, row.expect, actual)
		}
	}
}

func TestCode_AppendTruncate(t *testing.T) {
	hc := Code{}.Append(true).Append(false).Append(true)
	if expect := MakeCode(3, 0x5); expect != hc {
		t.Errorf("Append: expect %s, actual %s", expect, hc)
	}

	// Truncate must clear the dropped bits, or the result would not
	// compare equal to a freshly built code.
	if expect, actual := MakeCode(1, 0x1), hc.Truncate(1); expect != actual {
		t.Errorf("Truncate: expect %s, actual %s", expect, actual)
	}
	if expect, actual := (Code{}), hc.Truncate(0); expect != actual {
		t.Errorf("Truncate: expect %s, actual %s", expect, actual)
	}

	var long Code
	for i := 0; i < maxBitsPerCode; i++ {
		long = long.Append(i%2 == 0)
	}
	if long.Size != maxBitsPerCode {
		t.Errorf("expected %d bits, got %d", maxBitsPerCode, long.Size)
	}
	if !long.Bit(maxBitsPerCode-1) || long.Bit(maxBitsPerCode-2) {
		t.Errorf("wrong trailing bits in %s", long)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb)
	type testRow struct {
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{prefix: Code{}, expect: true},
		{prefix: MakeCode(1, 0x1), expect: true},
		{prefix: MakeCode(2, 0x2), expect: true},
		{prefix: MakeCode(2, 0x3), expect: false},
		{prefix: MakeCode(4, 0xb), expect: true},
		{prefix: MakeCode(5, 0x16), expect: false},
	}
	for _, row := range testData {
		if actual := hc.HasPrefix(row.prefix); row.expect != actual {
			t.Errorf("%s.HasPrefix(%s): expect %v, actual %v", hc, row.prefix, row.expect, actual)
		}
	}
}

func TestCode_Compare(t *testing.T) {
	ordered := []Code{
		{},
		MakeCode(1, 0x0),
		MakeCode(1, 0x1),
		MakeCode(3, 0x0),
		MakeCode(3, 0x4),
		MakeCode(4, 0x1),
	}
	for i := range ordered {
		for j := range ordered {
			expect := 0
			if i < j {
				expect = -1
			} else if i > j {
				expect = 1
			}
			if actual := ordered[i].Compare(ordered[j]); expect != actual {
				t.Errorf("%s.Compare(%s): expect %d, actual %d", ordered[i], ordered[j], expect, actual)
			}
		}
	}
}
