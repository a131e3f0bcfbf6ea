package huffman

import (
	"testing"
)

func TestParseCode(t *testing.T) {
	for _, str := range []string{"", "0", "1", "0110", "0000000011111111", "101010101"} {
		hc, err := ParseCode(str)
		if err != nil {
			t.Errorf("ParseCode(%q) failed: %v", str, err)
			continue
		}
		if hc.Size != len(str) {
			t.Errorf("ParseCode(%q): expected size %d, got %d", str, len(str), hc.Size)
		}
		if expect, actual := "\""+str+"\"", hc.String(); expect != actual {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
		}
	}

	if _, err := ParseCode("012"); err == nil {
		t.Errorf("ParseCode(\"012\") succeeded, expected failure")
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{"0110", "", true},
		{"0110", "0", true},
		{"0110", "011", true},
		{"0110", "0110", true},
		{"0110", "1", false},
		{"0110", "0111", false},
		{"0110", "01100", false},
		{"000000001", "00000000", true},
		{"000000001", "000000000", false},
	}
	for _, row := range testData {
		hc, _ := ParseCode(row.code)
		prefix, _ := ParseCode(row.prefix)
		if actual := hc.HasPrefix(prefix); actual != row.expect {
			t.Errorf("%s.HasPrefix(%s): expected %t, got %t", hc, prefix, row.expect, actual)
		}
	}
}

func TestCode_AppendDoesNotAlias(t *testing.T) {
	base, _ := ParseCode("1010101")
	left := base.Append(0)
	right := base.Append(1)
	if expect, actual := "\"10101010\"", left.String(); expect != actual {
		t.Errorf("wrong left:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "\"10101011\"", right.String(); expect != actual {
		t.Errorf("wrong right:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "\"1010101\"", base.String(); expect != actual {
		t.Errorf("base was modified:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
