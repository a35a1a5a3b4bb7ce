package charclass

import (
	"fmt"
	"strings"
	"testing"
)

func TestIsTokenAgreesWithRFC(t *testing.T) {
	// Arrange
	var b strings.Builder
	want := func(c byte) bool {
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
			return true
		}
		return strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0
	}

	// Act and assert
	for i := 0; i <= 255; i++ {
		c := byte(i)
		if IsToken(c) != want(c) {
			fmt.Fprintf(&b, "byte %#x: IsToken=%v want=%v\n", c, IsToken(c), want(c))
		}
	}
	if b.Len() > 0 {
		t.Fatalf("\n%s", b.String())
	}
}

func TestIsFieldVCharAgreesWithRFC(t *testing.T) {
	// Arrange
	type testcase struct {
		b    byte
		want bool
	}
	tests := []testcase{
		{0x00, false},
		{0x1F, false},
		{0x20, true}, // SP
		{0x09, true}, // HTAB
		{0x21, true},
		{0x7E, true},
		{0x7F, false}, // DEL
		{0x80, true},  // obs-text
		{0xFF, true},
	}

	// Act and assert
	for _, tc := range tests {
		if got := IsFieldVChar(tc.b); got != tc.want {
			t.Errorf("IsFieldVChar(%#x) = %v, want %v", tc.b, got, tc.want)
		}
	}
}

func TestIsUnreservedAgreesWithRFC(t *testing.T) {
	for _, s := range []string{"-", ".", "_", "~", "a", "Z", "0"} {
		if !IsUnreserved(s[0]) {
			t.Errorf("IsUnreserved(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"/", "%", "?", "#", " "} {
		if IsUnreserved(s[0]) {
			t.Errorf("IsUnreserved(%q) = true, want false", s)
		}
	}
}

func TestIsPCharIncludesUnreservedAndSubdelims(t *testing.T) {
	for _, s := range []string{"a", "0", "-", ":", "@", "+", "="} {
		if !IsPChar(s[0]) {
			t.Errorf("IsPChar(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"/", "?", "#", "%"} {
		if IsPChar(s[0]) {
			t.Errorf("IsPChar(%q) = true, want false", s)
		}
	}
}

func TestIsSchemeTail(t *testing.T) {
	for _, s := range []string{"a", "9", "+", "-", "."} {
		if !IsSchemeTail(s[0]) {
			t.Errorf("IsSchemeTail(%q) = false, want true", s)
		}
	}
	if IsSchemeTail('/') {
		t.Errorf("IsSchemeTail('/') = true, want false")
	}
}

func TestHexHelpers(t *testing.T) {
	type testcase struct {
		b      byte
		isHex  bool
		value  byte
	}
	tests := []testcase{
		{'0', true, 0},
		{'9', true, 9},
		{'a', true, 10},
		{'f', true, 15},
		{'A', true, 10},
		{'F', true, 15},
		{'g', false, 0},
		{' ', false, 0},
	}
	for _, tc := range tests {
		if got := IsHexDigit(tc.b); got != tc.isHex {
			t.Errorf("IsHexDigit(%q) = %v, want %v", tc.b, got, tc.isHex)
		}
		if tc.isHex {
			if got := HexValue(tc.b); got != tc.value {
				t.Errorf("HexValue(%q) = %v, want %v", tc.b, got, tc.value)
			}
		}
	}
}

func TestToUpperHex(t *testing.T) {
	if ToUpperHex('a') != 'A' || ToUpperHex('f') != 'F' || ToUpperHex('5') != '5' || ToUpperHex('B') != 'B' {
		t.Fatalf("ToUpperHex did not fold lowercase hex digits correctly")
	}
}
