package cast

import (
	"testing"
)

func TestKeyNumberRoundTrip(t *testing.T) {
	for n := 1; n <= 64; n++ {
		key := NumberToKey(n)
		if len(key) != 6 {
			t.Fatalf("NumberToKey(%d) = %q, want 6 characters", n, key)
		}
		back, err := KeyToNumber(key)
		if err != nil {
			t.Fatalf("KeyToNumber(%q) failed: %v", key, err)
		}
		if back != n {
			t.Errorf("round trip %d -> %q -> %d", n, key, back)
		}
	}
}

func TestKeyFromValue(t *testing.T) {
	cases := map[int]string{
		0:  "000000",
		1:  "100000", // bit 0 is position 1, emitted first
		32: "000001",
		63: "111111",
		8:  "000100",
	}
	for value, want := range cases {
		if got := KeyFromValue(value); got != want {
			t.Errorf("KeyFromValue(%d) = %q, want %q", value, got, want)
		}
	}
}

func TestValueFromKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "10101", "1010101", "10102x"} {
		if _, err := ValueFromKey(key); err == nil {
			t.Errorf("ValueFromKey(%q) succeeded, want error", key)
		}
	}
}

func TestLinePredicates(t *testing.T) {
	cases := []struct {
		line     Line
		yang     bool
		changing bool
	}{
		{OldYin, false, true},
		{YoungYang, true, false},
		{YoungYin, false, false},
		{OldYang, true, true},
	}
	for _, tc := range cases {
		if tc.line.IsYang() != tc.yang {
			t.Errorf("line %d: IsYang = %v, want %v", tc.line, tc.line.IsYang(), tc.yang)
		}
		if tc.line.IsChanging() != tc.changing {
			t.Errorf("line %d: IsChanging = %v, want %v", tc.line, tc.line.IsChanging(), tc.changing)
		}
	}
	if Line(5).IsValid() || Line(10).IsValid() {
		t.Error("values outside 6..9 must be invalid")
	}
}

func TestFlipped(t *testing.T) {
	if OldYang.Flipped() != YoungYin {
		t.Errorf("OldYang flips to %d, want YoungYin", OldYang.Flipped())
	}
	if OldYin.Flipped() != YoungYang {
		t.Errorf("OldYin flips to %d, want YoungYang", OldYin.Flipped())
	}
}
