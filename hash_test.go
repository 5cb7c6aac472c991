package simplebf

import "testing"

func TestDjb2Empty(t *testing.T) {
	if got := Djb2(""); got != 5381 {
		t.Errorf("Djb2(\"\") = %d, want 5381", got)
	}
}

func TestDjb2KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"a", 177670},   // 5381*33 + 'a'
		{"ab", 5863208}, // 177670*33 + 'b'
	}

	for _, tt := range tests {
		if got := Djb2(tt.in); got != tt.want {
			t.Errorf("Djb2(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDjb2Distinct(t *testing.T) {
	h0 := Djb2("a")
	h1 := Djb2("aa")
	h2 := Djb2("aaa")

	if h0 == h1 || h1 == h2 || h2 == h0 {
		t.Errorf("expected pairwise distinct hashes, got %d, %d, %d", h0, h1, h2)
	}
}

func TestCanonicalString(t *testing.T) {
	if got := canonicalString("plain"); got != "plain" {
		t.Errorf("canonicalString(string) = %q, want identity", got)
	}
	if got := canonicalString(-3); got != "-3" {
		t.Errorf("canonicalString(-3) = %q, want \"-3\"", got)
	}
	if got := canonicalString(uint64(18446744073709551615)); got != "18446744073709551615" {
		t.Errorf("canonicalString(max uint64) = %q", got)
	}
	if got := canonicalString(1.5); got != "1.5" {
		t.Errorf("canonicalString(1.5) = %q, want \"1.5\"", got)
	}
	// Shortest round-trip form, not a fixed precision.
	if got := canonicalString(0.1); got != "0.1" {
		t.Errorf("canonicalString(0.1) = %q, want \"0.1\"", got)
	}
	if got := canonicalString(float32(0.1)); got != "0.1" {
		t.Errorf("canonicalString(float32(0.1)) = %q, want \"0.1\"", got)
	}
	if got := canonicalString(1e21); got != "1e+21" {
		t.Errorf("canonicalString(1e21) = %q, want \"1e+21\"", got)
	}
}

func TestGenericHashWidthIndependence(t *testing.T) {
	// The same numeric value hashes identically regardless of declared
	// width or signedness, because everything is widened to 64 bits first.
	want := genericHash(uint64(7))
	if got := genericHash(int8(7)); got != want {
		t.Errorf("genericHash(int8(7)) = %d, want %d", got, want)
	}
	if got := genericHash(int32(7)); got != want {
		t.Errorf("genericHash(int32(7)) = %d, want %d", got, want)
	}
	if got := genericHash(uint16(7)); got != want {
		t.Errorf("genericHash(uint16(7)) = %d, want %d", got, want)
	}
	if got := genericHash(7); got != want {
		t.Errorf("genericHash(7) = %d, want %d", got, want)
	}

	if genericHash(float32(1.5)) != genericHash(1.5) {
		t.Error("expected float32 and float64 of the same value to hash equally")
	}
}

func TestGenericHashDeterminism(t *testing.T) {
	if genericHash("entry") != genericHash("entry") {
		t.Error("expected stable hashes for equal strings")
	}
	if genericHash(12345) != genericHash(12345) {
		t.Error("expected stable hashes for equal integers")
	}
}

func TestSecondHashStringDirect(t *testing.T) {
	// String entries feed djb2 directly, skipping the formatting round
	// trip, and must land exactly where the formula says.
	f := New[string]()

	want := ((Djb2("abc") << 1) | 1) & (f.NumBits() - 1)
	if got := f.SecondHash("abc"); got != want {
		t.Errorf("SecondHash(\"abc\") = %d, want %d", got, want)
	}
}

func TestFirstHashRange(t *testing.T) {
	f := New[string]()

	for _, entry := range []string{"", "a", "b", "a longer entry"} {
		if h := f.FirstHash(entry); h >= f.NumBits() {
			t.Errorf("FirstHash(%q) = %d out of range [0,%d)", entry, h, f.NumBits())
		}
	}
}
