package money

import (
	"encoding/json"
	"testing"
)

func TestFromMinorMajorIsMinorOverHundred(t *testing.T) {
	a := FromMinor(25000, "RUB")
	if a.Minor != 25000 {
		t.Fatalf("Minor = %d, want 25000", a.Minor)
	}
	if got := a.Major.StringFixed(2); got != "250.00" {
		t.Fatalf("Major = %s, want 250.00", got)
	}

	b := FromMinor(123456789, "RUB")
	if got := b.Major.StringFixed(2); got != "1234567.89" {
		t.Fatalf("Major = %s, want 1234567.89", got)
	}
}

func TestFromMinorNegativePassesThrough(t *testing.T) {
	a := FromMinor(-5000, "RUB")
	if a.Minor != -5000 {
		t.Fatalf("Minor = %d, want -5000", a.Minor)
	}
	if got := a.Major.StringFixed(2); got != "-50.00" {
		t.Fatalf("Major = %s, want -50.00", got)
	}
}

func TestFormatterRussianGrouping(t *testing.T) {
	f := NewFormatter("ru", "RUB", "₽")
	got := f.FromMinor(100000000).Formatted
	want := "1\u00a0000\u00a0000 ₽" // CLDR groups Russian digits with NBSP
	if got != want {
		t.Fatalf("Formatted = %q, want %q", got, want)
	}
}

func TestFormatterEnglishGrouping(t *testing.T) {
	f := NewFormatter("en", "RUB", "₽")
	got := f.FromMinor(123456700).Formatted
	if got != "1,234,567 ₽" {
		t.Fatalf("Formatted = %q, want %q", got, "1,234,567 ₽")
	}
}

func TestFormatterRoundsHalfAwayFromZero(t *testing.T) {
	f := NewFormatter("en", "RUB", "₽")
	if got := f.FromMinor(150).Formatted; got != "2 ₽" {
		t.Fatalf("Formatted(150) = %q, want %q", got, "2 ₽")
	}
	if got := f.FromMinor(149).Formatted; got != "1 ₽" {
		t.Fatalf("Formatted(149) = %q, want %q", got, "1 ₽")
	}
	if got := f.FromMinor(-150).Formatted; got != "-2 ₽" {
		t.Fatalf("Formatted(-150) = %q, want %q", got, "-2 ₽")
	}
}

func TestFormatterStableOutput(t *testing.T) {
	f := NewFormatter("ru", "RUB", "₽")
	first := f.FromMinor(987654321).Formatted
	for i := 0; i < 5; i++ {
		if got := f.FromMinor(987654321).Formatted; got != first {
			t.Fatalf("unstable formatting: %q then %q", first, got)
		}
	}
}

func TestFormatterInvalidLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not a locale", "RUB", "₽")
	if got := f.FromMinor(100000).Formatted; got != "1,000 ₽" {
		t.Fatalf("Formatted = %q, want %q", got, "1,000 ₽")
	}
}

func TestAmountJSONShape(t *testing.T) {
	f := NewFormatter("en", "RUB", "₽")
	raw, err := json.Marshal(f.FromMinor(25000))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"minor", "major", "formatted", "currency"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing %q in %s", key, raw)
		}
	}
	if decoded["minor"] != float64(25000) {
		t.Fatalf("minor = %v, want 25000", decoded["minor"])
	}
}
