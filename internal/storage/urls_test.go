package storage

import "testing"

func TestCanonicalURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"http://cdn.example.com/a/b.jpg", "http://cdn.example.com/a/b.jpg"},
		{"https://cdn.example.com/a/b.jpg", "https://cdn.example.com/a/b.jpg"},
		{"/storage/a/b.jpg", "/storage/a/b.jpg"},
		{"a/b.jpg", "/storage/a/b.jpg"},
		{"uploads/logo.png", "/storage/uploads/logo.png"},
	}
	for _, tc := range cases {
		if got := CanonicalURL(tc.in); got != tc.want {
			t.Fatalf("CanonicalURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalURLIdempotent(t *testing.T) {
	inputs := []string{"", "http://a/b.jpg", "https://a/b.jpg", "/storage/a/b.jpg", "a/b.jpg", "/weird/path.png"}
	for _, in := range inputs {
		once := CanonicalURL(in)
		twice := CanonicalURL(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
