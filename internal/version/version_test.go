package version

import (
	"errors"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2.5", "2.5.0"},
		{"2.5.1", "2.5.1"},
		{"2.5.1-ABC", "2.5.1-ABC"},
		{"2.11.0", "2.11.0"},
		{"2-5", "2.5.0"},
		{"2.8.0-rc1", "2.8.0-rc1"},
	}
	for _, tc := range cases {
		v, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got := v.String(); got != tc.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParse_Components(t *testing.T) {
	v, err := Parse("2.5.1-ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.major != 2 || v.minor != 5 {
		t.Errorf("got %d.%d, want 2.5", v.major, v.minor)
	}
	if v.patch != "1-ABC" {
		t.Errorf("patch = %q, want %q", v.patch, "1-ABC")
	}

	v, err = Parse("2.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.patch != "0" {
		t.Errorf("two-segment patch = %q, want %q", v.patch, "0")
	}
}

func TestParse_Comparison(t *testing.T) {
	v, err := Parse("2.5.1-ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsAtLeast(3, 0) {
		t.Error("2.5.1-ABC should be less than 3.0")
	}
	if v.IsAtLeast(2, 6) {
		t.Error("2.5.1-ABC should be less than 2.6")
	}
	if !v.IsAtLeast(2, 5) {
		t.Error("2.5.1-ABC should be at least 2.5")
	}
	if !v.IsAtLeast(1, 9) {
		t.Error("2.5.1-ABC should be at least 1.9")
	}
}

func TestParse_Head(t *testing.T) {
	for _, in := range []string{"HEAD-abc", "HEAD.2024", "HEAD"} {
		v, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", in, err)
		}
		if v.name == "" {
			t.Errorf("Parse(%q) is not a HEAD tag", in)
		}
		if !v.IsAtLeast(999, 999) {
			t.Errorf("Parse(%q).IsAtLeast(999, 999) = false", in)
		}
		if v.String() != in {
			t.Errorf("Parse(%q).String() = %q", in, v.String())
		}
	}
}

func TestParse_Blank(t *testing.T) {
	for _, in := range []string{"", " \t", "   "} {
		v, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", in, err)
		}
		if v != nil {
			t.Errorf("Parse(%q) = %v, want nil", in, v)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"0", "a.b", "2.x", "-1.2", "HEADX", "2"} {
		v, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) = %v, want error", in, v)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(%q) error %v does not wrap ErrInvalid", in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Input != in {
			t.Errorf("Parse(%q) error does not name the input: %v", in, err)
		}
	}
}

func TestParseStrict_Blank(t *testing.T) {
	_, err := ParseStrict(" ")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("ParseStrict(blank) error = %v, want ErrEmpty", err)
	}
	v, err := ParseStrict("2.10")
	if err != nil || v.String() != "2.10.0" {
		t.Errorf("ParseStrict(2.10) = %v, %v", v, err)
	}
}

func TestIsAtLeast_Monotonic(t *testing.T) {
	for _, in := range []string{"1.0", "2.5.1", "2.10.0", "3.0", "HEAD-x"} {
		v := MustParse(in)
		for a := 0; a <= 4; a++ {
			for b := 0; b <= 12; b++ {
				if !v.IsAtLeast(a, b) {
					continue
				}
				for a2 := 0; a2 <= a; a2++ {
					maxB := 12
					if a2 == a {
						maxB = b
					}
					for b2 := 0; b2 <= maxB; b2++ {
						if !v.IsAtLeast(a2, b2) {
							t.Errorf("%s: IsAtLeast(%d,%d) but not IsAtLeast(%d,%d)", in, a, b, a2, b2)
						}
					}
				}
			}
		}
	}
}
