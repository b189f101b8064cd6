package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+14155552671", "14155552671", "+91 98765 43210", "(415) 555-2671"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}

	invalid := []string{"", "abc", "+0123456", "1", "+1 415 555 2671 99999"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"serenity-spa", "salon42", "a", "a-b-c"}
	for _, s := range valid {
		if !ValidateSlug(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "Serenity", "spa--twice", "-leading", "trailing-", "with space"}
	for _, s := range invalid {
		if ValidateSlug(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Serenity Spa":      "serenity-spa",
		"  Salon 42  ":      "salon-42",
		"Déjà Vu":           "d-j-vu",
		"already-a-slug":    "already-a-slug",
		"Multiple   Spaces": "multiple-spaces",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
