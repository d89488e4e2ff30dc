package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if !IsValidID(a) {
		t.Errorf("generated id %s should be a valid id", a)
	}
}

func TestIsValidID(t *testing.T) {
	tests := map[string]bool{
		"note-1":                                true,
		"a.b_c":                                 true,
		"0190b3c4-6a5e-7b12-8c3d-1e2f3a4b5c6d":  true,
		"":                                      false,
		"-leading":                              false,
		"has space":                             false,
		"unique()":                              false,
		"0190b3c4-6a5e-7b12-8c3d-1e2f3a4b5c6d0": false,
	}

	for id, want := range tests {
		if got := IsValidID(id); got != want {
			t.Errorf("IsValidID(%q) = %v, want %v", id, got, want)
		}
	}
}
