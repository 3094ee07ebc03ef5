package store_test

import (
	"testing"

	"firststeps/internal/store"
)

func TestNewShortHexID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := store.NewShortHexID()
		if err != nil {
			t.Fatalf("NewShortHexID: %v", err)
		}
		if err := store.ValidateID(id); err != nil {
			t.Errorf("generated id %q failed validation: %v", id, err)
		}
		if seen[id] {
			t.Errorf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"valid", "04f1a9c2b37d", nil},
		{"valid all digits", "012345678901", nil},
		{"empty", "", store.ErrIDEmpty},
		{"too short", "04f1a9c2b37", store.ErrIDFormat},
		{"too long", "04f1a9c2b37dd", store.ErrIDFormat},
		{"uppercase", "04F1A9C2B37D", store.ErrIDFormat},
		{"non-hex character", "04f1a9c2b37z", store.ErrIDFormat},
		{"hyphenated", "04f1-9c2b37d", store.ErrIDFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.ValidateID(tt.id)
			if err != tt.wantErr {
				t.Errorf("ValidateID(%q) = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
