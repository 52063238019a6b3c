// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestNewToken(t *testing.T) {
	token, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken() error = %v", err)
	}

	if token == "" {
		t.Error("NewToken() returned empty string")
	}

	// Should be a parseable UUID (128 bits of randomness)
	if _, err := uuid.Parse(token); err != nil {
		t.Errorf("NewToken() = %q, not a valid UUID: %v", token, err)
	}

	// Test randomness - should not produce duplicates
	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewToken()
		if err != nil {
			t.Fatalf("NewToken() error on iteration %d: %v", i, err)
		}
		if tokens[token] {
			t.Errorf("NewToken() produced duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

func TestTokenEqual(t *testing.T) {
	token, _ := NewToken()
	other, _ := NewToken()

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"same token", token, token, true},
		{"different tokens", token, other, false},
		{"empty vs token", "", token, false},
		{"both empty", "", "", true},
		{"prefix", token, token[:8], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("TokenEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Benchmark tests
func BenchmarkGenerateID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateID(16)
	}
}

func BenchmarkNewToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewToken()
	}
}
