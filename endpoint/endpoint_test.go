// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package endpoint

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"empty uses default", "", Default},
		{"whitespace uses default", "   ", Default},
		{"trailing slash trimmed", "http://localhost:9000/api/", "http://localhost:9000/api"},
		{"unchanged", "http://localhost:9000", "http://localhost:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.base); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCharacters(t *testing.T) {
	got := Characters("http://example.test/api")
	if got != "http://example.test/api/characters" {
		t.Errorf("Unexpected list URL: %s", got)
	}

	if Characters("") != Default+"/characters" {
		t.Errorf("Expected default endpoint, got %s", Characters(""))
	}
}

func TestCharacter(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"1", "http://example.test/api/characters/1"},
		{"luke skywalker", "http://example.test/api/characters/luke%20skywalker"},
		{"a/b", "http://example.test/api/characters/a%2Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Character("http://example.test/api", tt.id); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
