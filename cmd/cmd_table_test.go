package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gigurra/morsewave/pkg/morse"
)

func TestCodeUnits(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{".", 1},
		{"-", 3},
		{".-", 5},
		{"...", 5},
		{"---", 11},
		{"/", 7},
	}

	for _, tt := range tests {
		if got := codeUnits(tt.code); got != tt.expected {
			t.Errorf("codeUnits(%q) = %d, want %d", tt.code, got, tt.expected)
		}
	}
}

func TestRunTable(t *testing.T) {
	var stdout bytes.Buffer
	if err := runTable(&TableParams{}, &stdout); err != nil {
		t.Fatalf("runTable failed: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"Char", "Code", "·−", "space", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestRunTable_JSON(t *testing.T) {
	var stdout bytes.Buffer
	if err := runTable(&TableParams{JSON: true}, &stdout); err != nil {
		t.Fatalf("runTable failed: %v", err)
	}

	var entries []tableEntryJSON
	if err := json.Unmarshal(stdout.Bytes(), &entries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(entries) != morse.Table().Len() {
		t.Errorf("got %d entries, want %d", len(entries), morse.Table().Len())
	}
	if entries[0].Char != "A" || entries[0].Code != ".-" || entries[0].Units != 5 {
		t.Errorf("first entry = %+v", entries[0])
	}
}
