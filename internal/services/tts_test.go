package services

import (
	"strings"
	"testing"
)

func TestSplitChunks_ShortText(t *testing.T) {
	chunks := splitChunks("Hola, ¿cómo estás?", 200)
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "Hola, ¿cómo estás?" {
		t.Errorf("Expected text unchanged, got %q", chunks[0])
	}
}

func TestSplitChunks_LongText(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("palabra corta ", 60))

	chunks := splitChunks(text, 200)
	if len(chunks) < 2 {
		t.Fatalf("Expected multiple chunks, got %d", len(chunks))
	}

	var rebuilt []string
	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > 200 {
			t.Errorf("Chunk %d has %d runes, want <= 200", i, n)
		}
		rebuilt = append(rebuilt, strings.Fields(chunk)...)
	}

	// No word may be cut in half: rejoining the chunk words must reproduce
	// the original word sequence.
	if got, want := strings.Join(rebuilt, " "), text; got != want {
		t.Error("Chunking split a word apart")
	}
}

func TestSplitChunks_MultibyteSafe(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("ñandú pingüino ", 40))

	for _, chunk := range splitChunks(text, 50) {
		if !strings.Contains("ñandú pingüino", strings.Fields(chunk)[0]) {
			t.Errorf("Chunk starts mid-rune or mid-word: %q", chunk)
		}
	}
}
