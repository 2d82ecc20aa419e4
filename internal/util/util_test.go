package util

import (
	"bytes"
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Дружба ", "дружба"},
		{"ПРИГОТОВИТЬ", "приготовить"},
		{"мо\u0301ре", "море"},
		{"и\u0306од", "йод"},
		{"ёлка", "ёлка"},
	}
	for _, tt := range tests {
		if got := NormalizeWord(tt.in); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSON_NoEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]string{"a": "<друг>"}, false); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	want := "{\"a\":\"<друг>\"}\n"
	if buf.String() != want {
		t.Fatalf("WriteJSON() = %q, want %q", buf.String(), want)
	}
}
