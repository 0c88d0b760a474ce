package conversation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	in := `{
		"title": "Sorting help",
		"exportDate": "2024-03-05T10:20:30.123Z",
		"hasHiddenContent": true,
		"messages": [
			{"role": "user", "content": "How do I sort?", "timestamp": "2024-03-05T10:00:00Z"},
			{"role": "assistant", "content": "Use sort.Slice."}
		]
	}`
	doc, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Title != "Sorting help" || len(doc.Messages) != 2 || !doc.HasHiddenContent {
		t.Fatalf("unexpected document: %+v", doc)
	}
	want := time.Date(2024, 3, 5, 10, 20, 30, 123000000, time.UTC)
	if !doc.ExportDate.Equal(want) {
		t.Fatalf("export date = %v, want %v", doc.ExportDate, want)
	}
	if doc.Messages[1].Role != RoleAssistant {
		t.Fatalf("role = %q", doc.Messages[1].Role)
	}
}

func TestDecodeDefaultsExportDate(t *testing.T) {
	before := time.Now()
	doc, err := Decode(strings.NewReader(`{"title":"t","messages":[{"role":"user","content":"x"}]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.ExportDate.Before(before) {
		t.Fatalf("export date not defaulted: %v", doc.ExportDate)
	}
}

func TestDecodeValidation(t *testing.T) {
	cases := map[string]string{
		"no messages": `{"title":"t","messages":[]}`,
		"bad role":    `{"title":"t","messages":[{"role":"system","content":"x"}]}`,
	}
	for name, in := range cases {
		_, err := Decode(strings.NewReader(in))
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) || !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ValidationError, got %v", name, err)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"title":`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
