// Package conversation holds the normalized chat document handed to the
// layout engine and decodes it from the extractor's JSON.
package conversation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid conversation")

// Role says who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r == RoleUser || r == RoleAssistant }

// Message is one turn. Order in Document.Messages is render order.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// Document is the immutable input to a render.
type Document struct {
	Title      string    `json:"title"`
	ExportDate time.Time `json:"exportDate"`
	Messages   []Message `json:"messages"`
	// Platform names the chat site the document came from (ChatGPT, Claude,
	// Gemini). Optional; the CLI may override it.
	Platform string `json:"platform,omitempty"`
	// HasHiddenContent is set by extractors that saw collapsed or truncated
	// turns they could not expand.
	HasHiddenContent bool `json:"hasHiddenContent,omitempty"`
}

// ValidationError describes a field of the input that cannot be rendered.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Validate checks roles and that there is something to render.
func (d *Document) Validate() error {
	if len(d.Messages) == 0 {
		return &ValidationError{Field: "messages", Message: "no messages"}
	}
	for i, m := range d.Messages {
		if !m.Role.Valid() {
			return &ValidationError{
				Field:   fmt.Sprintf("messages[%d].role", i),
				Message: fmt.Sprintf("unknown role %q", m.Role),
			}
		}
	}
	return nil
}

// Decode reads a document from r and validates it. A missing exportDate
// defaults to now.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	if doc.ExportDate.IsZero() {
		doc.ExportDate = time.Now()
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
