// Package content splits raw message text into typed blocks: prose, fenced
// code, pipe tables and LaTeX math.
package content

import "encoding/json"

// Kind tags a Block.
type Kind int

const (
	KindText Kind = iota
	KindCode
	KindTable
	KindLatex
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCode:
		return "code"
	case KindTable:
		return "table"
	case KindLatex:
		return "latex"
	}
	return "unknown"
}

// MarshalText lets Kind appear by name in debug JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Block is one contiguous span of a message. Which payload fields are set
// depends on Kind:
//
//	KindText  Text
//	KindCode  Language, Text
//	KindTable Rows
//	KindLatex Text (the source without delimiters), Display
//
// Start and End are byte offsets into the parsed string, End exclusive. For a
// text block they cover the untrimmed gap.
type Block struct {
	Kind     Kind       `json:"kind"`
	Start    int        `json:"start"`
	End      int        `json:"end"`
	Text     string     `json:"text,omitempty"`
	Language string     `json:"language,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Display  bool       `json:"display,omitempty"`
}

// Inline reports whether the block flows within prose rather than standing
// on its own rows.
func (b Block) Inline() bool { return b.Kind == KindLatex && !b.Display }

func (b Block) String() string {
	data, _ := json.Marshal(b)
	return string(data)
}

// Text builds a text block; handy in tests and callers that synthesise blocks.
func Text(s string) Block { return Block{Kind: KindText, Text: s} }
