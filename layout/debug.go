package layout

import (
	"encoding/json"
	"os"
	"time"

	"github.com/xahram/ai-chat-exporter/content"
	"github.com/xahram/ai-chat-exporter/conversation"
)

// Outline 记录每条消息解析出的内容块，便于调试解析结果。
type Outline struct {
	Title      string           `json:"title"`
	ExportDate time.Time        `json:"exportDate"`
	Messages   []OutlineMessage `json:"messages"`
	Stats      *Stats           `json:"stats,omitempty"`
}

// OutlineMessage 是单条消息的调试视图。
type OutlineMessage struct {
	Role   conversation.Role `json:"role"`
	Blocks []content.Block   `json:"blocks"`
}

// BuildOutline parses every message of doc without drawing anything.
func BuildOutline(doc *conversation.Document) *Outline {
	o := &Outline{Title: doc.Title, ExportDate: doc.ExportDate}
	for _, m := range doc.Messages {
		o.Messages = append(o.Messages, OutlineMessage{Role: m.Role, Blocks: content.Parse(m.Content)})
	}
	return o
}

// WriteDebugJSON 将解析结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(o *Outline, path string) error {
	if o == nil {
		return nil
	}
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
