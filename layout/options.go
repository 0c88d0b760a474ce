package layout

import (
	"github.com/xahram/ai-chat-exporter/glyphmap"
	"github.com/xahram/ai-chat-exporter/latex"
)

// Options 配置一次文档渲染：版面尺寸、字号、角色标签与颜色，以及特殊字形与公式排版依赖。
type Options struct {
	Margin      float64 // mm，四边相同
	TitleSize   float64 // pt
	HeaderSize  float64 // pt，消息标签
	ContentSize float64 // pt，正文
	CodeSize    float64 // pt

	UserName       string
	AssistantName  string
	UserColor      Color
	AssistantColor Color

	// DateLayout 是 "Exported:" 行的时间格式（time.Format 布局）。
	DateLayout string

	// Glyphs 为 nil 时删除所有 emoji。
	Glyphs *glyphmap.Map
	// GlyphFont 非空时在渲染开始时注册为 GlyphFamily。
	GlyphFont   []byte
	GlyphFamily string

	// Typesetter 为 nil 时所有公式按原文回退绘制。
	Typesetter latex.Typesetter
}

// DefaultOptions 返回与浏览器扩展默认设置一致的参数。
func DefaultOptions() Options {
	return Options{
		Margin:         15,
		TitleSize:      16,
		HeaderSize:     11,
		ContentSize:    10,
		CodeSize:       8,
		UserName:       "You",
		AssistantName:  "Assistant",
		UserColor:      RGB(59, 130, 246),
		AssistantColor: RGB(217, 119, 6),
		DateLayout:     "2006-01-02 15:04",
		GlyphFamily:    "glyph",
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.TitleSize <= 0 {
		o.TitleSize = d.TitleSize
	}
	if o.HeaderSize <= 0 {
		o.HeaderSize = d.HeaderSize
	}
	if o.ContentSize <= 0 {
		o.ContentSize = d.ContentSize
	}
	if o.CodeSize <= 0 {
		o.CodeSize = d.CodeSize
	}
	if o.UserName == "" {
		o.UserName = d.UserName
	}
	if o.AssistantName == "" {
		o.AssistantName = d.AssistantName
	}
	if o.UserColor == (Color{}) {
		o.UserColor = d.UserColor
	}
	if o.AssistantColor == (Color{}) {
		o.AssistantColor = d.AssistantColor
	}
	if o.DateLayout == "" {
		o.DateLayout = d.DateLayout
	}
	if o.GlyphFamily == "" {
		o.GlyphFamily = d.GlyphFamily
	}
	if o.Glyphs == nil {
		o.Glyphs = glyphmap.Empty()
	}
	return o
}
