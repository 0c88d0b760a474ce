package fonts

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置字体来自 Go 字体家族，覆盖 ASCII 与 Latin-1。
var builtin = map[string][]byte{
	"regular":        goregular.TTF,
	"bold":           gobold.TTF,
	"italic":         goitalic.TTF,
	"bolditalic":     gobolditalic.TTF,
	"mono":           gomono.TTF,
	"monobold":       gomonobold.TTF,
	"monoitalic":     gomonoitalic.TTF,
	"monobolditalic": gomonobolditalic.TTF,
}

// Style 选择字体的字重与斜体组合。
type Style int

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
)

// Body 返回正文字体（Go Regular 系列）。
func Body(s Style) []byte { return builtin[styleName("", s)] }

// Mono 返回代码块使用的等宽字体（Go Mono 系列）。
func Mono(s Style) []byte { return builtin[styleName("mono", s)] }

func styleName(prefix string, s Style) string {
	switch s {
	case Bold:
		return prefix + "bold"
	case Italic:
		return prefix + "italic"
	case BoldItalic:
		return prefix + "bolditalic"
	}
	if prefix == "" {
		return "regular"
	}
	return prefix
}

// Load 返回字体字节数据，src 可写为 "go:bold" 这类内置名称，或直接写文件路径。
func Load(src string) ([]byte, error) {
	if name, ok := strings.CutPrefix(src, "go:"); ok {
		data, found := builtin[strings.ToLower(name)]
		if !found {
			return nil, fmt.Errorf("unknown built-in font %q", src)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", src, err)
	}
	return data, nil
}
