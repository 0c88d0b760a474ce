package renderer

import (
	"math"
	"strings"
	"unicode"

	"github.com/xahram/ai-chat-exporter/layout"
)

// Renderer 是可以输出最终文件的绘图后端。
// Render 在全部页面绘制完成后调用，返回生成的文件：PDF 为单个文件，PNG 为每页一个。
type Renderer interface {
	layout.Canvas
	Render() ([][]byte, error)
}

// Meta 是写入输出文件的文档信息。
type Meta struct {
	Title    string
	Subject  string
	Author   string
	Creator  string
	Keywords []string
}

// Wrap 使用贪心算法把 text 折成宽度不超过 limit 的若干行。
// 优先在空白处断行，单个词超过 limit 时在词内拆分；断行处的空白被丢弃。
// 显式换行总会开始新的一行。measure 返回字符串宽度，单位与 limit 一致。
func Wrap(text string, limit float64, measure func(string) float64) []string {
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []string
	var builder strings.Builder
	current := 0.0
	soft := false // 当前行由自动折行产生

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, "")
			}
			return
		}
		lines = append(lines, strings.TrimRightFunc(builder.String(), unicode.IsSpace))
		builder.Reset()
		current = 0
	}
	appendToken := func(token string, w float64) {
		builder.WriteString(token)
		current += w
	}
	isSpace := func(token string) bool { return strings.TrimSpace(token) == "" }

	for _, token := range tokenize(text) {
		if token == "\n" {
			emit(true)
			soft = false
			continue
		}
		// 自动折行后的行首空白属于断行处，直接丢弃
		if isSpace(token) && builder.Len() == 0 && soft {
			continue
		}

		w := measure(token)
		if current > 0 && current+w > limit {
			emit(false)
			soft = true
			if isSpace(token) {
				continue
			}
		}
		if w <= limit {
			appendToken(token, w)
			continue
		}
		for _, chunk := range splitByWidth(token, limit, measure) {
			cw := measure(chunk)
			if current > 0 && current+cw > limit {
				emit(false)
				soft = true
			}
			appendToken(chunk, cw)
		}
	}
	emit(false)
	return lines
}

// tokenize 将文本切分为交替出现的空白段与非空白段，换行单独成为一个 token。
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		space := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = space
		} else if lastWasSpace != space {
			flush()
			lastWasSpace = space
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitByWidth 在词内按宽度拆分，每段至少保留一个字符。
func splitByWidth(token string, limit float64, measure func(string) float64) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if measure(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
