package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Gray 返回 R=G=B=v 的灰色。
func Gray(v int) Color { return Color{R: v, G: v, B: v} }

// RGB builds a Color.
func RGB(r, g, b int) Color { return Color{R: r, G: g, B: b} }

// Hex formats the colour as #RRGGBB.
func (c Color) Hex() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// White is used for header labels.
var White = Gray(255)

// ParseColor 解析 #RGB、#RRGGBB 与 #RRGGBBAA（忽略透明度）形式的颜色。
func ParseColor(value string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
	case 8:
		v = v[:6]
	default:
		return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("颜色值 %s 无法解析: %w", value, err)
	}
	return Color{R: int(n >> 16 & 0xFF), G: int(n >> 8 & 0xFF), B: int(n & 0xFF)}, nil
}
