package dsl

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xahram/ai-chat-exporter/layout"
)

// Platform is the assistant label and header colour used for one platform.
// An empty Name falls back to the platform's own name.
type Platform struct {
	Name  string
	Color layout.Color
}

// Settings are the export settings a user can override.
type Settings struct {
	PageWidth   float64 // mm
	PageHeight  float64 // mm
	Margin      float64 // mm
	TitleSize   float64
	HeaderSize  float64
	ContentSize float64
	CodeSize    float64
	UserName    string
	UserColor   layout.Color
	GlyphFont   string
	GlyphMap    string
	Filename    string
	DateLayout  string
	Platforms   map[string]Platform // keyed by lower-case platform name
}

// DefaultFilename is the output name template.
const DefaultFilename = "${platform|lower}_chat_${title|slug}_${date}"

// claudeColor is also used for platforms without a colour of their own.
var claudeColor = layout.RGB(0xD9, 0x77, 0x06)

// 纸张尺寸（mm）。
var pageSizes = map[string][2]float64{
	"a4":     {210, 297},
	"letter": {215.9, 279.4},
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	opts := layout.DefaultOptions()
	return &Settings{
		PageWidth:   210,
		PageHeight:  297,
		Margin:      opts.Margin,
		TitleSize:   opts.TitleSize,
		HeaderSize:  opts.HeaderSize,
		ContentSize: opts.ContentSize,
		CodeSize:    opts.CodeSize,
		UserName:    opts.UserName,
		UserColor:   opts.UserColor,
		Filename:    DefaultFilename,
		DateLayout:  opts.DateLayout,
		Platforms: map[string]Platform{
			"claude":  {Color: claudeColor},
			"chatgpt": {Color: layout.RGB(0x10, 0xA3, 0x7F)},
			"gemini":  {Color: layout.RGB(0xA8, 0x7F, 0xFF)},
		},
	}
}

// Load reads a settings file and applies it over the defaults.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	s := Defaults()
	if err := s.Apply(file); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Apply copies every entry of file into s. Later entries win.
func (s *Settings) Apply(file *File) error {
	for _, e := range file.Entries {
		if e.Platform != nil {
			if err := s.applyPlatform(e.Platform); err != nil {
				return err
			}
			continue
		}
		if err := s.set(e.Assignment); err != nil {
			return err
		}
	}
	return nil
}

func (s *Settings) set(a *Assignment) error {
	raw := a.Value.Raw()
	var err error
	switch strings.ToLower(a.Key) {
	case "page":
		size, ok := pageSizes[strings.ToLower(raw)]
		if !ok {
			return fmt.Errorf("%s: unknown page size %q", a.Pos, raw)
		}
		s.PageWidth, s.PageHeight = size[0], size[1]
	case "margin":
		s.Margin, err = parseMM(raw)
	case "title-size":
		s.TitleSize, err = parseSize(raw)
	case "header-size":
		s.HeaderSize, err = parseSize(raw)
	case "content-size":
		s.ContentSize, err = parseSize(raw)
	case "code-size":
		s.CodeSize, err = parseSize(raw)
	case "user-name":
		s.UserName = raw
	case "user-color":
		s.UserColor, err = layout.ParseColor(raw)
	case "glyph-font":
		s.GlyphFont = raw
	case "glyph-map":
		s.GlyphMap = raw
	case "filename":
		s.Filename = raw
	case "date-format":
		s.DateLayout = raw
	default:
		return fmt.Errorf("%s: unknown setting %q", a.Pos, a.Key)
	}
	if err != nil {
		return fmt.Errorf("%s: %s: %w", a.Pos, a.Key, err)
	}
	return nil
}

func (s *Settings) applyPlatform(b *PlatformBlock) error {
	key := strings.ToLower(b.Name)
	p, ok := s.Platforms[key]
	if !ok {
		p = Platform{Color: claudeColor}
	}
	for _, a := range b.Entries {
		raw := a.Value.Raw()
		switch strings.ToLower(a.Key) {
		case "name":
			p.Name = raw
		case "color":
			c, err := layout.ParseColor(raw)
			if err != nil {
				return fmt.Errorf("%s: platform %s: %w", a.Pos, b.Name, err)
			}
			p.Color = c
		default:
			return fmt.Errorf("%s: platform %s: unknown setting %q", a.Pos, b.Name, a.Key)
		}
	}
	if s.Platforms == nil {
		s.Platforms = map[string]Platform{}
	}
	s.Platforms[key] = p
	return nil
}

// Platform resolves the label and colour for name. Unknown platforms use the
// Claude colour and their own name.
func (s *Settings) Platform(name string) Platform {
	p, ok := s.Platforms[strings.ToLower(name)]
	if !ok {
		p = Platform{Color: claudeColor}
	}
	if p.Name == "" {
		p.Name = name
	}
	return p
}

// Options builds layout options for a conversation exported from platform.
func (s *Settings) Options(platform string) layout.Options {
	opts := layout.DefaultOptions()
	opts.Margin = s.Margin
	opts.TitleSize = s.TitleSize
	opts.HeaderSize = s.HeaderSize
	opts.ContentSize = s.ContentSize
	opts.CodeSize = s.CodeSize
	opts.UserName = s.UserName
	opts.UserColor = s.UserColor
	if s.DateLayout != "" {
		opts.DateLayout = s.DateLayout
	}
	p := s.Platform(platform)
	opts.AssistantName = p.Name
	opts.AssistantColor = p.Color
	return opts
}

// parseMM accepts a length with unit, or a bare number in millimetres.
func parseMM(raw string) (float64, error) {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v, nil
	}
	l, err := layout.ParseLength(raw)
	if err != nil {
		return 0, err
	}
	return l.ToMM(), nil
}

// parseSize accepts a font size in points, with or without the pt suffix.
func parseSize(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "pt"), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid font size %q", raw)
	}
	return v, nil
}
