package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/xahram/ai-chat-exporter/binding"
	"github.com/xahram/ai-chat-exporter/conversation"
	"github.com/xahram/ai-chat-exporter/dsl"
	"github.com/xahram/ai-chat-exporter/fonts"
	"github.com/xahram/ai-chat-exporter/glyphmap"
	"github.com/xahram/ai-chat-exporter/internal/logging"
	"github.com/xahram/ai-chat-exporter/latex"
	"github.com/xahram/ai-chat-exporter/layout"
	"github.com/xahram/ai-chat-exporter/renderer"
	canvasrenderer "github.com/xahram/ai-chat-exporter/renderer/canvas"
	"github.com/xahram/ai-chat-exporter/renderer/raster"
)

const creator = "chatpdf"

// CLI exports one conversation JSON file.
type CLI struct {
	Input     string `arg:"" type:"existingfile" help:"Conversation JSON produced by an extractor"`
	Out       string `name:"out" short:"o" help:"Output file (default: from the filename template)"`
	Format    string `name:"format" short:"f" default:"pdf" enum:"pdf,png" help:"Output format: pdf or png (one file per page)"`
	Settings  string `name:"settings" short:"s" type:"path" help:"Settings file"`
	Platform  string `name:"platform" short:"p" help:"Platform name, overrides the document (Claude, ChatGPT, Gemini)"`
	GlyphFont string `name:"glyph-font" help:"Emoji font with glyphs in the private-use area (path or go:<name>)"`
	GlyphMap  string `name:"glyph-map" type:"path" help:"Codepoint list, one hex value per line, in font order"`
	Latex     string `name:"latex" default:"local" enum:"local,remote,off" help:"LaTeX typesetter: local, remote or off"`
	Endpoint  string `name:"latex-endpoint" help:"Remote typesetting service URL"`
	Debug     string `name:"debug" type:"path" help:"Write parsed content blocks as JSON"`
	Strict    bool   `name:"strict" help:"Refuse to export conversations with hidden content"`
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chatpdf"),
		kong.Description("Export an AI chat conversation to PDF"),
		kong.UsageOnError(),
	)

	level, err := logging.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(cli.LogFormat)
	ctx.FatalIfErrorf(err)
	logging.InitLogger(level, format)
	logging.Debug("options", "input", cli.Input, "format", cli.Format, "latex", cli.Latex)

	written, err := cli.Run(context.Background())
	if err != nil {
		logging.Error("export_failed", "input", cli.Input, "error", err)
		os.Exit(1)
	}
	for _, path := range written {
		logging.Info("written", "path", path)
		fmt.Println(path)
	}
}

// Run loads the conversation and settings, renders and writes the output.
// It returns the written file paths.
func (c *CLI) Run(ctx context.Context) ([]string, error) {
	ctx = logging.WithLogger(ctx, logging.GetLogger())

	doc, err := conversation.Load(c.Input)
	if err != nil {
		return nil, err
	}
	if doc.HasHiddenContent && c.Strict {
		return nil, fmt.Errorf("%s: conversation has hidden content; expand it in the browser and export again", c.Input)
	}

	settings := dsl.Defaults()
	if c.Settings != "" {
		if settings, err = dsl.Load(c.Settings); err != nil {
			return nil, err
		}
	}
	platform := firstNonEmpty(c.Platform, doc.Platform, "Claude")

	opts := settings.Options(platform)
	if opts.Typesetter, err = c.typesetter(); err != nil {
		return nil, err
	}
	if err := c.loadGlyphs(settings, &opts); err != nil {
		return nil, err
	}

	if c.Debug != "" {
		if err := writeDebug(layout.BuildOutline(doc), c.Debug); err != nil {
			return nil, err
		}
	}

	backend := c.backend(settings, doc, platform)
	stats, err := layout.Render(ctx, backend, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", c.Input, err)
	}
	files, err := backend.Render()
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	logging.LoggerFromContext(ctx).Debug("output_encoded", "files", len(files), "pages", stats.Pages)

	return c.write(files, outputName(settings.Filename, doc, platform))
}

func (c *CLI) typesetter() (latex.Typesetter, error) {
	switch c.Latex {
	case "off":
		return nil, nil
	case "remote":
		if c.Endpoint == "" {
			return nil, fmt.Errorf("--latex=remote needs --latex-endpoint")
		}
		return latex.NewRemote(c.Endpoint), nil
	}
	return latex.NewLocal(), nil
}

// loadGlyphs reads the glyph font and map. The command line wins over the
// settings file.
func (c *CLI) loadGlyphs(s *dsl.Settings, opts *layout.Options) error {
	fontSrc := firstNonEmpty(c.GlyphFont, s.GlyphFont)
	if fontSrc == "" {
		return nil
	}
	data, err := fonts.Load(fontSrc)
	if err != nil {
		return err
	}
	opts.GlyphFont = data
	opts.Glyphs = glyphmap.Default()

	mapPath := firstNonEmpty(c.GlyphMap, s.GlyphMap)
	if mapPath == "" {
		return nil
	}
	f, err := os.Open(mapPath)
	if err != nil {
		return err
	}
	defer f.Close()
	m, err := glyphmap.Load(f, glyphmap.PUABase)
	if err != nil {
		return fmt.Errorf("glyph map %s: %w", mapPath, err)
	}
	opts.Glyphs = m
	return nil
}

func (c *CLI) backend(s *dsl.Settings, doc *conversation.Document, platform string) renderer.Renderer {
	if c.Format == "png" {
		return raster.New(raster.Options{PageWidth: s.PageWidth, PageHeight: s.PageHeight})
	}
	return canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		PageWidth:  s.PageWidth,
		PageHeight: s.PageHeight,
		Meta: renderer.Meta{
			Title:   doc.Title,
			Subject: platform + " conversation",
			Creator: creator,
		},
	})
}

// write stores the PDF, or one PNG per page as <base>-001.png and so on.
func (c *CLI) write(files [][]byte, generated string) ([]string, error) {
	out := c.Out
	if out == "" {
		out = generated + "." + c.Format
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := []string{out}
	if c.Format == "png" {
		base := strings.TrimSuffix(out, filepath.Ext(out))
		paths = paths[:0]
		for i := range files {
			paths = append(paths, fmt.Sprintf("%s-%03d.png", base, i+1))
		}
	}
	for i, path := range paths {
		if err := os.WriteFile(path, files[i], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return paths, nil
}

// outputName fills the filename template from the document. Messages are
// reachable by index, e.g. ${messages[0].content|slug}.
func outputName(template string, doc *conversation.Document, platform string) string {
	date := doc.ExportDate
	if date.IsZero() {
		date = time.Now()
	}
	messages := make([]any, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		messages = append(messages, map[string]any{
			"role":    string(m.Role),
			"content": m.Content,
		})
	}
	return binding.Interpolate(template, map[string]any{
		"platform": platform,
		"title":    doc.Title,
		"date":     date.Format(time.DateOnly),
		"count":    len(doc.Messages),
		"messages": messages,
	})
}

func writeDebug(o *layout.Outline, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug directory: %w", err)
	}
	if err := layout.WriteDebugJSON(o, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
