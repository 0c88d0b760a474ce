package latex

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const maxImageBytes = 8 << 20

// Remote asks an HTTP typesetting service for a PNG. The request is
// GET <Endpoint>?tex=<source>&display=<0|1>&dpi=<DPI>; the response body must
// be a PNG rendered at DPI.
type Remote struct {
	Endpoint string
	DPI      int
	Client   *http.Client
}

// NewRemote returns a Remote with a 20 second client timeout.
func NewRemote(endpoint string) *Remote {
	return &Remote{
		Endpoint: endpoint,
		DPI:      300,
		Client:   &http.Client{Timeout: 20 * time.Second},
	}
}

// Render implements Typesetter.
func (r *Remote) Render(ctx context.Context, source string, display bool) (Image, error) {
	src := strings.TrimSpace(source)
	if src == "" {
		return Image{}, typesetErr(source, display, ErrEmpty)
	}
	u, err := url.Parse(r.Endpoint)
	if err != nil {
		return Image{}, typesetErr(source, display, fmt.Errorf("endpoint: %w", err))
	}
	dpi := r.DPI
	if dpi <= 0 {
		dpi = 300
	}
	q := u.Query()
	q.Set("tex", src)
	q.Set("display", map[bool]string{true: "1", false: "0"}[display])
	q.Set("dpi", strconv.Itoa(dpi))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Image{}, typesetErr(source, display, err)
	}
	req.Header.Set("Accept", "image/png")
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Image{}, typesetErr(source, display, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return Image{}, typesetErr(source, display, err)
	}
	if len(data) > maxImageBytes {
		return Image{}, typesetErr(source, display, fmt.Errorf("response exceeds %d bytes", maxImageBytes))
	}
	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(data))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return Image{}, typesetErr(source, display, fmt.Errorf("service returned %s: %s", resp.Status, msg))
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, typesetErr(source, display, fmt.Errorf("decode response: %w", err))
	}
	size := decoded.Bounds().Size()
	mmPerDot := 25.4 / float64(dpi)
	return Image{
		PNG:      data,
		WidthMM:  float64(size.X) * mmPerDot,
		HeightMM: float64(size.Y) * mmPerDot,
	}, nil
}
