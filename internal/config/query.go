package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vovakirdan/artgrid/internal/seed"
)

// ParseQuery overlays share-link parameters onto base.
// Recognised keys: seed, cols, palette, complexity, live=1, designer=1.
// Unparseable numbers are ignored; the result is normalized.
func ParseQuery(raw string, base Settings) (Settings, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return base, fmt.Errorf("failed to parse query %q: %w", raw, err)
	}

	s := base
	if values.Has("seed") {
		s.Seed = seed.Parse(values.Get("seed"))
	}
	if v, ok := intParam(values, "cols"); ok {
		s.GridSize = v
	}
	if values.Has("palette") {
		s.Palette = values.Get("palette")
	}
	if v, ok := intParam(values, "complexity"); ok {
		s.Complexity = v
	}
	if values.Has("live") {
		s.IsAnimating = values.Get("live") == "1"
	}
	if values.Has("designer") {
		s.DesignerMode = values.Get("designer") == "1"
	}
	return s.Normalize(), nil
}

func intParam(values url.Values, key string) (int, bool) {
	if !values.Has(key) {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(values.Get(key)))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Query encodes the settings as a share-link query string (without "?").
// Keys keep a fixed order: seed, cols, palette, complexity, live, designer.
func (s Settings) Query() string {
	var parts []string
	add := func(k, v string) {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
	}
	if s.Seed != 0 {
		add("seed", strconv.FormatUint(uint64(s.Seed), 10))
	}
	add("cols", strconv.Itoa(s.GridSize))
	add("palette", s.Palette)
	add("complexity", strconv.Itoa(s.Complexity))
	if s.IsAnimating {
		add("live", "1")
	}
	if s.DesignerMode {
		add("designer", "1")
	}
	return strings.Join(parts, "&")
}
