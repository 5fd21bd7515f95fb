package config

import (
	"image/color"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownColor = errors.New("unknown color")

var colorTable = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"gray":    {128, 128, 128, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"orange":  {255, 165, 0, 255},
}

// ColorScheme is the resolved set of colors
type ColorScheme struct {
	Cell           color.RGBA
	Background     color.RGBA
	FontForeground color.RGBA
	FontBackground color.RGBA
}

// ColorNames returns the known color names
func ColorNames() []string {
	n := make([]string, 0, len(colorTable))
	for k := range colorTable {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// LookupColor resolves the color name, the case is ignored
func LookupColor(name string) (color.RGBA, error) {
	c, ok := colorTable[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, errors.Wrapf(ErrUnknownColor, "%q, known colors: %v", name, strings.Join(ColorNames(), ", "))
	}
	return c, nil
}

// Scheme resolves all the color names
func (c Config) Scheme() (ColorScheme, error) {
	var (
		s   ColorScheme
		err error
	)
	for _, f := range []struct {
		key  string
		name string
		dst  *color.RGBA
	}{
		{"colors.cell", c.Colors.Cell, &s.Cell},
		{"colors.background", c.Colors.Background, &s.Background},
		{"colors.font_foreground", c.Colors.FontForeground, &s.FontForeground},
		{"colors.font_background", c.Colors.FontBackground, &s.FontBackground},
	} {
		if *f.dst, err = LookupColor(f.name); err != nil {
			return s, errors.Wrap(err, f.key)
		}
	}
	return s, nil
}
