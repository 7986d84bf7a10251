package css

import (
	"image/color"
	"strings"
)

// namedColors maps the CSS basic color keywords, plus the handful of
// extended names the default sheet and common pages use, to RGBA.
var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"silver":  {192, 192, 192, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"white":   {255, 255, 255, 255},
	"maroon":  {128, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"purple":  {128, 0, 128, 255},
	"fuchsia": {255, 0, 255, 255},
	"green":   {0, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"olive":   {128, 128, 0, 255},
	"yellow":  {255, 255, 0, 255},
	"navy":    {0, 0, 128, 255},
	"blue":    {0, 0, 255, 255},
	"teal":    {0, 128, 128, 255},
	"aqua":    {0, 255, 255, 255},

	"orange":      {255, 165, 0, 255},
	"brown":       {165, 42, 42, 255},
	"pink":        {255, 192, 203, 255},
	"lightblue":   {173, 216, 230, 255},
	"lightgray":   {211, 211, 211, 255},
	"lightgrey":   {211, 211, 211, 255},
	"lightgreen":  {144, 238, 144, 255},
	"lightyellow": {255, 255, 224, 255},
	"darkblue":    {0, 0, 139, 255},
	"darkgray":    {169, 169, 169, 255},
	"darkgrey":    {169, 169, 169, 255},
	"darkgreen":   {0, 100, 0, 255},
	"darkred":     {139, 0, 0, 255},
	"crimson":     {220, 20, 60, 255},
	"gold":        {255, 215, 0, 255},
	"indigo":      {75, 0, 130, 255},
	"ivory":       {255, 255, 240, 255},
	"khaki":       {240, 230, 140, 255},
	"lavender":    {230, 230, 250, 255},
	"magenta":     {255, 0, 255, 255},
	"cyan":        {0, 255, 255, 255},
	"beige":       {245, 245, 220, 255},
	"coral":       {255, 127, 80, 255},
	"salmon":      {250, 128, 114, 255},
	"tomato":      {255, 99, 71, 255},
	"orchid":      {218, 112, 214, 255},
	"plum":        {221, 160, 221, 255},
	"tan":         {210, 180, 140, 255},
	"wheat":       {245, 222, 179, 255},
	"snow":        {255, 250, 250, 255},
	"seashell":    {255, 245, 238, 255},
}

// ParseColor resolves a color value to RGBA. Named colors and #rgb /
// #rrggbb hex notations are supported, case-insensitively; anything
// else reports false, which painters treat as transparent.
func ParseColor(value string) (color.RGBA, bool) {
	value = strings.ToLower(value)
	if c, ok := namedColors[value]; ok {
		return c, true
	}
	if len(value) == 0 || value[0] != '#' {
		return color.RGBA{}, false
	}
	hex := value[1:]
	switch len(hex) {
	case 3:
		r, ok1 := hexNibble(hex[0])
		g, ok2 := hexNibble(hex[1])
		b, ok3 := hexNibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		return color.RGBA{r * 17, g * 17, b * 17, 255}, true
	case 6:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(hex[2*i])
			lo, ok2 := hexNibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return color.RGBA{}, false
			}
			rgb[i] = hi<<4 | lo
		}
		return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, true
	}
	return color.RGBA{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
