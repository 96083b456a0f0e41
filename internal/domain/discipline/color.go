package discipline

import (
	"regexp"
	"strings"
)

const (
	// PlaceholderName is shown for tasks and schedules whose discipline is gone.
	PlaceholderName = "No discipline"
	// PlaceholderColor is shown alongside PlaceholderName.
	PlaceholderColor = "#6200EE"

	defaultColor = "#000000"
)

var hexColor = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

var namedColors = map[string]string{
	"pink":     "#FF1493",
	"red":      "#FF0000",
	"orange":   "#FF8C00",
	"yellow":   "#FFFF00",
	"green":    "#32CD32",
	"mint":     "#00FF00",
	"blue":     "#4169E1",
	"cyan":     "#00CED1",
	"purple":   "#9932CC",
	"lavender": "#BA55D3",
	"salmon":   "#FF6347",
	"peach":    "#FF7F50",

	"rosa":     "#FF1493",
	"vermelho": "#FF0000",
	"laranja":  "#FF8C00",
	"amarelo":  "#FFFF00",
	"verde":    "#32CD32",
	"menta":    "#00FF00",
	"azul":     "#4169E1",
	"ciano":    "#00CED1",
	"roxo":     "#9932CC",
	"lavanda":  "#BA55D3",
	"salmão":   "#FF6347",
	"pêssego":  "#FF7F50",
}

// ColorHex resolves a color name or hex code to a hex code. Unknown names
// resolve to black and an empty value stays empty.
func ColorHex(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return ""
	}
	if hexColor.MatchString(c) {
		return strings.ToUpper(c)
	}
	if hex, ok := namedColors[strings.ToLower(c)]; ok {
		return hex
	}
	return defaultColor
}

// ColorNames lists the names ColorHex understands, English first.
func ColorNames() []string {
	return []string{
		"pink", "red", "orange", "yellow", "green", "mint",
		"blue", "cyan", "purple", "lavender", "salmon", "peach",
	}
}
