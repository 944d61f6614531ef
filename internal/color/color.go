// Package color holds the four channel colour value used by every theme table
// and its CSS-syntax parser.
package color

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an sRGB colour with 8-bit channels and a floating point alpha in
// [0, 1]. Colors compare with ==.
type Color struct {
	R uint8
	G uint8
	B uint8
	A float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{255, 255, 255, 1}
	Red   = Color{255, 0, 0, 1}
	Blue  = Color{0, 0, 255, 1}
)

// RGBA builds a colour from its channels.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// String renders the canonical rgba(r, g, b, a) form.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex renders #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Describe renders the channel breakdown used by the tree display.
func (c Color) Describe() string {
	return fmt.Sprintf("R: %3d | G: %3d | B: %3d | A: %.3f", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML parses a CSS colour string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: colour must be a string", value.Line)
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML emits the canonical rgba form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// MarshalJSON emits the canonical rgba form as a JSON string.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a CSS colour string.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
