// Package mood maps mood scores onto the canonical 0-100 range and onto the
// red to green colours used to paint the calendar.
package mood

import (
	"fmt"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Min is the lowest storable mood score.
	Min = 0
	// Max is the highest storable mood score.
	Max = 100
	// Default is the score a new entry form starts from.
	Default = 50

	maxHue = 120
)

// Marker and tint saturation/lightness, in percent.
const (
	markerSaturation = 74
	markerLightness  = 43
	tintSaturation   = 82
	tintLightness    = 90
)

// Clamp rounds v half-up to the nearest integer and clamps it into [Min, Max].
// NaN is treated as Min.
func Clamp(v float64) int {
	if math.IsNaN(v) {
		return Min
	}
	r := math.Floor(v + 0.5)
	switch {
	case r < Min:
		return Min
	case r > Max:
		return Max
	}
	return int(r)
}

// Normalize converts raw form input into a storable mood score.
func Normalize(v float64) int {
	return Clamp(v)
}

// Hue returns the hue in degrees for a mood: 0 is red, 120 is green.
func Hue(m int) float64 {
	return float64(Clamp(float64(m))) / Max * maxHue
}

// Color is an HSL colour. S and L are percentages.
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ColorFor is the solid marker colour for a mood.
func ColorFor(m int) Color {
	return Color{H: Hue(m), S: markerSaturation, L: markerLightness}
}

// TintFor is the pale background colour for a mood. It shares the hue of
// ColorFor so marker and background always agree.
func TintFor(m int) Color {
	return Color{H: Hue(m), S: tintSaturation, L: tintLightness}
}

// CSS renders the colour in CSS Color 4 syntax, e.g. "hsl(60 74% 43%)".
func (c Color) CSS() string {
	return fmt.Sprintf("hsl(%s %s%% %s%%)", trim(c.H), trim(c.S), trim(c.L))
}

// Hex renders the colour as "#rrggbb" for terminals and other RGB consumers.
func (c Color) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex()
}

func (c Color) String() string {
	return c.CSS()
}

func trim(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
