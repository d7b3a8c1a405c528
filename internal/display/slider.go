package display

import (
	"math"
	"strings"
)

// slider is a discrete slider over [0, 1] with steps intermediate stops,
// so steps+2 positions in total. Five steps gives sixths, like the phone
// slider this screen copies.
type slider struct {
	steps int
}

func (s slider) intervals() int { return s.steps + 1 }

// index is the stop nearest to fraction.
func (s slider) index(fraction float64) int {
	i := int(math.Round(fraction * float64(s.intervals())))
	return min(max(i, 0), s.intervals())
}

// move returns the fraction delta stops away from fraction, kept inside [0, 1].
func (s slider) move(fraction float64, delta int) float64 {
	i := min(max(s.index(fraction)+delta, 0), s.intervals())
	return float64(i) / float64(s.intervals())
}

// render draws the slider width cells wide with a knob at fraction.
func (s slider) render(fraction float64, width int) string {
	if width < 3 {
		width = 3
	}
	knob := int(math.Round(fraction * float64(width-1)))
	knob = min(max(knob, 0), width-1)

	return sliderFillStyle.Render(strings.Repeat("━", knob)) +
		sliderFillStyle.Render("●") +
		sliderTrackStyle.Render(strings.Repeat("─", width-1-knob))
}
