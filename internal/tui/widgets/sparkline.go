// ABOUTME: Sparkline and bar chart widgets built from block characters
// ABOUTME: Renders monthly sales trends and traffic shares in a few cells

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/models"
)

// SparklineBlocks are the Unicode block characters for different heights
var SparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a compact trend visualization
// values: slice of values to display (most recent last)
// width: number of characters to render (will sample/pad as needed)
func Sparkline(values []float64, width int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := sampleValues(values, width)
	lo, hi := bounds(sampled)

	result := make([]rune, len(sampled))
	for i, v := range sampled {
		result[i] = valueToBlock(v, lo, hi)
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(string(result))
}

// Bar is one labelled value in a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
}

// BarChart renders one row per bar, scaled so the largest value fills width.
func BarChart(bars []Bar, width int, color lipgloss.Color) string {
	if len(bars) == 0 || width <= 0 {
		return ""
	}

	labelWidth := 0
	var hi float64
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		if b.Value > hi {
			hi = b.Value
		}
	}

	fill := lipgloss.NewStyle().Foreground(color)
	rows := make([]string, 0, len(bars))
	for _, b := range bars {
		n := 0
		if hi > 0 {
			n = int(b.Value / hi * float64(width))
		}
		if b.Value > 0 && n == 0 {
			n = 1
		}
		rows = append(rows, fmt.Sprintf("%-*s %s %s",
			labelWidth, b.Label,
			fill.Render(strings.Repeat("█", n))+strings.Repeat(" ", width-n),
			models.Thousands(int64(b.Value))))
	}
	return strings.Join(rows, "\n")
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// sampleValues resamples the values slice to the target width
func sampleValues(values []float64, width int) []float64 {
	if len(values) == width {
		return values
	}

	result := make([]float64, width)

	if len(values) < width {
		// Pad with zeros at the beginning
		copy(result[width-len(values):], values)
	} else {
		ratio := float64(len(values)) / float64(width)
		for i := 0; i < width; i++ {
			idx := int(float64(i) * ratio)
			if idx >= len(values) {
				idx = len(values) - 1
			}
			result[i] = values[idx]
		}
	}

	return result
}

// valueToBlock converts a value to a block character based on its position in the range
func valueToBlock(value, lo, hi float64) rune {
	if hi == lo {
		return SparklineBlocks[len(SparklineBlocks)/2]
	}

	normalized := (value - lo) / (hi - lo)
	idx := int(normalized * float64(len(SparklineBlocks)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(SparklineBlocks) {
		idx = len(SparklineBlocks) - 1
	}
	return SparklineBlocks[idx]
}
