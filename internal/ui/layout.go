package ui

import (
	"math"
	"strings"

	"schelling/internal/core"
)

type hudLine struct {
	text   string
	header bool
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

// parameterLines flattens a snapshot into group headers followed by
// "label  value" rows.
func parameterLines(snap core.ParameterSnapshot) []hudLine {
	var lines []hudLine
	for _, g := range snap.Groups {
		lines = append(lines, hudLine{text: g.Name, header: true})
		for _, p := range g.Params {
			lines = append(lines, hudLine{text: p.Label + "  " + p.Value})
		}
	}
	return lines
}

// sparkHeights maps the newest width values of a [0,1] series onto bar
// heights in [0,height]. Older values are dropped when the series is longer
// than the plot.
func sparkHeights(values []float64, width, height int) []int {
	if width <= 0 || height <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	out := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) || v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		out[i] = int(math.Round(v * float64(height)))
	}
	return out
}
