package chart

import (
	"image/color"

	"github.com/gx14ac/zart/internal/compare"
)

// Okabe-Ito palette, chosen for colorblind-safe contrast.
var (
	blue        = color.RGBA{0, 114, 178, 255}
	orange      = color.RGBA{230, 159, 0, 255}
	bluishGreen = color.RGBA{0, 158, 115, 255}
	vermillion  = color.RGBA{213, 94, 0, 255}
	purple      = color.RGBA{204, 121, 167, 255}
	skyBlue     = color.RGBA{86, 180, 233, 255}

	baselineColor  = blue
	candidateColor = orange
	parityColor    = color.RGBA{110, 110, 110, 255} // gray

	seriesPalette = []color.RGBA{blue, vermillion, bluishGreen, purple, skyBlue, orange}
)

func verdictColor(v compare.Verdict) color.RGBA {
	switch v {
	case compare.Faster:
		return bluishGreen
	case compare.NeedsImprovement:
		return vermillion
	default:
		return blue
	}
}
