package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black board
	RgbWall       = tcell.NewRGBColor(200, 30, 30)   // Red boundary ring
	RgbHead       = tcell.NewRGBColor(80, 255, 80)   // Bright green
	RgbSegment    = tcell.NewRGBColor(0, 170, 0)     // Normal green
	RgbReward     = tcell.NewRGBColor(255, 80, 120)  // Pink heart
	RgbCrash      = tcell.NewRGBColor(255, 255, 0)   // Yellow crash mark
	RgbStatusText = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbOverlayFg  = tcell.NewRGBColor(0, 0, 0)       // Dark text on the banner
	RgbOverlayBg  = tcell.NewRGBColor(255, 165, 0)   // Orange banner
	RgbWinBg      = tcell.NewRGBColor(144, 238, 144) // Light green banner on a cleared board
)
