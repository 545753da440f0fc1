package constants

// Board Layout
const (
	// CellWidth is the number of terminal columns per grid cell
	CellWidth = 2

	// StatusBarHeight is the number of rows reserved under the board
	StatusBarHeight = 1
)

// Glyphs
const (
	WallGlyph    = '█'
	HeadGlyph    = '█'
	SegmentGlyph = '█'
	RewardGlyph  = '♥'
	CrashGlyph   = '✖'
)

// Overlay Text
const (
	OverlayStart     = "PRESS SPACE TO START"
	OverlayPaused    = "PAUSED - SPACE TO RESUME"
	OverlayOver      = "GAME OVER - SPACE TO RESTART"
	OverlayBoardFull = "BOARD CLEARED - SPACE TO RESTART"
	OverlayTooSmall  = "terminal too small"
)
