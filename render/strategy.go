package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// cellStyle is how one entity kind paints its two terminal columns
type cellStyle struct {
	left, right rune
	style       tcell.Style
}

// styleTable is indexed by engine.EntityKind
var styleTable = [...]cellStyle{
	engine.KindWall:    {constants.WallGlyph, constants.WallGlyph, fg(RgbWall)},
	engine.KindHead:    {constants.HeadGlyph, constants.HeadGlyph, fg(RgbHead)},
	engine.KindSegment: {constants.SegmentGlyph, constants.SegmentGlyph, fg(RgbSegment)},
	engine.KindReward:  {constants.RewardGlyph, ' ', fg(RgbReward)},
	engine.KindCrash:   {constants.CrashGlyph, ' ', fg(RgbCrash).Bold(true)},
}

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(c)
}

// styleFor returns the strategy for a kind; unknown kinds draw nothing visible
func styleFor(k engine.EntityKind) cellStyle {
	if int(k) >= len(styleTable) {
		return cellStyle{' ', ' ', fg(RgbBackground)}
	}
	return styleTable[k]
}
