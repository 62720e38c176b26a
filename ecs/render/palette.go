package render

import (
	"image/color"

	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"golang.org/x/image/colornames"
)

var palette = map[component.Group]color.RGBA{
	component.GroupSolid:          colornames.Slategray,
	component.GroupPlatform:       colornames.Peru,
	component.GroupMovingPlatform: colornames.Orange,
	component.GroupPlayer:         colornames.Crimson,
	component.GroupEnemy:          colornames.Purple,
	component.GroupProjectile:     colornames.Yellow,
	component.GroupBreakable:      colornames.Sienna,
	component.GroupSwitch:         colornames.Gold,
	component.GroupPressurePlate:  colornames.Goldenrod,
	component.GroupClimbable:      colornames.Saddlebrown,
	component.GroupWater:          colornames.Steelblue,
	component.GroupWeight:         colornames.Dimgray,
	component.GroupBoulder:        colornames.Darkgray,
	component.GroupDoor:           colornames.Teal,
	component.GroupInteractable:   colornames.Lightgreen,
	component.GroupEvent:          colornames.Magenta,
}

// SetColor overrides the colour a group is drawn with.
func SetColor(g component.Group, c color.RGBA) {
	palette[g] = c
}

// ColorOf returns the colour for g, white when none is registered.
func ColorOf(g component.Group) color.RGBA {
	if c, ok := palette[g]; ok {
		return c
	}
	return colornames.White
}
