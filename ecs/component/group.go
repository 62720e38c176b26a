package component

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGroup = errors.New("component: unknown group")

// Group tags what an entity is. The set is closed; collision branching and
// activity rules switch over it.
type Group uint8

const (
	GroupNone Group = iota
	GroupSolid
	GroupPlatform
	GroupMovingPlatform
	GroupPlayer
	GroupEnemy
	GroupProjectile
	GroupBreakable
	GroupSwitch
	GroupPressurePlate
	GroupClimbable
	GroupWater
	GroupWeight
	GroupBoulder
	GroupDoor
	GroupInteractable
	GroupEvent
	groupCount
)

var groupNames = [groupCount]string{
	GroupNone:           "none",
	GroupSolid:          "solid",
	GroupPlatform:       "platform",
	GroupMovingPlatform: "moving_platform",
	GroupPlayer:         "player",
	GroupEnemy:          "enemy",
	GroupProjectile:     "projectile",
	GroupBreakable:      "breakable",
	GroupSwitch:         "switch",
	GroupPressurePlate:  "pressure_plate",
	GroupClimbable:      "climbable",
	GroupWater:          "water",
	GroupWeight:         "weight",
	GroupBoulder:        "boulder",
	GroupDoor:           "door",
	GroupInteractable:   "interactable",
	GroupEvent:          "event",
}

func (g Group) String() string {
	if g >= groupCount {
		return fmt.Sprintf("group(%d)", uint8(g))
	}
	return groupNames[g]
}

// ParseGroup maps a level-file tag to a Group.
func ParseGroup(s string) (Group, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range groupNames {
		if name == s {
			return Group(i), nil
		}
	}
	return GroupNone, fmt.Errorf("%w: %q", ErrUnknownGroup, s)
}

// AlwaysActive groups are never culled by the activity zone.
func (g Group) AlwaysActive() bool {
	switch g {
	case GroupSolid, GroupBoulder:
		return true
	}
	return false
}

// DespawnsOffscreen groups are destroyed when they leave the activity zone
// instead of being paused.
func (g Group) DespawnsOffscreen() bool {
	return g == GroupProjectile
}
