package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a stage: its extent and the entities to spawn, in spawn order.
type Level struct {
	Name     string   `json:"name"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity describes one spawned body. Type is a group name such as "solid"
// or "moving_platform"; Props carries the per-type extras.
type Entity struct {
	Type  string                 `json:"type"`
	Name  string                 `json:"name,omitempty"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	W     float64                `json:"w"`
	H     float64                `json:"h"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Load reads a level by name, with or without the .json suffix. A copy under
// levels/ on disk wins over the embedded one; a path to any other file on disk
// works too.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty level name", ErrInvalidLevel)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		data, err = os.ReadFile(filepath.Join("levels", filepath.Base(clean)))
	}
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, filepath.Base(clean))
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

// SameLevel reports whether two level names refer to the same file, e.g.
// "demo" and "levels/demo.json".
func SameLevel(a, b string) bool {
	ca, cb := cleanLevelPath(a), cleanLevelPath(b)
	return ca != "" && filepath.Base(ca) == filepath.Base(cb)
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %vx%v", ErrInvalidLevel, lvl.Width, lvl.Height)
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil
	}
	return entries
}
