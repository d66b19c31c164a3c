package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jakecoffman/cp"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultFile is the embedded level set.
const DefaultFile = "levels.json"

var ErrNoLevels = errors.New("levels: no levels defined")

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// Rect is a solid box given by its centre and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Position() cp.Vector {
	return cp.Vector{X: r.X, Y: r.Y}
}

func (r Rect) Size() cp.Vector {
	return cp.Vector{X: r.W, Y: r.H}
}

type Level struct {
	Name        string `json:"name"`
	PlayerStart Point  `json:"player_start"`
	Goal        Point  `json:"goal"`
	Platforms   []Rect `json:"platforms"`
}

type levelSet struct {
	Levels []Level `json:"levels"`
}

// Load returns the embedded level set.
func Load() ([]Level, error) {
	return LoadFromFS(LevelsFS, DefaultFile)
}

func LoadFromFS(fsys fs.FS, name string) ([]Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return parse(name, data)
}

// LoadFile reads a level set from disk.
func LoadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(name string, data []byte) ([]Level, error) {
	var set levelSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if len(set.Levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, lvl := range set.Levels {
		for j, p := range lvl.Platforms {
			if p.W <= 0 || p.H <= 0 {
				return nil, fmt.Errorf("levels: %s: level %d platform %d has non-positive size %gx%g", name, i, j, p.W, p.H)
			}
		}
	}
	return set.Levels, nil
}
