// Package levels loads platformer level packs from YAML files.
// A pack is an ordered list of levels played in sequence; each level is a
// plan of text rows understood by sim.Parser.
package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack is an ordered collection of levels.
type Pack struct {
	ID       string
	Name     string
	Levels   []Level
	FilePath string // Empty for embedded packs
}

// Level is a single named level plan.
type Level struct {
	Name string
	Plan []string
}

// yamlPack is the on-disk layout of a pack file.
type yamlPack struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Name string   `yaml:"name"`
	Plan []string `yaml:"plan"`
}

// ParseYAML decodes a pack. Levels without a name are numbered.
func ParseYAML(data []byte) (Pack, error) {
	var raw yamlPack
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Pack{}, fmt.Errorf("levels: invalid YAML: %w", err)
	}
	if strings.TrimSpace(raw.ID) == "" {
		return Pack{}, fmt.Errorf("levels: pack has no id")
	}
	if len(raw.Levels) == 0 {
		return Pack{}, fmt.Errorf("levels: pack %q has no levels", raw.ID)
	}

	pack := Pack{
		ID:     raw.ID,
		Name:   raw.Name,
		Levels: make([]Level, len(raw.Levels)),
	}
	if pack.Name == "" {
		pack.Name = raw.ID
	}
	for i, l := range raw.Levels {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		pack.Levels[i] = Level{Name: name, Plan: l.Plan}
	}
	return pack, nil
}

// Level returns the level at index, wrapping around past the end.
func (p Pack) Level(index int) Level {
	if len(p.Levels) == 0 {
		return Level{}
	}
	if index < 0 {
		index = 0
	}
	return p.Levels[index%len(p.Levels)]
}

// Count returns the number of levels in the pack.
func (p Pack) Count() int {
	return len(p.Levels)
}
