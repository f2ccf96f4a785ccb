package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the packs shipped with the binary, sorted by ID.
func Builtin() ([]Pack, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading builtin packs: %w", err)
	}

	packs := make([]Pack, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", e.Name(), err)
		}
		pack, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: builtin %s: %w", e.Name(), err)
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
	return packs, nil
}

// DefaultPack returns the classic builtin pack.
func DefaultPack() Pack {
	packs, err := Builtin()
	if err != nil || len(packs) == 0 {
		panic(fmt.Sprintf("levels: builtin packs unavailable: %v", err))
	}
	for _, p := range packs {
		if p.ID == "classic" {
			return p
		}
	}
	return packs[0]
}
