package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads packs from a file or a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at a file or directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every pack under Root. A file root loads just that file.
// Invalid files in a directory are skipped; use Validate to report them.
// Packs are sorted by ID.
func (l *Loader) LoadAll() ([]Pack, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		pack, err := l.LoadFile(l.Root)
		if err != nil {
			return nil, err
		}
		return []Pack{pack}, nil
	}

	paths, err := l.Files()
	if err != nil {
		return nil, err
	}

	var packs []Pack
	for _, path := range paths {
		pack, err := l.LoadFile(path)
		if err != nil {
			continue
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
	return packs, nil
}

// Files returns the pack files under Root in lexical order.
func (l *Loader) Files() ([]string, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return []string{l.Root}, nil
	}

	var paths []string
	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsPackFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}
	return paths, nil
}

// LoadFile loads a single pack file.
func (l *Loader) LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	pack, err := ParseYAML(data)
	if err != nil {
		return Pack{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	pack.FilePath = path
	return pack, nil
}

// LoadByID loads the pack with the given ID.
func (l *Loader) LoadByID(id string) (Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return Pack{}, err
	}
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("levels: pack not found: %s", id)
}

// IsPackFile reports whether path has a pack file extension.
func IsPackFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Resolve returns the pack to play: from root when set, otherwise the
// builtin pack with the given ID (or the default pack when id is empty).
func Resolve(root, id string) (Pack, error) {
	if root != "" {
		loader := NewLoader(root)
		if id != "" {
			return loader.LoadByID(id)
		}
		packs, err := loader.LoadAll()
		if err != nil {
			return Pack{}, err
		}
		if len(packs) == 0 {
			return Pack{}, fmt.Errorf("levels: no packs found in %s", root)
		}
		return packs[0], nil
	}

	if id == "" {
		return DefaultPack(), nil
	}
	packs, err := Builtin()
	if err != nil {
		return Pack{}, err
	}
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("levels: pack not found: %s", id)
}
