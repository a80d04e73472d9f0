package patterns

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

//go:embed library
var libraryFS embed.FS

var (
	builtinOnce sync.Once
	builtin     []Pattern
)

// Builtin returns the embedded pattern library sorted by ID.
func Builtin() []Pattern {
	builtinOnce.Do(func() {
		sub, err := fs.Sub(libraryFS, "library")
		if err != nil {
			panic(fmt.Sprintf("patterns: embedded library: %v", err))
		}
		builtin, err = newFSLoader(sub).LoadAll()
		if err != nil {
			panic(fmt.Sprintf("patterns: embedded library: %v", err))
		}
	})
	out := make([]Pattern, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup finds a built-in pattern by ID.
func Lookup(id string) (Pattern, bool) {
	for _, p := range Builtin() {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}

// Resolve finds a pattern by file path, by ID in dir, or by built-in ID,
// in that order. dir may be empty or missing.
func Resolve(name, dir string) (Pattern, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return LoadFile(name)
	}

	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if p, err := NewLoader(dir).LoadByID(name); err == nil {
				return p, nil
			}
		}
	}

	if p, ok := Lookup(name); ok {
		return p, nil
	}
	return Pattern{}, fmt.Errorf("pattern not found: %s", name)
}

// All returns built-in patterns followed by any from dir that do not shadow
// a built-in ID.
func All(dir string) ([]Pattern, error) {
	all := Builtin()
	if dir == "" {
		return all, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return all, nil
	}

	user, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	for _, p := range all {
		seen[p.ID] = true
	}
	for _, p := range user {
		if !seen[p.ID] {
			all = append(all, p)
		}
	}
	return all, nil
}
