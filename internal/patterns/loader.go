package patterns

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-life/internal/patterns/formats"
)

// Loader handles loading patterns from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for patterns stored under root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// newFSLoader creates a loader over an arbitrary file system.
func newFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadAll recursively scans and loads all pattern files.
// Invalid files are skipped. Returns patterns sorted by ID.
func (l *Loader) LoadAll() ([]Pattern, error) {
	var patterns []Pattern

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		pat, err := l.load(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		patterns = append(patterns, pat)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].ID < patterns[j].ID
	})

	return patterns, nil
}

// LoadFile loads a single pattern file from anywhere on disk.
func LoadFile(filename string) (Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Pattern{}, fmt.Errorf("reading file %s: %w", filename, err)
	}
	return parseFile(data, filename)
}

// load reads a pattern relative to the loader's root.
func (l *Loader) load(p string) (Pattern, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Pattern{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	display := p
	if l.Root != "" {
		display = filepath.Join(l.Root, filepath.FromSlash(p))
	}
	pat, err := parseFile(data, display)
	if err != nil {
		return Pattern{}, err
	}
	if l.Root == "" {
		pat.FilePath = ""
	}
	return pat, nil
}

// LoadByID loads a specific pattern by ID.
func (l *Loader) LoadByID(id string) (Pattern, error) {
	patterns, err := l.LoadAll()
	if err != nil {
		return Pattern{}, err
	}

	for _, p := range patterns {
		if p.ID == id {
			return p, nil
		}
	}

	return Pattern{}, fmt.Errorf("pattern not found: %s", id)
}

// ListIDs returns all pattern IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	patterns, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(patterns))
	for i, p := range patterns {
		ids[i] = p.ID
	}
	return ids, nil
}

// parseFile parses data by extension. Missing IDs fall back to the file stem.
func parseFile(data []byte, filename string) (Pattern, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Pattern{}, fmt.Errorf("parsing file %s: %w", filename, err)
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}
	return fromParsed(parsed, filename), nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Pattern, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".cells":
		return formats.ParseCells(data)
	default:
		return formats.Pattern{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
