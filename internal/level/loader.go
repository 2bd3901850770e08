package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Entry pairs a loaded level with the file it came from.
type Entry struct {
	Level    *Level
	FilePath string
}

// LoadAll recursively scans and loads all level files under Root.
// Invalid files are skipped. Results are sorted by name, then path,
// for deterministic ordering.
func (ld *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(ld.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !SupportedExtension(filepath.Ext(path)) {
			return nil
		}

		lvl, err := LoadFile(path)
		if err != nil {
			// Skip unparseable files
			return nil
		}
		entries = append(entries, Entry{Level: lvl, FilePath: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: walking directory %s: %w", ld.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Level.Name != entries[j].Level.Name {
			return entries[i].Level.Name < entries[j].Level.Name
		}
		return entries[i].FilePath < entries[j].FilePath
	})

	return entries, nil
}

// LoadByName loads the first level whose name matches.
func (ld *Loader) LoadByName(name string) (*Level, error) {
	entries, err := ld.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Level.Name == name {
			return e.Level, nil
		}
	}
	return nil, fmt.Errorf("level: not found: %s", name)
}

// LoadFile loads a single level file, dispatching on the extension.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", path, err)
	}

	lvl, err := parseByExtension(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("level: parsing %s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lvl, nil
}

// SaveFile writes a level to a file, dispatching on the extension.
func SaveFile(path string, l *Level) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = EncodeJSON(l)
	case ".yaml", ".yml":
		data, err = EncodeYAML(l)
	default:
		return fmt.Errorf("level: unsupported extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("level: creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: writing %s: %w", path, err)
	}
	return nil
}

// SupportedExtension reports whether a file extension names a level format.
func SupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (*Level, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
