// Package storage keeps label layouts as JSON files in a directory.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/labelpress/labelpress/backend/bag"
)

// ErrNotFound is returned for layouts that do not exist.
var ErrNotFound = errors.New("layout not found")

const extension = ".json"

var filenameRE = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.json)?$`)

// Entry is one stored layout.
type Entry struct {
	Name      string    `json:"name"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is a directory of layout files.
type Store struct {
	root string
}

// New returns a store rooted at dir and creates the directory if needed.
func New(dir string) (*Store, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create layout directory: %w", err)
	}
	bag.Logger.Debugf("Layout directory %s", root)
	return &Store{root: root}, nil
}

// Root returns the absolute storage directory.
func (s *Store) Root() string {
	return s.root
}

// path checks filename and returns the absolute file name. A missing
// extension is added.
func (s *Store) path(filename string) (string, error) {
	if !filenameRE.MatchString(filename) {
		return "", bag.Invalidf("invalid layout file name %q", filename)
	}
	if !strings.HasSuffix(filename, extension) {
		filename += extension
	}
	p := filepath.Join(s.root, filename)
	rel, err := filepath.Rel(s.root, p)
	if err != nil || rel != filename {
		return "", bag.Invalidf("layout file name %q leaves the layout directory", filename)
	}
	return p, nil
}

// Save writes data as name.json and returns the file name. Data must be a
// JSON object; it is stored indented.
func (s *Store) Save(name string, data []byte) (string, error) {
	if name == "" {
		return "", bag.Invalidf("layout name missing")
	}
	filename := name + extension
	p, err := s.path(filename)
	if err != nil {
		return "", err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return "", bag.Invalidf("layout data must be an object")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", fmt.Errorf("%w: layout data: %s", bag.ErrInvalidInput, err)
	}
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("save layout %s: %w", filename, err)
	}
	bag.Logger.Infof("Saved layout %s", filename)
	return filename, nil
}

// List returns the stored layouts, newest first.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	entries := []Entry{}
	for _, de := range dirEntries {
		if de.IsDir() || strings.ToLower(filepath.Ext(de.Name())) != extension {
			continue
		}
		info, err := de.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		entries = append(entries, Entry{
			Name:      strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())),
			Filename:  de.Name(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].Filename < entries[j].Filename
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// Load returns the content of a layout file. The extension is optional.
func (s *Store) Load(filename string) ([]byte, error) {
	p, err := s.path(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, fmt.Errorf("load layout %s: %w", filename, err)
	}
	if !json.Valid(data) {
		return nil, bag.Invalidf("layout %s contains invalid JSON", filename)
	}
	return data, nil
}

// Delete removes a layout file.
func (s *Store) Delete(filename string) error {
	p, err := s.path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return fmt.Errorf("delete layout %s: %w", filename, err)
	}
	bag.Logger.Infof("Deleted layout %s", filename)
	return nil
}
