package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	fileExt  = ".yaml"
	fileMode = 0o600
	dirMode  = 0o700
)

// Store handles storage and retrieval of recipes. Recipe files hold key
// material and are written owner-only.
type Store struct {
	recipes map[string]*Recipe
	dir     string
	mu      sync.RWMutex
}

// NewStore creates a store backed by dir. An empty dir keeps recipes in
// memory only.
func NewStore(dir string) *Store {
	return &Store{
		recipes: make(map[string]*Recipe),
		dir:     dir,
	}
}

// Dir returns the backing directory.
func (s *Store) Dir() string { return s.dir }

// Save validates and stores a recipe. A recipe saved under an existing
// name replaces it but keeps its ID and creation time.
func (s *Store) Save(r *Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	if old, ok := s.recipes[r.Name]; ok {
		if r.ID == "" {
			r.ID = old.ID
		}
		if r.CreatedAt == "" {
			r.CreatedAt = old.CreatedAt
		}
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt == "" {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	sum, err := r.Digest()
	if err != nil {
		return err
	}
	r.Checksum = sum

	if s.dir != "" {
		if err := s.persist(r); err != nil {
			return err
		}
	}
	s.recipes[r.Name] = r
	return nil
}

// Get retrieves a recipe by name.
func (s *Store) Get(name string) (*Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[name]
	return r, ok
}

// List returns all recipes sorted by name.
func (s *Store) List() []*Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Search finds recipes whose name, description or tags contain query,
// ignoring case.
func (s *Store) Search(query string) []*Recipe {
	q := strings.ToLower(query)
	var out []*Recipe
	for _, r := range s.List() {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Description), q) {
			out = append(out, r)
			continue
		}
		for _, tag := range r.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Delete removes a recipe and its file. Deleting an unknown name is not an
// error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.recipes, name)
	if s.dir == "" || !validName.MatchString(name) {
		return nil
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete recipe file: %w", err)
	}
	return nil
}

// Load reads every recipe file from the directory. A missing directory
// is treated as empty.
func (s *Store) Load() error {
	if s.dir == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read recipes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read recipe %s: %w", entry.Name(), err)
		}
		var r Recipe
		if err := yaml.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("failed to parse recipe %s: %w", entry.Name(), err)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recipe file %s: %w", entry.Name(), err)
		}
		if err := r.VerifyChecksum(); err != nil {
			return fmt.Errorf("recipe file %s: %w", entry.Name(), err)
		}
		s.recipes[r.Name] = &r
	}
	return nil
}

func (s *Store) persist(r *Recipe) error {
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("failed to create recipes directory: %w", err)
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize recipe: %w", err)
	}
	if err := os.WriteFile(s.path(r.Name), data, fileMode); err != nil {
		return fmt.Errorf("failed to write recipe file: %w", err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}
