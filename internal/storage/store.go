package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/zobe03/se-todo-app/internal/model"
)

const (
	tasksFile      = "tasks.json"
	categoriesFile = "categories.json"
)

// Store persists the task and category collections as two independent
// pretty-printed JSON files under a data directory. Every save rewrites the
// whole collection; there is no incremental write and no file locking, so a
// single active writer is assumed.
type Store struct {
	dir string
	log *log.Logger
}

func New(dir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{dir: dir, log: logger}, nil
}

// Dir returns the data directory the store writes to.
func (s *Store) Dir() string { return s.dir }

// LoadTasks reads the task collection. A missing file yields an empty
// collection; a malformed file is logged and likewise degrades to empty
// rather than failing the caller.
func (s *Store) LoadTasks() []model.Task {
	b, ok := s.read(tasksFile)
	if !ok {
		return []model.Task{}
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		s.log.Warn("malformed task store, starting empty", "file", tasksFile, "err", err)
		return []model.Task{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks
}

// SaveTasks writes the full task collection. Write failures are logged and
// swallowed; durability here is best effort.
func (s *Store) SaveTasks(tasks []model.Task) {
	s.write(tasksFile, tasks)
}

func (s *Store) LoadCategories() []model.Category {
	b, ok := s.read(categoriesFile)
	if !ok {
		return []model.Category{}
	}
	var categories []model.Category
	if err := json.Unmarshal(b, &categories); err != nil {
		s.log.Warn("malformed category store, starting empty", "file", categoriesFile, "err", err)
		return []model.Category{}
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories
}

func (s *Store) SaveCategories(categories []model.Category) {
	s.write(categoriesFile, categories)
}

func (s *Store) read(name string) ([]byte, bool) {
	path := filepath.Join(s.dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("could not read store, starting empty", "file", path, "err", err)
		}
		return nil, false
	}
	return b, true
}

func (s *Store) write(name string, v any) {
	path := filepath.Join(s.dir, name)
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Error("could not encode store", "file", path, "err", err)
		return
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		s.log.Error("could not write store", "file", path, "err", err)
	}
}
