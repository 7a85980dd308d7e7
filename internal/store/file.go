package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/typeid"
)

// FileStore keeps each scene as a directory of versioned JSON documents:
// <dir>/<name>/<version>-<snapshot id>.json.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scene dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(_ context.Context, name string, sc *scene.Scene) (Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sceneDir := filepath.Join(s.dir, name)
	if err := os.MkdirAll(sceneDir, 0o755); err != nil {
		return Snapshot{}, fmt.Errorf("create scene dir: %w", err)
	}
	versions, err := s.versions(name)
	if err != nil {
		return Snapshot{}, err
	}
	next := 1
	if len(versions) > 0 {
		next = versions[len(versions)-1].Version + 1
	}

	snap := Snapshot{ID: typeid.NewSnapshotID(), Name: name, Version: next}
	path := filepath.Join(sceneDir, fmt.Sprintf("%06d-%s.json", snap.Version, snap.ID))
	if err := document.SaveFile(path, sc); err != nil {
		return Snapshot{}, fmt.Errorf("save scene %s: %w", name, err)
	}
	if info, err := os.Stat(path); err == nil {
		snap.CreatedAt = info.ModTime().UTC()
	}
	return snap, nil
}

func (s *FileStore) Load(_ context.Context, name string) (*scene.Scene, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	versions, err := s.versions(name)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, ErrNotFound
	}

	latest := versions[len(versions)-1]
	sc, err := document.LoadFile(s.path(latest))
	if errors.Is(err, document.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", name, err)
	}
	return sc, nil
}

func (s *FileStore) List(_ context.Context) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	list := make([]Snapshot, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || ValidateName(e.Name()) != nil {
			continue
		}
		versions, err := s.versions(e.Name())
		if err != nil {
			return nil, err
		}
		if len(versions) > 0 {
			list = append(list, versions[len(versions)-1])
		}
	}
	return list, nil
}

func (s *FileStore) Delete(_ context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sceneDir := filepath.Join(s.dir, name)
	if _, err := os.Stat(sceneDir); errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err := os.RemoveAll(sceneDir); err != nil {
		return fmt.Errorf("delete scene %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) path(snap Snapshot) string {
	return filepath.Join(s.dir, snap.Name, fmt.Sprintf("%06d-%s.json", snap.Version, snap.ID))
}

// versions returns the stored snapshots of name, oldest first. Caller holds mu.
func (s *FileStore) versions(name string) ([]Snapshot, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scene dir: %w", err)
	}

	var snaps []Snapshot
	for _, e := range entries {
		base, ok := strings.CutSuffix(e.Name(), ".json")
		if !ok || e.IsDir() || strings.HasPrefix(base, ".") {
			continue
		}
		ver, id, ok := strings.Cut(base, "-")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(ver)
		if err != nil {
			continue
		}
		snap := Snapshot{ID: id, Name: name, Version: n}
		if info, err := e.Info(); err == nil {
			snap.CreatedAt = info.ModTime().UTC()
		}
		snaps = append(snaps, snap)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Version < snaps[j].Version })
	return snaps, nil
}
