package scenes

import (
	"context"
	"errors"
	"fmt"

	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/store"
)

var (
	ErrNotFound        = errors.New("scene not found")
	ErrInvalidDocument = errors.New("invalid scene document")
	ErrInvalidName     = errors.New("invalid scene name")
)

// Service is the scene library on top of a Store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(ctx context.Context) ([]store.Snapshot, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	if list == nil {
		list = []store.Snapshot{}
	}
	return list, nil
}

// Scene loads the latest version of name.
func (s *Service) Scene(ctx context.Context, name string) (*scene.Scene, error) {
	sc, err := s.store.Load(ctx, name)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return sc, nil
}

// Get returns the latest version of name as a JSON document.
func (s *Service) Get(ctx context.Context, name string) ([]byte, error) {
	sc, err := s.Scene(ctx, name)
	if err != nil {
		return nil, err
	}
	return document.Marshal(sc)
}

// Put validates body as a scene document and stores it as a new version.
func (s *Service) Put(ctx context.Context, name string, body []byte) (store.Snapshot, error) {
	sc, err := document.Unmarshal(body)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return s.Save(ctx, name, sc)
}

func (s *Service) Save(ctx context.Context, name string, sc *scene.Scene) (store.Snapshot, error) {
	snap, err := s.store.Save(ctx, name, sc)
	if err != nil {
		return store.Snapshot{}, mapStoreError(err)
	}
	return snap, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// Sample returns the built-in demo scene as a JSON document.
func (s *Service) Sample() ([]byte, error) {
	return document.Marshal(document.NewSampleScene())
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrInvalidName):
		return ErrInvalidName
	}
	return err
}
