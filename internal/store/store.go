// Package store persists named scenes. Every save creates a new version; loads
// return the latest one.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shapesapp/shapes/internal/scene"
)

var (
	ErrNotFound    = errors.New("scene not found")
	ErrInvalidName = errors.New("invalid scene name")
)

type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store interface {
	Save(ctx context.Context, name string, sc *scene.Scene) (Snapshot, error)
	Load(ctx context.Context, name string) (*scene.Scene, error)
	List(ctx context.Context) ([]Snapshot, error)
	Delete(ctx context.Context, name string) error
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ValidateName accepts 1-64 characters of letters, digits, '_' and '-',
// starting with a letter or digit.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}
