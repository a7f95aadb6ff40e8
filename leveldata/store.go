package leveldata

import (
	"fmt"

	"github.com/quasilyte/gdata"

	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/tilemap"
)

// itemStore is the subset of *gdata.Manager the level store needs.
type itemStore interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

// Store keeps named level slots in the user's app data directory.
type Store struct {
	items itemStore
}

// OpenStore opens the gdata-backed store for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open level store %s: %w", appName, err)
	}
	return &Store{items: m}, nil
}

func newStore(items itemStore) *Store {
	return &Store{items: items}
}

func slotKey(name string) string {
	return "level_" + name
}

// SaveLevel writes tm as a level document under name.
func (s *Store) SaveLevel(name string, tm *tilemap.Tilemap) error {
	data, err := tm.MarshalDocument()
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(slotKey(name), data); err != nil {
		return fmt.Errorf("save level slot %s: %w", name, err)
	}
	logger.Log.Debugw("Saved level slot", "name", name, "tiles", tm.Len())
	return nil
}

// LoadLevel reads the level slot name. An empty slot yields tilemap.ErrNotFound.
func (s *Store) LoadLevel(name string) (*tilemap.Tilemap, error) {
	data, err := s.items.LoadItem(slotKey(name))
	if err != nil {
		return nil, fmt.Errorf("load level slot %s: %w", name, err)
	}
	if data == nil {
		return nil, fmt.Errorf("level slot %s: %w", name, tilemap.ErrNotFound)
	}
	tm, err := tilemap.UnmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("level slot %s: %w", name, err)
	}
	return tm, nil
}
