package storefront

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/pkg/errs"
)

// SavedCart is what survives a restart: the lines and the flash gate's last observation.
type SavedCart struct {
	Items []cart.Line    `json:"items"`
	Flash FlashGateState `json:"flashOffer"`
}

// CartStore persists the cart across restarts.
type CartStore interface {
	Load() (SavedCart, error)
	Save(saved SavedCart) error
}

// FileCartStore keeps the cart as a JSON document. A missing file is an empty cart.
type FileCartStore struct {
	path string
}

func NewFileCartStore(path string) *FileCartStore {
	return &FileCartStore{path: path}
}

func (s *FileCartStore) Load() (SavedCart, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return SavedCart{}, nil
		}
		return SavedCart{}, errs.Wrapf(err, "failed to read cart file %s", s.path)
	}

	var doc SavedCart
	if err := json.Unmarshal(raw, &doc); err != nil {
		return SavedCart{}, errs.Wrapf(err, "failed to decode cart file %s", s.path)
	}
	return doc, nil
}

// Save writes to a temp file in the same directory and renames it over the old cart.
func (s *FileCartStore) Save(saved SavedCart) error {
	if saved.Items == nil {
		saved.Items = []cart.Line{}
	}
	raw, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return errs.Wrap(err, "failed to create temp cart file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return errs.Wrap(err, "failed to write cart")
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "failed to close temp cart file")
	}
	return os.Rename(tmp.Name(), s.path)
}

// MemoryCartStore is used by the watch command when no cart file should be touched.
type MemoryCartStore struct {
	saved SavedCart
}

func (s *MemoryCartStore) Load() (SavedCart, error) {
	out := s.saved
	out.Items = append([]cart.Line(nil), s.saved.Items...)
	return out, nil
}

func (s *MemoryCartStore) Save(saved SavedCart) error {
	saved.Items = append([]cart.Line(nil), saved.Items...)
	s.saved = saved
	return nil
}
