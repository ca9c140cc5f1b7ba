package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/99designs/keyring"
)

// ServiceName namespaces our entries in the OS credential store.
const ServiceName = "sfbridge"

// ErrNotFound reports that no credentials are stored under a name.
var ErrNotFound = errors.New("auth: credentials not found")

// Store persists named org credentials in a keyring.
type Store struct {
	ring keyring.Keyring
}

// NewStore wraps an already-open keyring.
func NewStore(ring keyring.Keyring) *Store {
	return &Store{ring: ring}
}

// OpenStore opens the OS credential store.
func OpenStore() (*Store, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("auth: open keyring: %w", err)
	}
	return &Store{ring: ring}, nil
}

// Save stores credentials under an org name.
func (s *Store) Save(name string, c Credentials) error {
	if name == "" {
		return errors.New("auth: org name is required")
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("auth: encode credentials: %w", err)
	}
	if err := s.ring.Set(keyring.Item{Key: name, Data: data, Label: ServiceName + " " + name}); err != nil {
		return fmt.Errorf("auth: store credentials: %w", err)
	}
	return nil
}

// Load fetches credentials stored under an org name.
func (s *Store) Load(name string) (Credentials, error) {
	item, err := s.ring.Get(name)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("auth: read credentials: %w", err)
	}
	var c Credentials
	if err := json.Unmarshal(item.Data, &c); err != nil {
		return Credentials{}, fmt.Errorf("auth: decode credentials: %w", err)
	}
	return c, nil
}

// Delete removes the credentials stored under an org name.
func (s *Store) Delete(name string) error {
	if err := s.ring.Remove(name); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("auth: delete credentials: %w", err)
	}
	return nil
}

// List returns the stored org names, sorted.
func (s *Store) List() ([]string, error) {
	keys, err := s.ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("auth: list credentials: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}
