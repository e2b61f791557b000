package clientcfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/firelift/firelift/internal/appconfig"
)

// EnvConfigDir overrides where client state is kept.
const EnvConfigDir = "FIRELIFT_CONFIG_DIR"

const (
	configFileName   = "config.json"
	identityFileName = "requester_id"
)

// Store persists the client configuration and requester identity under a
// well-known directory. It is freely overwritable by normalized or
// provisioned configs, but is never auto-populated from environment
// values.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) the client state directory:
// $FIRELIFT_CONFIG_DIR if set, otherwise "firelift" under the platform
// user config dir.
func NewStore() (*Store, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locating user config dir: %w", err)
		}
		dir = filepath.Join(base, "firelift")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating client state dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the state directory path.
func (s *Store) Dir() string { return s.dir }

// Load reads the persisted configuration. Returns (nil, nil) when none has
// been saved yet.
func (s *Store) Load() (*appconfig.Config, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, configFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading stored config: %w", err)
	}

	var cfg appconfig.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding stored config: %w", err)
	}
	return &cfg, nil
}

// Save persists the configuration, replacing any previous one.
func (s *Store) Save(cfg appconfig.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, configFileName), data, 0o600); err != nil {
		return fmt.Errorf("writing stored config: %w", err)
	}
	return nil
}

// Clear removes the persisted configuration. Clearing an empty store is
// not an error. The requester identity survives a clear.
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, configFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing stored config: %w", err)
	}
	return nil
}

// RequesterID returns the opaque identifier for this client, generating
// and persisting one on first use so later sessions reuse it.
func (s *Store) RequesterID() (string, error) {
	path := filepath.Join(s.dir, identityFileName)

	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("reading requester id: %w", err)
	}

	id := uuid.NewString()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("persisting requester id: %w", err)
	}
	return id, nil
}
