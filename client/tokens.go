package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fintrack-labs/fintrack-go/utils"
)

// TokenStore holds the opaque access/refresh token pair between requests and
// across process restarts. Tokens are never inspected client-side.
type TokenStore interface {
	GetAccessToken() string
	GetRefreshToken() string
	SetTokens(access, refresh string) error
	ClearTokens() error
}

// ============================================================================
// FILE TOKEN STORE
// Durable analogue of the browser's local storage: a JSON file under the
// user's home directory, chmod 0600. With a 32-byte key the file content is
// AES-GCM encrypted at rest.
// ============================================================================

type tokenFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type FileTokenStore struct {
	path string
	key  string

	mu     sync.Mutex
	loaded bool
	cached tokenFile
}

func NewFileTokenStore(path, encryptionKey string) *FileTokenStore {
	return &FileTokenStore{path: path, key: encryptionKey}
}

func (s *FileTokenStore) GetAccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.cached.AccessToken
}

func (s *FileTokenStore) GetRefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.cached.RefreshToken
}

func (s *FileTokenStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = tokenFile{AccessToken: access, RefreshToken: refresh}
	s.loaded = true
	return s.persist()
}

func (s *FileTokenStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = tokenFile{}
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileTokenStore) load() {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	if s.key != "" {
		plain, err := utils.Decrypt(s.key, string(data))
		if err != nil {
			return
		}
		data = plain
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return
	}
	s.cached = tf
}

func (s *FileTokenStore) persist() error {
	data, err := json.Marshal(s.cached)
	if err != nil {
		return err
	}

	if s.key != "" {
		enc, err := utils.Encrypt(s.key, data)
		if err != nil {
			return err
		}
		data = []byte(enc)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// ============================================================================
// MEMORY TOKEN STORE
// Non-durable store for tests and short-lived programs.
// ============================================================================

type MemoryTokenStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) GetAccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

func (s *MemoryTokenStore) GetRefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

func (s *MemoryTokenStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = access, refresh
	return nil
}

func (s *MemoryTokenStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = "", ""
	return nil
}
