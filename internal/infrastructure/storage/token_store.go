// Package storage provides the durable client-side state: a single bearer
// token string under a fixed path, used to persist login across restarts.
package storage

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// FileTokenStore keeps the token in a mode-0600 file.
type FileTokenStore struct {
	path string
	log  zerolog.Logger
}

func NewFileTokenStore(path string, log zerolog.Logger) *FileTokenStore {
	return &FileTokenStore{path: path, log: log}
}

// Load returns the stored token, or "" when none is stored or the file is
// unreadable. A broken store behaves like a logged-out session.
func (s *FileTokenStore) Load() string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// Save persists the token. An empty token clears the store.
func (s *FileTokenStore) Save(token string) error {
	if token == "" {
		s.Clear()
		return nil
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the stored token. It never reports failure: logout must
// always succeed locally, and a missing file is already the desired state.
func (s *FileTokenStore) Clear() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Str("path", s.path).Msg("could not remove token file")
	}
}
