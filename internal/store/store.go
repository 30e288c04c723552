// Package store persists best scores in a YAML file keyed by player name.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultPlayer is the key used when no player name is known (local play).
const DefaultPlayer = "local"

// scoreFile is the on-disk layout.
type scoreFile struct {
	BestScores map[string]int `yaml:"best_scores"`
}

// FileStore keeps best scores in memory and writes them through to a YAML file.
// It is safe for concurrent use by multiple sessions.
type FileStore struct {
	mu     sync.Mutex
	path   string
	scores map[string]int
}

// Open loads the score file at path. A missing file starts empty; a
// malformed file is reported through the returned warning and also starts
// empty, so a corrupt file never prevents play.
func Open(path string) (s *FileStore, warning error, err error) {
	s = &FileStore{path: path, scores: map[string]int{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read scores %s: %w", path, err)
	}

	var f scoreFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return s, fmt.Errorf("ignoring malformed scores file %s: %w", path, err), nil
	}
	for name, score := range f.BestScores {
		if score > 0 {
			s.scores[name] = score
		}
	}
	return s, nil, nil
}

// Best returns the best score recorded for player, or 0.
func (s *FileStore) Best(player string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[player]
}

// Record stores score for player if it beats the current best.
// Returns true if the best score changed.
func (s *FileStore) Record(player string, score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.scores[player] {
		return false, nil
	}
	s.scores[player] = score
	if err := s.flush(); err != nil {
		return true, err
	}
	return true, nil
}

// flush writes all scores atomically. Caller must hold s.mu.
func (s *FileStore) flush() error {
	data, err := yaml.Marshal(scoreFile{BestScores: s.scores})
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create scores dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".scores-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp scores file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace scores file: %w", err)
	}
	return nil
}

// For returns a view of the store scoped to a single player.
func (s *FileStore) For(player string) *PlayerScores {
	if player == "" {
		player = DefaultPlayer
	}
	return &PlayerScores{store: s, player: player}
}

// PlayerScores is one player's slice of a FileStore. It satisfies game.ScoreStore.
type PlayerScores struct {
	store  *FileStore
	player string
}

// BestScore returns the player's best score.
func (p *PlayerScores) BestScore() int {
	return p.store.Best(p.player)
}

// SaveBestScore records score if it beats the player's best.
func (p *PlayerScores) SaveBestScore(score int) error {
	_, err := p.store.Record(p.player, score)
	return err
}
