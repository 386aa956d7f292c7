package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cardroom/internal/pot"
)

// File appends records as JSON lines under a directory, one file for turns
// and one for rounds. Lines are flushed per write so a crash loses at most
// the record in flight.
type File struct {
	mu     sync.Mutex
	turns  *os.File
	rounds *os.File
}

// NewFile opens (creating if needed) turns.jsonl and rounds.jsonl in dir.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}
	turns, err := os.OpenFile(filepath.Join(dir, "turns.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("store: open turns log: %w", err)
	}
	rounds, err := os.OpenFile(filepath.Join(dir, "rounds.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		turns.Close()
		return nil, fmt.Errorf("store: open rounds log: %w", err)
	}
	return &File{turns: turns, rounds: rounds}, nil
}

// SaveTurn appends one turn record.
func (f *File) SaveTurn(turn pot.Turn) error {
	return f.appendLine(f.turns, turn)
}

// SaveRound appends one round record.
func (f *File) SaveRound(round Round) error {
	return f.appendLine(f.rounds, round)
}

// Close releases both log files.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	terr := f.turns.Close()
	rerr := f.rounds.Close()
	if terr != nil {
		return terr
	}
	return rerr
}

func (f *File) appendLine(dst *os.File, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("store: encode record: %w", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := dst.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("store: write record: %w", err)
	}
	return nil
}
