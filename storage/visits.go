package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// VisitCounter counts page views and persists the total to a JSON file.
// An empty path keeps the count in memory only.
type VisitCounter struct {
	mu       sync.Mutex
	count    int64
	saved    int64
	filePath string
	logger   *slog.Logger
	saving   sync.WaitGroup
	closed   bool // set by Flush; later increments are not persisted
}

type visitData struct {
	Count int64 `json:"count"`
}

// NewVisitCounter creates a counter, loading an existing count from filePath if present.
func NewVisitCounter(filePath string, logger *slog.Logger) (*VisitCounter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	vc := &VisitCounter{
		filePath: filePath,
		logger:   logger,
	}
	if filePath == "" {
		return vc, nil
	}

	if err := vc.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load visits: %w", err)
	}
	vc.saved = vc.count

	return vc, nil
}

func (vc *VisitCounter) load() error {
	data, err := os.ReadFile(vc.filePath)
	if err != nil {
		return err
	}

	var vd visitData
	if err := json.Unmarshal(data, &vd); err != nil {
		return err
	}

	vc.count = vd.Count
	return nil
}

// save writes count through a temp file so a crash never leaves a torn file.
func (vc *VisitCounter) save(count int64) error {
	data, err := json.Marshal(visitData{Count: count})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(vc.filePath), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(vc.filePath), ".visits-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), vc.filePath)
}

// Increment adds one view and persists in the background.
func (vc *VisitCounter) Increment() int64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	vc.count++
	if vc.filePath != "" && !vc.closed {
		vc.saving.Add(1)
		go func() {
			defer vc.saving.Done()
			vc.persist()
		}()
	}

	return vc.count
}

// persist writes the latest count unless a newer save already did.
func (vc *VisitCounter) persist() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.count == vc.saved {
		return
	}
	if err := vc.save(vc.count); err != nil {
		vc.logger.Warn("save visit count", "path", vc.filePath, "error", err)
		return
	}
	vc.saved = vc.count
}

// Get returns the current count without incrementing.
func (vc *VisitCounter) Get() int64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.count
}

// Flush stops background saves, waits for those in flight and writes the
// final count.
func (vc *VisitCounter) Flush() error {
	vc.mu.Lock()
	vc.closed = true
	vc.mu.Unlock()

	vc.saving.Wait()
	if vc.filePath == "" {
		return nil
	}

	vc.mu.Lock()
	defer vc.mu.Unlock()
	if vc.count == vc.saved {
		return nil
	}
	if err := vc.save(vc.count); err != nil {
		return fmt.Errorf("save visits: %w", err)
	}
	vc.saved = vc.count
	return nil
}
