package server

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordpath/internal/metrics"
	"github.com/katalvlaran/wordpath/wordio"
)

// Dictionary holds the current word list read from a file. Reloads replace
// the whole list; readers get the slice that was current when they asked.
type Dictionary struct {
	path   string
	logger logrus.FieldLogger

	mu    sync.RWMutex
	words []string
}

// NewDictionary creates a Dictionary and performs the initial load.
func NewDictionary(path string, logger logrus.FieldLogger) (*Dictionary, error) {
	d := &Dictionary{path: path, logger: logger}
	if _, err := d.Reload(); err != nil {
		return nil, err
	}

	return d, nil
}

// NewStaticDictionary wraps an in-memory list; Reload and Watch are not available.
func NewStaticDictionary(words []string, logger logrus.FieldLogger) *Dictionary {
	metrics.DictionaryWords.Set(float64(len(words)))
	return &Dictionary{words: words, logger: logger}
}

// Words returns the current list. Callers must not modify it.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words
}

// Reload re-reads the file and swaps the list in. On error the old list stays.
func (d *Dictionary) Reload() (int, error) {
	if d.path == "" {
		return 0, fmt.Errorf("dictionary reload: no file")
	}
	words, err := wordio.LoadDictionary(d.path)
	if err != nil {
		metrics.DictionaryReloads.WithLabelValues("error").Inc()
		return 0, err
	}
	d.mu.Lock()
	d.words = words
	d.mu.Unlock()

	metrics.DictionaryReloads.WithLabelValues("ok").Inc()
	metrics.DictionaryWords.Set(float64(len(words)))

	return len(words), nil
}

// Watch reloads the dictionary whenever its file is written or replaced.
// The directory is watched so editors that rename over the file are seen.
// Call the returned stop function to clean up.
func (d *Dictionary) Watch() (stop func(), err error) {
	if d.path == "" {
		return nil, fmt.Errorf("dictionary watcher: no file")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("dictionary watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(d.path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("dictionary watcher add %s: %w", d.path, err)
	}
	target := filepath.Clean(d.path)

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				n, err := d.Reload()
				if err != nil {
					d.logger.WithError(err).Warn("dictionary reload failed, keeping previous words")
					continue
				}
				d.logger.WithField("words", n).Info("dictionary reloaded")
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				d.logger.WithError(err).Warn("dictionary watcher error")
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}
