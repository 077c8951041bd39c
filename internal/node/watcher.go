package node

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/block-xaero/cyan/internal/core"
)

// dirWatcher flags external writes to the database so an open UI can
// refresh. Our own writes trip it too; the refresh is idempotent, so the
// extra poll is harmless.
type dirWatcher struct {
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	wg      sync.WaitGroup

	mu       sync.Mutex
	debounce *time.Timer
}

var watchFiles = map[string]bool{
	core.DBFileName:          true,
	core.DBFileName + "-wal": true,
}

func watchDataDir(dir string, onChange func(), log zerolog.Logger) (*dirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	w := &dirWatcher{
		watcher: watcher,
		stopCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop(onChange, log)
	return w, nil
}

func (w *dirWatcher) loop(onChange func(), log zerolog.Logger) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watchFiles[filepath.Base(event.Name)] {
				continue
			}
			w.schedule(onChange)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// schedule coalesces bursts of writes into one change signal.
func (w *dirWatcher) schedule(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(500*time.Millisecond, func() {
		select {
		case <-w.stopCh:
			return
		default:
		}
		onChange()
	})
}

func (w *dirWatcher) stop() {
	close(w.stopCh)
	_ = w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
	w.mu.Unlock()
}
