package keymap

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a keymap file whenever it changes on disk. Reloaded
// keymaps arrive on Keymaps(); load failures arrive on Errors() and never
// interrupt watching.
type Watcher struct {
	path   string
	loader *Loader

	fsw     *fsnotify.Watcher
	keymaps chan *Keymap
	errs    chan error

	closeOnce sync.Once
	closeCh   chan struct{}
}

// debounceDelay coalesces the bursts of write events editors produce when
// saving a file.
const debounceDelay = 50 * time.Millisecond

// NewWatcher starts watching the given keymap file.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace files on save, which drops a
	// watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		loader:  NewLoader(),
		fsw:     fsw,
		keymaps: make(chan *Keymap, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Keymaps returns the channel of reloaded keymaps.
func (w *Watcher) Keymaps() <-chan *Keymap {
	return w.keymaps
}

// Errors returns the channel of reload errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	reload := func() {
		km, err := w.loader.LoadFile(w.path)
		if err != nil {
			select {
			case w.errs <- err:
			default:
			}
			return
		}
		select {
		case w.keymaps <- km:
		case <-w.closeCh:
		}
	}

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, reload)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
