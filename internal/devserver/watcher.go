package devserver

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	klog "k8s.io/klog/v2"

	"github.com/wasmlab/audiotag/common"
)

// Watcher tracks the Go sources of the demo program and pokes a channel when
// any of them change, so the server can rebuild.
//
// Change notifications are coalesced: a burst of writes (an editor saving
// several files) lands as a single token on C(), and the accumulated file
// names are drained with EnumerateUpdatedFiles.
type Watcher struct {
	// mu protects updated.
	mu sync.Mutex

	// updated is the list of files changed since the last call to EnumerateUpdatedFiles.
	updated common.Set[string]

	watcher *fsnotify.Watcher

	// dirty receives one token per burst of changes. Capacity 1.
	dirty chan struct{}
}

// NewWatcher creates a Watcher and starts listening for file system events.
// Nothing is tracked until Track is called.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create a filesystem watcher")
	}
	w := &Watcher{
		updated: common.MakeSet[string](),
		watcher: fsWatcher,
		dirty:   make(chan struct{}, 1),
	}
	go w.listen()
	return w, nil
}

func (w *Watcher) listen() {
	klog.V(2).Infof("devserver.Watcher: starting to listen to watcher")
	defer klog.V(2).Infof("devserver.Watcher: stopped listening to watcher")

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op != fsnotify.Write && event.Op != fsnotify.Remove && event.Op != fsnotify.Create {
				// Not interested.
				continue
			}
			if !isGoRelated(event.Name) {
				// Not interested.
				continue
			}
			w.mu.Lock()
			klog.V(2).Infof("devserver.Watcher: updates to %q", event.Name)
			w.updated.Insert(event.Name)
			w.mu.Unlock()
			// Coalesce: one token per burst.
			select {
			case w.dirty <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			klog.V(2).Infof("devserver.Watcher: async error received %+v", err)
			if !ok {
				return
			}
		}
	}
}

// C returns the channel poked after changes land. Drain the changed file
// names with EnumerateUpdatedFiles.
func (w *Watcher) C() <-chan struct{} {
	return w.dirty
}

// Track adds dirPath and every subdirectory containing Go files to the watch
// list. fsnotify doesn't support recursive watching, so each subdirectory is
// added individually.
func (w *Watcher) Track(dirPath string) error {
	return filepath.WalkDir(dirPath, func(entryPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to track directory %q", dirPath)
		}
		if !d.IsDir() {
			return nil
		}
		base := path.Base(entryPath)
		if entryPath != dirPath && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_")) {
			// Skip hidden and underscore directories, the Go tool ignores them too.
			return fs.SkipDir
		}
		if addErr := w.watcher.Add(entryPath); addErr != nil {
			return errors.Wrapf(addErr, "failed to watch tracked directory %q", entryPath)
		}
		klog.V(2).Infof("devserver.Watcher: tracking %q", entryPath)
		return nil
	})
}

// EnumerateUpdatedFiles calls fn for each file that has been updated since
// the last call. If `fn` returns an error, then the enumeration is interrupted and
// the error is returned.
func (w *Watcher) EnumerateUpdatedFiles(fn func(filePath string) error) (err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := common.SortedKeys(w.updated)
	for _, filePath := range files {
		w.updated.Delete(filePath)
		err = fn(filePath)
		if err != nil {
			return
		}
	}
	return
}

// Close stops watching. The listen goroutine exits when the underlying
// watcher's channels close.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// isGoRelated checks whether a file affects the compiled demo.
func isGoRelated(fileOrDirPath string) bool {
	base := path.Base(fileOrDirPath)
	switch base {
	case "go.mod", "go.sum", "go.work":
		return true
	default:
		if strings.HasSuffix(base, "_test.go") {
			return false
		}
		if strings.HasSuffix(base, ".go") {
			return true
		}
	}
	return false
}
