package editsync

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher wakes the poll loop early when the scratch file changes. The
// directory is watched rather than the file because many editors save by
// writing a new file and renaming it over the old one.
type fileWatcher struct {
	w    *fsnotify.Watcher
	name string
	wake chan struct{}
	done chan struct{}
}

func newFileWatcher(path string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	fw := &fileWatcher{
		w:    w,
		name: filepath.Base(path),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go fw.run()
	return fw, nil
}

func (fw *fileWatcher) run() {
	defer close(fw.done)
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != fw.name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case fw.wake <- struct{}{}:
			default:
			}
		case _, ok := <-fw.w.Errors:
			if !ok {
				return
			}
		}
	}
}

// Wake returns a channel that receives after the scratch file changed
func (fw *fileWatcher) Wake() <-chan struct{} {
	return fw.wake
}

func (fw *fileWatcher) Close() error {
	err := fw.w.Close()
	<-fw.done
	return err
}
