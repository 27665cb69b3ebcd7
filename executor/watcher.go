package executor

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/log"
	"github.com/kakkky/starsole/registry"
)

// watcher はloadしたファイルの変更を監視し、loaderのキャッシュを無効化する
// ファイルが消えた場合はimportの補完候補からも外す
type watcher struct {
	fsw      *fsnotify.Watcher
	loader   *loader
	registry *registry.Registry
	done   chan struct{}
	wg     sync.WaitGroup
	// onInvalidate はキャッシュを無効化した後に呼ばれる。テストで使う
	onInvalidate func(path string)
}

func newWatcher(l *loader, reg *registry.Registry) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errs.NewInternalError("failed to start file watcher").Wrap(err)
	}
	w := &watcher{
		fsw:      fsw,
		loader:   l,
		registry: reg,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// add はファイルを監視対象に加える
func (w *watcher) add(path string) {
	if err := w.fsw.Add(path); err != nil {
		log.Warn("failed to watch", path, err)
		return
	}
	log.Debug("watching", path)
}

func (w *watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("file watcher error", err)
		case <-w.done:
			return
		}
	}
}

func (w *watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if w.loader.invalidate(event.Name) {
		log.Info("module changed, cache invalidated:", event.Name)
	}
	// 削除や置き換えの後は、次にloadしたときに監視し直す
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		_ = w.fsw.Remove(event.Name)
		w.unregisterMissing(event.Name)
	}
	if w.onInvalidate != nil {
		w.onInvalidate(event.Name)
	}
}

// unregisterMissing はファイルが残っていなければモジュールの登録を取り消す
// 置き換えで保存するエディタではRenameの後もファイルが存在する
func (w *watcher) unregisterMissing(path string) {
	if w.loader.exists(path) {
		return
	}
	entry, ok := w.registry.FindByPath(path)
	if !ok {
		return
	}
	w.registry.Unregister(entry.Name)
	log.Info("module file removed, unregistered:", entry.Name)
}

func (w *watcher) close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
