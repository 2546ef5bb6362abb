package presenter

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"slidedeck/pkg/deck"
)

type deckLoadedMsg struct {
	deck deck.Deck
}

type errMsg struct {
	err error
}

func (e errMsg) Error() string { return e.err.Error() }

type watchStartedMsg struct {
	watcher *fsnotify.Watcher
}

type fileChangedMsg struct{}

type watchErrMsg struct {
	err error
}

// loadDeck reads and parses the document. The parser only ever sees a
// complete document; read failures are reported instead.
func loadDeck(path string, p *deck.Parser) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return errMsg{err}
		}
		return deckLoadedMsg{deck: p.Parse(string(data))}
	}
}

// startWatch watches the document's directory; editors often replace files
// rather than writing in place.
func startWatch(path string) tea.Cmd {
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return watchErrMsg{fmt.Errorf("create watcher: %w", err)}
		}
		if err := w.Add(filepath.Dir(path)); err != nil {
			w.Close()
			return watchErrMsg{fmt.Errorf("watch %s: %w", filepath.Dir(path), err)}
		}
		return watchStartedMsg{watcher: w}
	}
}

// waitForChange blocks until path is written or created, or the watcher is
// closed.
func waitForChange(w *fsnotify.Watcher, path string) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					return fileChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err}
			}
		}
	}
}
