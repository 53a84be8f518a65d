package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"plaindeck/internal/config"
)

// keyMap holds the bindings the terminal host handles itself. Navigation keys
// are passed through to the viewer.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	CloseHelp key.Binding
	Previous  key.Binding
	Next      key.Binding
}

func newKeyMap(cfg config.KeysConfig) keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys(cfg.Quit...), key.WithHelp(join(cfg.Quit), "quit")),
		Help:      key.NewBinding(key.WithKeys(cfg.Help...), key.WithHelp(join(cfg.Help), "toggle help")),
		CloseHelp: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		Previous:  key.NewBinding(key.WithKeys(cfg.Previous...), key.WithHelp(join(cfg.Previous), "previous slide")),
		Next:      key.NewBinding(key.WithKeys(cfg.Next...), key.WithHelp(join(cfg.Next), "next slide")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Help, k.CloseHelp, k.Quit}
}

func join(keys []string) string {
	named := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		named[i] = k
	}
	return strings.Join(named, ", ")
}
