package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Tab is one of the three screens.
type Tab int

const (
	TabHome Tab = iota
	TabTechniques
	TabSettings
)

var tabNames = []string{"Breathe", "Techniques", "Settings"}

func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "?"
}

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Tabs        []Tab // empty applies everywhere
	Priority    int
}

func (b KeyBinding) AppliesToTab(tab Tab) bool {
	if len(b.Tabs) == 0 {
		return true
	}
	for _, t := range b.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToTab(m.tab) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForTab(tab Tab) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToTab(tab) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForTab renders the footer hint line, tab-specific bindings first.
func (r *HandlerRegistry) HelpForTab(tab Tab) string {
	bindings := r.GetBindingsForTab(tab)
	sort.SliceStable(bindings, func(i, j int) bool {
		return len(bindings[i].Tabs) > 0 && len(bindings[j].Tabs) == 0
	})
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		if seen[b.Keys[0]] {
			continue
		}
		seen[b.Keys[0]] = true
		key := b.Keys[0]
		if key == " " {
			key = "space"
		}
		parts = append(parts, "["+key+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}
