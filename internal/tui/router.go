package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/vpilot/internal/config"
	"github.com/muurk/vpilot/internal/remote"
)

// PageID names a page: StartPage or a group name
type PageID string

// StartPage is the group selection page
const StartPage PageID = "StartPage"

// StateReader is the read side of the device state store used for rendering
type StateReader interface {
	IsOn(key string) bool
	Controls(key string) remote.Controls
}

// Page is one screen of the panel. All pages share the same screen region;
// only the raised one is drawn.
type Page interface {
	ID() PageID
	HandleKey(msg tea.KeyMsg) (Command, bool)
	View(state StateReader) string
	KeyMap() help.KeyMap
}

// Router holds the fixed set of pages and which one is raised.
// Pages are registered once when the router is built.
type Router struct {
	pages   map[PageID]Page
	current PageID
}

// NewRouter builds the start page and one page per non-empty group, and
// raises the start page.
func NewRouter(cfg *config.Config) *Router {
	r := &Router{pages: make(map[PageID]Page)}

	groups := cfg.NavigableGroups()
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		r.pages[PageID(g.Name)] = NewGroupPanel(g)
		names = append(names, g.Name)
	}

	// Registered last so a group literally named "StartPage" can't shadow it
	r.pages[StartPage] = NewStartPanel(names)
	r.current = StartPage

	return r
}

// Show raises the page with the given id
func (r *Router) Show(id PageID) error {
	if _, ok := r.pages[id]; !ok {
		return fmt.Errorf("no page named %q", id)
	}
	r.current = id
	return nil
}

// Current returns the raised page
func (r *Router) Current() Page {
	return r.pages[r.current]
}

// CurrentID returns the id of the raised page
func (r *Router) CurrentID() PageID {
	return r.current
}

// Page returns the page with the given id
func (r *Router) Page(id PageID) (Page, bool) {
	p, ok := r.pages[id]
	return p, ok
}

// Len returns the number of registered pages
func (r *Router) Len() int {
	return len(r.pages)
}
