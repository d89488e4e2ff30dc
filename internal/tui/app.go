package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes messages between the pages of the auth flow. It owns
// global keys, page switches via [NavigateTo], the build info window and
// the final [LoginResult]; everything else goes to the current page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	identity   models.Identity

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.identity = msg.Identity
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleGlobalKey reports whether msg was consumed by the router. While the
// build info window is open every key is consumed.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case "v":
		if _, onMenu := r.current.(*MenuModel); onMenu {
			r.showBuildInfo = !r.showBuildInfo
			return true, nil
		}
	case "esc":
		if r.showBuildInfo {
			r.showBuildInfo = false
			return true, nil
		}
	}

	return r.showBuildInfo, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.current = next
	r.showBuildInfo = false

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("NOTE KEEPER", "", "")
	default:
		return r.current.View()
	}
}
