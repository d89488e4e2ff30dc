package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the auth flow: on success [RootModel] keeps Identity
// and quits.
type LoginResult struct {
	Identity models.Identity
	Err      error
}

type notesLoadedMsg struct {
	items []models.Note
	err   error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

type noteUpdatedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type loggedOutMsg struct {
	err error
}

type clearStatusMsg struct{}
