// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type notesMode int

const (
	modeList notesMode = iota
	modeEdit
	modeConfirmDelete
)

const (
	statusTTL       = 3 * time.Second
	titleColWidth   = models.TitleMaxRunes + len(models.TitleEllipsis)
	previewLines    = 6
	updatedAtLayout = "2006-01-02 15:04"
	editorCharLimit = 0
	editorWidth     = 72
	editorHeight    = 12
	emptyListHint   = "No notes yet. Press n to write one."
)

// notesModel is the main screen of a logged-in user. It keeps the local list
// of notes: the list is reloaded after a create, the edited note is replaced
// in place after an update and the deleted note is filtered out after a
// delete. A failed call leaves the list untouched and shows an error overlay.
type notesModel struct {
	ctx      context.Context
	notes    service.ClientNoteService
	auth     service.ClientAuthService
	identity models.Identity

	items   []models.Note
	idx     int
	loading bool
	busy    bool
	mode    notesMode

	editor    textarea.Model
	editingID string

	status string
	errMsg string
	logout bool

	copyToClipboard func(string) error
}

func newNotesModel(ctx context.Context, services *service.ClientServices, identity models.Identity) notesModel {
	return notesModel{
		ctx:             ctx,
		notes:           services.NoteService,
		auth:            services.AuthService,
		identity:        identity,
		loading:         true,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m notesModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.items = msg.items
		m.clampCursor()
		return m, nil
	case noteCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.closeEditor()
		m.idx = 0
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.setStatus("Note created"))
	case noteUpdatedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.closeEditor()
		m.replaceItem(msg.note)
		return m, m.setStatus("Note saved")
	case noteDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.removeItem(msg.id)
		return m, m.setStatus("Note deleted")
	case loggedOutMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeEdit {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errMsg != "" {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	switch m.mode {
	case modeEdit:
		return m.updateEditor(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirm(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m notesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		return m, m.openEditor("", "")
	case key.Matches(msg, keys.edit, keys.enter):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.openEditor(note.ID, note.Content)
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.copyToClipboard(note.Content); err != nil {
			m.errMsg = fmt.Sprintf("Could not copy the note: %v", err)
			return m, nil
		}
		return m, m.setStatus("Copied to clipboard")
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.logout):
		m.busy = true
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m notesModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.closeEditor()
		return m, nil
	case key.Matches(msg, keys.save):
		content := m.editor.Value()
		if strings.TrimSpace(content) == "" {
			m.errMsg = "The note is empty"
			return m, nil
		}

		m.busy = true
		if m.editingID == "" {
			return m, m.cmdCreate(content)
		}
		return m, m.cmdUpdate(m.editingID, content)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m notesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		note, ok := m.current()
		m.mode = modeList
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(note.ID)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m notesModel) View() string {
	var page string
	switch m.mode {
	case modeEdit:
		page = m.viewEditor()
	default:
		page = m.viewList()
	}

	switch {
	case m.errMsg != "":
		return renderWithOverlay(page, renderErrorOverlay(m.errMsg))
	case m.mode == modeConfirmDelete:
		note, _ := m.current()
		return renderWithOverlay(page, confirmModel{title: note.Title()}.View())
	}
	return page
}

func (m notesModel) viewList() string {
	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(m.identityLabel())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading notes...\n")
	case len(m.items) == 0:
		b.WriteString(emptyListHint)
		b.WriteString("\n")
	default:
		b.WriteString(fmt.Sprintf("  %-4s│ %-*s │ %s\n", "#", titleColWidth, "Title", "Updated"))
		b.WriteString(strings.Repeat("─", 6))
		b.WriteString("┼")
		b.WriteString(strings.Repeat("─", titleColWidth+2))
		b.WriteString("┼")
		b.WriteString(strings.Repeat("─", len(updatedAtLayout)+1))
		b.WriteString("\n")

		for i, note := range m.items {
			title := strings.Join(strings.Fields(note.Title()), " ")
			if title == "" {
				title = "(untitled)"
			}
			row := fmt.Sprintf("%-4d│ %-*s │ %s",
				i+1,
				titleColWidth,
				fitText(title, titleColWidth),
				note.UpdatedAt.Local().Format(updatedAtLayout),
			)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}

		if note, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(firstLines(note.Content, previewLines)))
			b.WriteString("\n")
		}
	}

	return renderPage(
		"NOTES",
		strings.TrimRight(b.String(), "\n"),
		"n: new │ enter/e: edit │ d: delete │ c: copy │ r: refresh │ l: log out │ q: quit",
	)
}

func (m notesModel) viewEditor() string {
	var b strings.Builder
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString("\n[Saving...]\n")
	}

	title := "NEW NOTE"
	if m.editingID != "" {
		title = "EDIT NOTE"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ esc: cancel")
}

func (m notesModel) identityLabel() string {
	switch {
	case m.identity.Name != "" && m.identity.Email != "":
		return m.identity.Name + " <" + m.identity.Email + ">"
	case m.identity.Email != "":
		return m.identity.Email
	}
	return m.identity.Name
}

func (m notesModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m *notesModel) openEditor(id, content string) tea.Cmd {
	editor := textarea.New()
	editor.Placeholder = "Write your note..."
	editor.CharLimit = editorCharLimit
	editor.SetWidth(editorWidth)
	editor.SetHeight(editorHeight)
	editor.SetValue(content)

	m.editor = editor
	m.editingID = id
	m.mode = modeEdit
	return m.editor.Focus()
}

func (m *notesModel) closeEditor() {
	m.editor.Blur()
	m.editingID = ""
	m.mode = modeList
}

func (m *notesModel) replaceItem(note models.Note) {
	for i := range m.items {
		if m.items[i].ID == note.ID {
			m.items[i] = note
			return
		}
	}
}

func (m *notesModel) removeItem(id string) {
	kept := m.items[:0:0]
	for _, note := range m.items {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	m.items = kept
	m.clampCursor()
}

func (m *notesModel) clampCursor() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *notesModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m notesModel) cmdLoad() tea.Cmd {
	ctx, svc, identity := m.ctx, m.notes, m.identity

	return func() tea.Msg {
		items, err := svc.List(ctx, identity)
		return notesLoadedMsg{items: items, err: err}
	}
}

func (m notesModel) cmdCreate(content string) tea.Cmd {
	ctx, svc, identity := m.ctx, m.notes, m.identity

	return func() tea.Msg {
		note, err := svc.Create(ctx, identity, content)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m notesModel) cmdUpdate(id, content string) tea.Cmd {
	ctx, svc, identity := m.ctx, m.notes, m.identity

	return func() tea.Msg {
		note, err := svc.Update(ctx, identity, id, content)
		return noteUpdatedMsg{note: note, err: err}
	}
}

func (m notesModel) cmdDelete(id string) tea.Cmd {
	ctx, svc, identity := m.ctx, m.notes, m.identity

	return func() tea.Msg {
		err := svc.Delete(ctx, identity, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

func (m notesModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}
