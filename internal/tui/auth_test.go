package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── login ──

func TestLoginModel_RequiresFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Email and password are required", m.errMsg)
}

func TestLoginModel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewLoginModel(context.Background(), auth)

	gomock.InOrder(
		auth.EXPECT().Login(gomock.Any(), "ann@example.com", "password1").Return(models.Session{}, nil),
		auth.EXPECT().Authenticated(gomock.Any()).Return(testIdentity, nil),
	)

	m.inputs[0].SetValue("  ann@example.com ")
	m.inputs[1].SetValue("password1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, testIdentity, result.Identity)
}

func TestLoginModel_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewLoginModel(context.Background(), auth)

	auth.EXPECT().Login(gomock.Any(), "ann@example.com", "wrong").
		Return(models.Session{}, adapter.NewRemoteError(401, models.ErrorTypeUserInvalidCredentials, "Invalid credentials"))

	m.inputs[0].SetValue("ann@example.com")
	m.inputs[1].SetValue("wrong")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, _ = m.Update(cmd())

	assert.False(t, m.submitting)
	assert.Equal(t, app.UserMsgInvalidCredentials, m.errMsg)
}

func TestLoginModel_FocusCycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestLoginModel_SwitchesToRegisterTab(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())
}

// ── register ──

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(ctrl))

	m.inputs[1].SetValue("ann@example.com")
	m.inputs[2].SetValue("password1")
	m.inputs[3].SetValue("password2")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Passwords do not match", m.errMsg)
}

func TestRegisterModel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewRegisterModel(context.Background(), auth)

	gomock.InOrder(
		auth.EXPECT().Register(gomock.Any(), "ann@example.com", "password1", "Ann").Return(models.Session{}, nil),
		auth.EXPECT().Authenticated(gomock.Any()).Return(testIdentity, nil),
	)

	m.inputs[0].SetValue("Ann")
	m.inputs[1].SetValue("ann@example.com")
	m.inputs[2].SetValue("password1")
	m.inputs[3].SetValue("password1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, testIdentity, result.Identity)
}

func TestRegisterModel_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewRegisterModel(context.Background(), auth)

	auth.EXPECT().Register(gomock.Any(), "ann@example.com", "password1", "").
		Return(models.Session{}, adapter.NewRemoteError(409, models.ErrorTypeUserAlreadyExists, "exists"))

	m.inputs[1].SetValue("ann@example.com")
	m.inputs[2].SetValue("password1")
	m.inputs[3].SetValue("password1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())

	assert.Equal(t, app.UserMsgUserAlreadyExists, m.errMsg)
	assert.Equal(t, "ann@example.com", m.inputs[1].Value())
}

// ── root ──

func newTestRootModel(t *testing.T, ctrl *gomock.Controller) RootModel {
	t.Helper()

	auth := mock.NewMockClientAuthService(ctrl)
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(context.Background(), auth),
		pageRegister: NewRegisterModel(context.Background(), auth),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
}

func TestRootModel_LoginResultQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRootModel(t, ctrl)

	next, cmd := r.Update(LoginResult{Identity: testIdentity})
	root := next.(RootModel)

	assert.Equal(t, testIdentity, root.identity)
	assert.False(t, root.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_CtrlCQuitsByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRootModel(t, ctrl)

	next, cmd := r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, next.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRootModel(t, ctrl)

	next, cmd := r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	next, _ = next.Update(cmd())
	root := next.(RootModel)
	_, isLogin := root.current.(*LoginModel)
	assert.True(t, isLogin)
	assert.Contains(t, root.View(), "LOG IN")

	next, _ = root.Update(NavigateTo{Page: "missing"})
	_, isLogin = next.(RootModel).current.(*LoginModel)
	assert.True(t, isLogin)
}

func TestRootModel_BuildInfoOnMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRootModel(t, ctrl)

	next, _ := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	view := next.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, next.View(), "NOTE KEEPER")
}

// ── TUI ──

func newTestTUI(t *testing.T, run func(tea.Model) (tea.Model, error)) *TUI {
	t.Helper()

	ctrl := gomock.NewController(t)
	tui, err := New(&service.ClientServices{
		AuthService: mock.NewMockClientAuthService(ctrl),
		NoteService: mock.NewMockClientNoteService(ctrl),
	}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	tui.run = run
	return tui
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestTUI_LoginFlow(t *testing.T) {
	tui := newTestTUI(t, func(model tea.Model) (tea.Model, error) {
		next, _ := model.Update(LoginResult{Identity: testIdentity})
		return next, nil
	})

	identity, err := tui.LoginFlow(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)
}

func TestTUI_LoginFlowQuit(t *testing.T) {
	tui := newTestTUI(t, func(model tea.Model) (tea.Model, error) {
		next, _ := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		return next, nil
	})

	_, err := tui.LoginFlow(context.Background())

	assert.ErrorIs(t, err, ErrUserQuit)
}

func TestTUI_MainLoopLogout(t *testing.T) {
	tui := newTestTUI(t, func(model tea.Model) (tea.Model, error) {
		next, _ := model.Update(loggedOutMsg{})
		return next, nil
	})

	logout, err := tui.MainLoop(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.True(t, logout)
}

func TestTUI_MainLoopQuit(t *testing.T) {
	tui := newTestTUI(t, func(model tea.Model) (tea.Model, error) {
		next, _ := model.Update(runeKey("q"))
		return next, nil
	})

	logout, err := tui.MainLoop(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.False(t, logout)
}
