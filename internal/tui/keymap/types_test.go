package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGetBindingNormalMode(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"j moves down", keyMsg('j'), CmdCursorDown},
		{"down arrow moves down", tea.KeyMsg{Type: tea.KeyDown}, CmdCursorDown},
		{"slash enters search", keyMsg('/'), CmdEnterSearch},
		{"n creates account", keyMsg('n'), CmdNewAccount},
		{"d deletes account", keyMsg('d'), CmdDeleteAccount},
		{"R resets all", keyMsg('R'), CmdResetAll},
		{"enter opens detail", tea.KeyMsg{Type: tea.KeyEnter}, CmdOpenDetail},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.GetBinding(tt.msg, ModeNormal)
			if !ok {
				t.Fatal("binding not found")
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBindingsAreModeScoped(t *testing.T) {
	km := DefaultKeymap()

	// 'y' only means approve inside the confirm prompt.
	if _, ok := km.GetBinding(keyMsg('y'), ModeNormal); ok {
		t.Error("'y' should not bind in normal mode")
	}
	got, ok := km.GetBinding(keyMsg('y'), ModeConfirm)
	if !ok || got != CmdConfirmApprove {
		t.Errorf("'y' in confirm mode = %q, %v", got, ok)
	}
}

func TestUnboundKey(t *testing.T) {
	km := DefaultKeymap()
	if _, ok := km.GetBinding(keyMsg('z'), ModeNormal); ok {
		t.Error("'z' should be unbound")
	}
}

func TestEveryModeHasBindings(t *testing.T) {
	km := DefaultKeymap()
	for _, mode := range []Mode{ModeNormal, ModeDetail, ModeSearch, ModeForm, ModeConfirm} {
		if len(km.GetModeBindings(mode)) == 0 {
			t.Errorf("mode %q has no bindings", mode)
		}
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		kb   KeyBinding
		want string
	}{
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'}, "j"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: ' '}, "space"},
		{KeyBinding{KeyType: tea.KeyEnter}, "enter"},
	}
	for _, tt := range tests {
		if got := tt.kb.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
