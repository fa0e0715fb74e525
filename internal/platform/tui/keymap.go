package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/artgrid/internal/core"
)

// KeyMap defines the key bindings for the live viewer.
type KeyMap struct {
	Play           key.Binding
	Reset          key.Binding
	NewSeed        key.Binding
	Surprise       key.Binding
	Designer       key.Binding
	Palette        key.Binding
	ComplexityDown key.Binding
	ComplexityUp   key.Binding
	SpeedDown      key.Binding
	SpeedUp        key.Binding
	GridShrink     key.Binding
	GridGrow       key.Binding
	Regenerate     key.Binding
	ResetDefaults  key.Binding
	Export         key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.NewSeed, k.Surprise, k.Palette, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Reset, k.SpeedDown, k.SpeedUp},
		{k.NewSeed, k.Surprise, k.Regenerate, k.ResetDefaults, k.Designer},
		{k.Palette, k.ComplexityDown, k.ComplexityUp, k.GridShrink, k.GridGrow},
		{k.Export, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "play/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset clock"),
		),
		NewSeed: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new seed"),
		),
		Surprise: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "surprise me"),
		),
		Designer: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "designer mode"),
		),
		Palette: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "palette"),
		),
		ComplexityDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "less complex"),
		),
		ComplexityUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more complex"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		GridShrink: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "smaller grid"),
		),
		GridGrow: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "larger grid"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "regenerate"),
		),
		ResetDefaults: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset settings"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "export card"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a viewer action. The help toggle
// is a pure view concern and maps to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Play):
		return core.ActionTogglePlay
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.NewSeed):
		return core.ActionNewSeed
	case key.Matches(msg, k.Surprise):
		return core.ActionSurprise
	case key.Matches(msg, k.Designer):
		return core.ActionDesigner
	case key.Matches(msg, k.Palette):
		return core.ActionNextPalette
	case key.Matches(msg, k.ComplexityDown):
		return core.ActionComplexityDown
	case key.Matches(msg, k.ComplexityUp):
		return core.ActionComplexityUp
	case key.Matches(msg, k.SpeedDown):
		return core.ActionSpeedDown
	case key.Matches(msg, k.SpeedUp):
		return core.ActionSpeedUp
	case key.Matches(msg, k.GridShrink):
		return core.ActionGridShrink
	case key.Matches(msg, k.GridGrow):
		return core.ActionGridGrow
	case key.Matches(msg, k.Regenerate):
		return core.ActionRegenerate
	case key.Matches(msg, k.ResetDefaults):
		return core.ActionResetDefaults
	case key.Matches(msg, k.Export):
		return core.ActionExport
	}
	return core.ActionNone
}
