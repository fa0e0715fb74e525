// Package core holds the viewer state shared by the terminal and desktop
// front ends. It has no Bubble Tea or ebiten dependency so the behaviour of
// every key is testable without a terminal or a window.
package core

// Action is a semantic viewer command, abstracted from physical keys.
type Action int

const (
	ActionNone           Action = iota
	ActionTogglePlay            // space - play/pause the animation clock
	ActionReset                 // r - rewind the clock to zero
	ActionNewSeed               // n - fresh seed, same settings
	ActionSurprise              // g - randomise every setting
	ActionDesigner              // d - toggle designer mode
	ActionNextPalette           // p - cycle palettes
	ActionComplexityDown        // [
	ActionComplexityUp          // ]
	ActionSpeedDown             // -
	ActionSpeedUp               // +
	ActionGridShrink            // {
	ActionGridGrow              // }
	ActionRegenerate            // ctrl+r - rebuild the batch with a fresh seed
	ActionResetDefaults         // R - default settings and a fresh seed
	ActionExport                // ctrl+s - handled by the front end
	ActionQuit                  // q, ctrl+c
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTogglePlay:
		return "TogglePlay"
	case ActionReset:
		return "Reset"
	case ActionNewSeed:
		return "NewSeed"
	case ActionSurprise:
		return "Surprise"
	case ActionDesigner:
		return "Designer"
	case ActionNextPalette:
		return "NextPalette"
	case ActionComplexityDown:
		return "ComplexityDown"
	case ActionComplexityUp:
		return "ComplexityUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionGridShrink:
		return "GridShrink"
	case ActionGridGrow:
		return "GridGrow"
	case ActionRegenerate:
		return "Regenerate"
	case ActionResetDefaults:
		return "ResetDefaults"
	case ActionExport:
		return "Export"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
