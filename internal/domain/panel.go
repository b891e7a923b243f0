package domain

// Panel identifies a menu screen (caption + button layout)
type Panel string

const (
	PanelMain     Panel = "main"
	PanelSettings Panel = "premium_settings"
	PanelCommands Panel = "premium_commands"
)

// ParsePanel maps a payload suffix to a known panel
func ParsePanel(s string) (Panel, bool) {
	switch Panel(s) {
	case PanelMain, PanelSettings, PanelCommands:
		return Panel(s), true
	}
	return "", false
}
