package domain

import "strings"

// EventKind tags the variant of a decoded button press
type EventKind int

const (
	EventUnknown EventKind = iota
	EventNavigate
	EventSetting
	EventCommand
)

// Payload namespaces used on the wire
const (
	prefixMenu    = "menu:"
	prefixSetting = "ps:"
	prefixCommand = "pc:"
)

// Event is a decoded interaction payload. Exactly one of Panel, Key
// or Command is meaningful, selected by Kind.
type Event struct {
	Kind    EventKind
	Panel   Panel
	Key     SettingKey
	Command string
}

// DecodeEvent decodes an opaque callback payload. Decoding is total:
// anything unrecognized comes back as EventUnknown, never an error.
func DecodeEvent(data string) Event {
	data = strings.TrimSpace(data)

	switch {
	case strings.HasPrefix(data, prefixMenu):
		name := strings.TrimPrefix(data, prefixMenu)
		panel, ok := ParsePanel(name)
		if !ok {
			return Event{Kind: EventUnknown}
		}
		return Event{Kind: EventNavigate, Panel: panel}

	case strings.HasPrefix(data, prefixSetting):
		key := strings.TrimPrefix(data, prefixSetting)
		if key == "" {
			return Event{Kind: EventUnknown}
		}
		return Event{Kind: EventSetting, Key: SettingKey(key)}

	case strings.HasPrefix(data, prefixCommand):
		cmd := strings.TrimPrefix(data, prefixCommand)
		if cmd == "" {
			return Event{Kind: EventUnknown}
		}
		return Event{Kind: EventCommand, Command: cmd}
	}

	return Event{Kind: EventUnknown}
}

// NavigatePayload builds the wire payload for a panel button
func NavigatePayload(p Panel) string {
	return prefixMenu + string(p)
}

// SettingPayload builds the wire payload for a setting button
func SettingPayload(k SettingKey) string {
	return prefixSetting + string(k)
}

// CommandPayload builds the wire payload for a command button
func CommandPayload(cmd string) string {
	return prefixCommand + cmd
}
