package handler

import (
	"strings"

	tele "gopkg.in/telebot.v3"
)

// handleText routes inbound text. A pending prompt for the chat
// consumes the message; everything else gets a short hint.
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID

	if h.prompts.Deliver(chatID, c.Text(), true) {
		return nil
	}

	// Ignore unregistered commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return nil
	}

	return c.Send("Use /menu to open the panel.")
}

// handleMedia resolves a pending prompt with "no value" when the user
// answers with something that carries no text
func (h *Handler) handleMedia(c tele.Context) error {
	h.prompts.Deliver(c.Chat().ID, "", false)
	return nil
}
