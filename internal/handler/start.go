package handler

import (
	"menubot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /menu: renders the main panel as a
// fresh message
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if !h.authService.IsAuthorized(userID, h.scope) {
		return c.Send(rejectionNotice)
	}

	return c.Send(
		panelCaption(domain.PanelMain),
		panelMarkup(domain.PanelMain),
		tele.ModeMarkdown,
	)
}
