package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"menubot/internal/domain"
	"menubot/internal/prompt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const rejectionNotice = "❌ Premium required"

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// isNotModified detects the Telegram error for editing a message into
// the exact content it already has. Navigating to the displayed panel
// hits this; it counts as a successful render.
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters; fall back to the
	// Unique field when the library consumed the data into it
	data := cleanCallbackData(callback.Data)
	if data == "" {
		data = cleanCallbackData(callback.Unique)
	}

	userID := c.Sender().ID
	event := domain.DecodeEvent(data)

	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.Int64("user_id", userID),
	)

	// Authorization is evaluated fresh on every interaction
	if !h.authService.IsAuthorized(userID, h.scope) {
		return c.Respond(&tele.CallbackResponse{
			Text:      rejectionNotice,
			ShowAlert: true,
		})
	}

	switch event.Kind {
	case domain.EventNavigate:
		return h.handleNavigate(c, event.Panel)
	case domain.EventSetting:
		return h.handleSetting(c, event.Key)
	case domain.EventCommand:
		return h.handleCommand(c, event.Command)
	}

	// Unrecognized payload: acknowledge so the button never spins
	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.Int64("user_id", userID),
	)
	return c.Respond()
}

// handleNavigate re-renders the chat's menu message to the target
// panel. Caption edit is tried first (media messages), body edit is
// the fallback for plain text messages.
func (h *Handler) handleNavigate(c tele.Context, panel domain.Panel) error {
	userID := c.Sender().ID
	caption := panelCaption(panel)
	markup := panelMarkup(panel)

	err := c.EditCaption(caption, markup, tele.ModeMarkdown)
	if err == nil || isNotModified(err) {
		return c.Respond()
	}

	err = c.Edit(caption, markup, tele.ModeMarkdown)
	if err == nil || isNotModified(err) {
		return c.Respond()
	}

	h.logger.Warn("Failed to edit menu message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("panel", string(panel)),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return c.Send(caption, markup, tele.ModeMarkdown)
}

// handleSetting routes a settings-panel action by key kind
func (h *Handler) handleSetting(c tele.Context, key domain.SettingKey) error {
	userID := c.Sender().ID
	chatID := c.Chat().ID

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	switch key.Kind() {
	case domain.KindText:
		// Collection suspends waiting for the reply, so it runs as
		// its own task and must not block the update loop
		go h.collectSetting(chatID, userID, key)
		return nil

	case domain.KindToggle:
		lock := h.lockFor(userID)
		lock.Lock()
		defer lock.Unlock()

		enabled, err := h.settingsService.Toggle(userID, h.scope, key)
		if err != nil {
			h.logger.Error("Failed to toggle setting",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.String("key", string(key)),
			)
			return c.Send(saveFailedNotice)
		}
		return c.Send(toggleNotice(enabled), tele.ModeMarkdown)

	case domain.KindMedia:
		// Thumbnail uploads are wired to the media pipeline, not here
		return c.Send(mediaNotice)
	}

	// Explicit default: unknown keys still get a visible acknowledgment
	return c.Send(fmt.Sprintf("✅ Clicked: `%s`", key), tele.ModeMarkdown)
}

// handleCommand emits a dispatch notice for an external tool. The
// controller never runs the tool itself.
func (h *Handler) handleCommand(c tele.Context, cmd string) error {
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(dispatchNotice(cmd), tele.ModeMarkdown)
}

// collectSetting runs the prompt exchange for a free-text key and
// persists the collected value
func (h *Handler) collectSetting(chatID, userID int64, key domain.SettingKey) {
	value, ok, err := h.prompts.Collect(h.ctx, chatID, promptMessage(key))
	if err != nil {
		if errors.Is(err, prompt.ErrPromptPending) {
			h.send(chatID, pendingNotice)
			return
		}
		h.logger.Error("Failed to send prompt",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("key", string(key)),
		)
		return
	}

	if !ok {
		h.send(chatID, cancelNotice)
		return
	}

	if err := h.settingsService.Set(userID, h.scope, key.StorageKey(), value); err != nil {
		h.logger.Error("Failed to save setting",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("key", string(key.StorageKey())),
		)
		h.send(chatID, saveFailedNotice)
		return
	}

	h.logger.Info("Setting saved",
		zap.Int64("user_id", userID),
		zap.String("key", string(key.StorageKey())),
	)
	h.send(chatID, savedNotice(key, value))
}

// User-facing notices
const (
	cancelNotice     = "❌ Cancelled."
	pendingNotice    = "⌛ Answer the current prompt or send /cancel first."
	saveFailedNotice = "⚠️ Could not save the setting. Try again later."
	mediaNotice      = "📌 Send a photo to set thumbnail."
)

// commandDispatch maps tool ids to the slash commands that launch them
var commandDispatch = map[string]string{
	"t2t":            "/t2t",
	"html_formatter": "/t2h",
}

// dispatchNotice names the external tool a command button launches
func dispatchNotice(cmd string) string {
	if slash, ok := commandDispatch[cmd]; ok {
		return "✅ Use command: " + slash
	}
	return fmt.Sprintf("✅ Tool selected: `%s`", cmd)
}

// promptMessage builds the prompt text for a free-text key
func promptMessage(key domain.SettingKey) string {
	if key == domain.KeySetToken {
		return "🔑 Send token (Type /cancel to stop)"
	}
	return fmt.Sprintf("Send value for *%s*\n\nType /cancel to stop.", key)
}

// savedNotice confirms a stored value, echoing key and value
func savedNotice(key domain.SettingKey, value string) string {
	if key == domain.KeySetToken {
		return "✅ Token saved!"
	}
	return fmt.Sprintf("✅ Saved *%s* = `%s`", key, value)
}

// toggleNotice states the new ON/OFF state of the hyperlinks toggle
func toggleNotice(enabled bool) string {
	state := "OFF"
	if enabled {
		state = "ON"
	}
	return fmt.Sprintf("✅ PDF Hyperlinks: *%s*", state)
}
