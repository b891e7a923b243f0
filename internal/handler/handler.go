package handler

import (
	"context"
	"sync"

	"menubot/internal/prompt"
	"menubot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	authService     *service.AuthService
	settingsService *service.SettingsService
	prompts         *prompt.Manager
	logger          *zap.Logger

	// scope namespaces settings and entitlements per bot identity
	scope string

	// ctx bounds background collection flows to the process lifetime
	ctx context.Context

	// Per-user locks serialize read-modify-write sequences
	userLockMux sync.Mutex
	userLocks   map[int64]*sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	authService *service.AuthService,
	settingsService *service.SettingsService,
	prompts *prompt.Manager,
	scope string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		authService:     authService,
		settingsService: settingsService,
		prompts:         prompts,
		logger:          logger,
		scope:           scope,
		ctx:             ctx,
		userLocks:       make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/menu", h.handleStart)

	// Text and media messages (prompt replies first)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnMedia, h.handleMedia)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// lockFor returns the per-user mutex, creating it on first use
func (h *Handler) lockFor(userID int64) *sync.Mutex {
	h.userLockMux.Lock()
	defer h.userLockMux.Unlock()

	lock, exists := h.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.userLocks[userID] = lock
	}
	return lock
}

// send delivers a message outside a handler context (background flows)
func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tele.ChatID(chatID), text, tele.ModeMarkdown); err != nil {
		h.logger.Warn("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}
