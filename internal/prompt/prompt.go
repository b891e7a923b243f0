// Package prompt implements the one-shot text collection exchange:
// send a prompt into a chat, wait for exactly one reply (or a
// cancellation), and clean the prompt message up afterwards. At most
// one collection may be outstanding per chat.
package prompt

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ErrPromptPending is returned when a collection is started for a chat
// that already has one outstanding.
var ErrPromptPending = errors.New("prompt already pending for this chat")

// Messenger is the slice of the bot API the manager needs.
// *tele.Bot satisfies it.
type Messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Delete(msg tele.Editable) error
}

type reply struct {
	text    string
	hasText bool
}

type session struct {
	replyCh chan reply
}

// Manager tracks outstanding prompt sessions per chat
type Manager struct {
	messenger Messenger
	timeout   time.Duration // 0 means wait forever
	logger    *zap.Logger

	mu      sync.Mutex
	pending map[int64]*session
}

// NewManager creates a prompt manager. A zero timeout disables the
// reply deadline.
func NewManager(messenger Messenger, timeout time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		messenger: messenger,
		timeout:   timeout,
		logger:    logger,
		pending:   make(map[int64]*session),
	}
}

// Collect sends promptText into the chat and waits for the next
// inbound message routed via Deliver. It returns the trimmed reply and
// true, or "" and false when the user cancelled, sent a non-text
// message, the timeout expired or ctx was cancelled. The only error
// returned is a failure to deliver the prompt itself; everything after
// that resolves as a normal outcome. The prompt message is deleted
// best-effort on the way out.
func (m *Manager) Collect(ctx context.Context, chatID int64, promptText string) (string, bool, error) {
	s := &session{replyCh: make(chan reply, 1)}

	m.mu.Lock()
	if _, exists := m.pending[chatID]; exists {
		m.mu.Unlock()
		return "", false, ErrPromptPending
	}
	m.pending[chatID] = s
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		// Deliver may already have unregistered this session; only
		// remove it if it is still ours
		if m.pending[chatID] == s {
			delete(m.pending, chatID)
		}
		m.mu.Unlock()
	}()

	msg, err := m.messenger.Send(tele.ChatID(chatID), promptText, tele.ModeMarkdown)
	if err != nil {
		return "", false, err
	}

	defer func() {
		if delErr := m.messenger.Delete(msg); delErr != nil {
			m.logger.Debug("Failed to delete prompt message",
				zap.Error(delErr),
				zap.Int64("chat_id", chatID),
			)
		}
	}()

	var timeoutCh <-chan time.Time
	if m.timeout > 0 {
		timer := time.NewTimer(m.timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case r := <-s.replyCh:
		if !r.hasText {
			return "", false, nil
		}
		text := strings.TrimSpace(r.text)
		if isCancel(text) {
			return "", false, nil
		}
		return text, true, nil

	case <-timeoutCh:
		m.logger.Info("Prompt timed out",
			zap.Int64("chat_id", chatID),
			zap.Duration("timeout", m.timeout),
		)
		return "", false, nil

	case <-ctx.Done():
		return "", false, nil
	}
}

// Deliver routes one inbound message to the chat's waiting session.
// It never blocks and reports whether the message was consumed; an
// unconsumed message should fall through to normal handling.
func (m *Manager) Deliver(chatID int64, text string, hasText bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.pending[chatID]
	if s == nil {
		return false
	}

	select {
	case s.replyCh <- reply{text: text, hasText: hasText}:
		// The session has its one reply; unregister it so no further
		// message can be swallowed
		delete(m.pending, chatID)
		return true
	default:
		return false
	}
}

// Pending reports whether a collection is outstanding for the chat
func (m *Manager) Pending(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[chatID]
	return ok
}

// isCancel matches the cancellation sentinels case-insensitively
func isCancel(text string) bool {
	switch strings.ToLower(text) {
	case "/cancel", "cancel":
		return true
	}
	return false
}
