package assistant

import (
	"context"
	"sync"
	"time"

	"Gardener-Assistant-Backend/domain"

	"github.com/google/uuid"
)

// ReplyDelay is the simulated "assistant is typing" latency before a reply
// is appended to the transcript.
const ReplyDelay = 1500 * time.Millisecond

type (
	// Delayer abstracts the typing delay so tests can run on virtual time.
	Delayer interface {
		Delay(ctx context.Context, d time.Duration) error
	}

	realDelayer struct{}

	Message struct {
		ID        uuid.UUID
		Sender    string // "user" or "assistant"
		Text      string
		CreatedAt time.Time
	}

	// session is the in-memory transcript of one conversation. Messages are
	// append-only; awaiting gates out a second submission while a reply is
	// pending.
	session struct {
		mu       sync.Mutex
		id       uuid.UUID
		userID   uuid.UUID
		messages []Message
		awaiting bool
		closed   bool
		cancel   context.CancelFunc
	}
)

func NewRealDelayer() Delayer {
	return realDelayer{}
}

func (realDelayer) Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func newSession(id, userID uuid.UUID) *session {
	return &session{id: id, userID: userID}
}

// beginTurn appends the user message and arms the reply gate. The returned
// context is cancelled if the session is reset while the reply is pending.
func (s *session) beginTurn(ctx context.Context, text string) (Message, context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Message{}, nil, domain.ErrSessionClosed
	}
	if s.awaiting {
		return Message{}, nil, domain.ErrReplyPending
	}

	msg := Message{
		ID:        uuid.New(),
		Sender:    "user",
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)
	s.awaiting = true

	replyCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return msg, replyCtx, nil
}

// completeTurn appends the assistant reply and releases the gate.
func (s *session) completeTurn(text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        uuid.New(),
		Sender:    "assistant",
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)
	s.awaiting = false
	s.cancel = nil
	return msg
}

// abortTurn releases the gate without a reply, after a cancelled or failed
// delay. The user message stays in the transcript.
func (s *session) abortTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting = false
	s.cancel = nil
}

// reset cancels any pending reply and clears the transcript.
func (s *session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.messages = nil
	s.awaiting = false
}

func (s *session) transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
