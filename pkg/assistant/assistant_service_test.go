package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu       sync.Mutex
	sessions []*entities.ChatSession
	messages []*entities.ChatMessage
}

func (r *memoryRepository) CreateSession(_ context.Context, session *entities.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *memoryRepository) GetSessionByID(_ context.Context, id string) (*entities.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.ID.String() == id {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *memoryRepository) GetSessionsByUser(_ context.Context, userID string, limit int) ([]*entities.ChatSession, error) {
	return nil, nil
}

func (r *memoryRepository) SaveMessage(_ context.Context, message *entities.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

func (r *memoryRepository) GetMessagesBySession(_ context.Context, sessionID string) ([]*entities.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.ChatMessage
	for _, m := range r.messages {
		if m.SessionID.String() == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryRepository) DeleteMessagesBySession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*entities.ChatMessage
	for _, m := range r.messages {
		if m.SessionID.String() != sessionID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

func (r *memoryRepository) firstSessionID(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sessions) == 0 {
		t.Fatal("no session persisted")
	}
	return r.sessions[0].ID.String()
}

// virtualDelayer records the requested duration and returns immediately.
type virtualDelayer struct {
	mu   sync.Mutex
	last time.Duration
}

func (d *virtualDelayer) Delay(ctx context.Context, dur time.Duration) error {
	d.mu.Lock()
	d.last = dur
	d.mu.Unlock()
	return ctx.Err()
}

// hookDelayer signals entry and then blocks until released or cancelled.
type hookDelayer struct {
	entered chan struct{}
	release chan struct{}
}

func (d *hookDelayer) Delay(ctx context.Context, _ time.Duration) error {
	d.entered <- struct{}{}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.release:
		return nil
	}
}

func TestSendMessage_AppendsUserTurnAndReply(t *testing.T) {
	repo := &memoryRepository{}
	delayer := &virtualDelayer{}
	svc := NewAssistantService(repo, NewMatcher(nil), delayer)
	userID := uuid.New().String()

	res, err := svc.SendMessage(context.Background(), domain.SendMessageRequest{Text: "how do I water basil?"}, userID)
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if res.UserTurn.Sender != "user" || res.Reply.Sender != "assistant" {
		t.Errorf("unexpected senders: %q / %q", res.UserTurn.Sender, res.Reply.Sender)
	}
	if delayer.last != ReplyDelay {
		t.Errorf("expected delay %v, got %v", ReplyDelay, delayer.last)
	}

	found := false
	for _, reply := range repliesFor(t, "watering") {
		if res.Reply.Text == reply {
			found = true
		}
	}
	if !found {
		t.Errorf("reply %q not in watering bucket", res.Reply.Text)
	}

	if len(repo.messages) != 2 {
		t.Errorf("expected 2 persisted messages, got %d", len(repo.messages))
	}
}

func TestSendMessage_EmptyTextRejected(t *testing.T) {
	svc := NewAssistantService(&memoryRepository{}, NewMatcher(nil), &virtualDelayer{})

	_, err := svc.SendMessage(context.Background(), domain.SendMessageRequest{Text: "   "}, uuid.New().String())
	if !errors.Is(err, domain.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSendMessage_SecondSubmissionRejectedWhilePending(t *testing.T) {
	repo := &memoryRepository{}
	delayer := &hookDelayer{entered: make(chan struct{}), release: make(chan struct{})}
	svc := NewAssistantService(repo, NewMatcher(nil), delayer)
	userID := uuid.New().String()

	done := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(context.Background(), domain.SendMessageRequest{Text: "hello"}, userID)
		done <- err
	}()

	<-delayer.entered
	sessionID := repo.firstSessionID(t)

	_, err := svc.SendMessage(context.Background(), domain.SendMessageRequest{SessionID: sessionID, Text: "are you there?"}, userID)
	if !errors.Is(err, domain.ErrReplyPending) {
		t.Fatalf("expected ErrReplyPending, got %v", err)
	}

	close(delayer.release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
}

func TestResetSession_CancelsPendingReply(t *testing.T) {
	repo := &memoryRepository{}
	delayer := &hookDelayer{entered: make(chan struct{}), release: make(chan struct{})}
	svc := NewAssistantService(repo, NewMatcher(nil), delayer)
	userID := uuid.New().String()

	done := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(context.Background(), domain.SendMessageRequest{Text: "hello"}, userID)
		done <- err
	}()

	<-delayer.entered
	sessionID := repo.firstSessionID(t)

	if err := svc.ResetSession(context.Background(), sessionID, userID); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from pending submission, got %v", err)
	}

	res, err := svc.GetSession(context.Background(), sessionID, userID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if len(res.Messages) != 0 {
		t.Errorf("expected empty transcript after reset, got %d messages", len(res.Messages))
	}
}

func TestGetSession_OtherUserRejected(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewAssistantService(repo, NewMatcher(nil), &virtualDelayer{})
	owner := uuid.New().String()

	res, err := svc.SendMessage(context.Background(), domain.SendMessageRequest{Text: "hi"}, owner)
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	_, err = svc.GetSession(context.Background(), res.SessionID, uuid.New().String())
	if !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("expected ErrUserNotAllowed, got %v", err)
	}
}
