package assistant

import (
	"context"
	"log"
	"strings"
	"sync"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"

	"github.com/google/uuid"
)

type (
	AssistantService interface {
		SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (domain.SendMessageResponse, error)
		GetSession(ctx context.Context, sessionID string, userID string) (domain.ChatSessionResponse, error)
		ListSessions(ctx context.Context, userID string) ([]domain.ChatSessionSummary, error)
		ResetSession(ctx context.Context, sessionID string, userID string) error
	}

	assistantService struct {
		assistantRepository AssistantRepository
		matcher             Matcher
		delayer             Delayer

		mu       sync.Mutex
		sessions map[uuid.UUID]*session
	}
)

func NewAssistantService(assistantRepository AssistantRepository, matcher Matcher, delayer Delayer) AssistantService {
	return &assistantService{
		assistantRepository: assistantRepository,
		matcher:             matcher,
		delayer:             delayer,
		sessions:            make(map[uuid.UUID]*session),
	}
}

func (s *assistantService) SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (domain.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.SendMessageResponse{}, domain.ErrEmptyMessage
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SendMessageResponse{}, domain.ErrParseUUID
	}

	sess, err := s.obtainSession(ctx, req.SessionID, userUUID, text)
	if err != nil {
		return domain.SendMessageResponse{}, err
	}

	userMsg, replyCtx, err := sess.beginTurn(ctx, text)
	if err != nil {
		return domain.SendMessageResponse{}, err
	}

	if err := s.assistantRepository.SaveMessage(ctx, &entities.ChatMessage{
		ID:        userMsg.ID,
		SessionID: sess.id,
		Sender:    userMsg.Sender,
		Content:   userMsg.Text,
	}); err != nil {
		log.Printf("failed to persist chat message: %v", err)
	}

	// Reply text is computed from the text pending at submission time, after
	// the simulated typing delay. Reset cancels the delay through replyCtx.
	if err := s.delayer.Delay(replyCtx, ReplyDelay); err != nil {
		sess.abortTurn()
		return domain.SendMessageResponse{}, err
	}

	replyMsg := sess.completeTurn(s.matcher.Reply(text))

	if err := s.assistantRepository.SaveMessage(context.WithoutCancel(ctx), &entities.ChatMessage{
		ID:        replyMsg.ID,
		SessionID: sess.id,
		Sender:    replyMsg.Sender,
		Content:   replyMsg.Text,
	}); err != nil {
		log.Printf("failed to persist chat message: %v", err)
	}

	return domain.SendMessageResponse{
		SessionID: sess.id.String(),
		UserTurn:  toMessageResponse(userMsg),
		Reply:     toMessageResponse(replyMsg),
	}, nil
}

func (s *assistantService) GetSession(ctx context.Context, sessionID string, userID string) (domain.ChatSessionResponse, error) {
	sess, err := s.lookupSession(ctx, sessionID, userID)
	if err != nil {
		return domain.ChatSessionResponse{}, err
	}

	transcript := sess.transcript()
	messages := make([]domain.ChatMessageResponse, 0, len(transcript))
	for _, msg := range transcript {
		messages = append(messages, toMessageResponse(msg))
	}

	return domain.ChatSessionResponse{
		SessionID: sess.id.String(),
		Messages:  messages,
	}, nil
}

func (s *assistantService) ListSessions(ctx context.Context, userID string) ([]domain.ChatSessionSummary, error) {
	rows, err := s.assistantRepository.GetSessionsByUser(ctx, userID, 50)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ChatSessionSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.ChatSessionSummary{
			SessionID: row.ID.String(),
			Title:     row.Title,
			CreatedAt: row.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *assistantService) ResetSession(ctx context.Context, sessionID string, userID string) error {
	sess, err := s.lookupSession(ctx, sessionID, userID)
	if err != nil {
		return err
	}

	sess.reset()
	return s.assistantRepository.DeleteMessagesBySession(ctx, sessionID)
}

// obtainSession returns the in-memory session for an id, creating and
// persisting a new one when the request carries no id.
func (s *assistantService) obtainSession(ctx context.Context, sessionID string, userID uuid.UUID, firstText string) (*session, error) {
	if sessionID == "" {
		sess := newSession(uuid.New(), userID)

		title := firstText
		if len(title) > 60 {
			title = title[:60]
		}
		if err := s.assistantRepository.CreateSession(ctx, &entities.ChatSession{
			ID:     sess.id,
			UserID: userID,
			Title:  title,
		}); err != nil {
			log.Printf("failed to persist chat session: %v", err)
		}

		s.mu.Lock()
		s.sessions[sess.id] = sess
		s.mu.Unlock()
		return sess, nil
	}

	sess, err := s.lookupSession(ctx, sessionID, userID.String())
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// lookupSession finds a live session, rehydrating the transcript from the
// persisted rows when the process has restarted since the session began.
func (s *assistantService) lookupSession(ctx context.Context, sessionID string, userID string) (*session, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		if sess.userID.String() != userID {
			return nil, domain.ErrUserNotAllowed
		}
		return sess, nil
	}

	stored, err := s.assistantRepository.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrSessionMissing
	}
	if stored.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	sess = newSession(stored.ID, stored.UserID)
	rows, err := s.assistantRepository.GetMessagesBySession(ctx, sessionID)
	if err == nil {
		for _, row := range rows {
			sess.messages = append(sess.messages, Message{
				ID:        row.ID,
				Sender:    row.Sender,
				Text:      row.Content,
				CreatedAt: row.CreatedAt,
			})
		}
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess, nil
}

func toMessageResponse(msg Message) domain.ChatMessageResponse {
	return domain.ChatMessageResponse{
		ID:        msg.ID.String(),
		Sender:    msg.Sender,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}
