package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSendMessage  = "message processed successfully"
	MessageSuccessGetSession   = "chat session retrieved successfully"
	MessageSuccessResetSession = "chat session reset successfully"
	MessageSuccessListSessions = "chat sessions retrieved successfully"

	MessageFailedSendMessage  = "failed to process message"
	MessageFailedGetSession   = "failed to retrieve chat session"
	MessageFailedResetSession = "failed to reset chat session"
	MessageFailedListSessions = "failed to retrieve chat sessions"

	ErrEmptyMessage   = errors.New("message text is empty")
	ErrReplyPending   = errors.New("a reply is still pending for this session")
	ErrSessionClosed  = errors.New("chat session is closed")
	ErrSessionMissing = errors.New("chat session not found")
)

type (
	SendMessageRequest struct {
		SessionID string `json:"session_id" validate:"omitempty,uuid"`
		Text      string `json:"text" validate:"required"`
	}

	ChatMessageResponse struct {
		ID        string    `json:"id"`
		Sender    string    `json:"sender"` // "user" or "assistant"
		Text      string    `json:"text"`
		CreatedAt time.Time `json:"created_at"`
	}

	SendMessageResponse struct {
		SessionID string              `json:"session_id"`
		UserTurn  ChatMessageResponse `json:"user_turn"`
		Reply     ChatMessageResponse `json:"reply"`
	}

	ChatSessionResponse struct {
		SessionID string                `json:"session_id"`
		Messages  []ChatMessageResponse `json:"messages"`
	}

	ChatSessionSummary struct {
		SessionID string    `json:"session_id"`
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"created_at"`
	}
)
