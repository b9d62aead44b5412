// 채팅 대화(transcript) 관리
//
// 처리 흐름:
//  1. Begin: 사용자 메시지를 즉시 transcript에 추가 (낙관적 추가)
//  2. Complete: 백엔드 호출 후 응답 또는 에러 메시지를 추가
//
// transcript는 추가만 가능하며, 이미 추가된 항목은 수정/롤백하지 않습니다.

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/docbot/web/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgEmptyChat = "Please enter a message"

	// ChatErrorReply is appended in place of a reply when the backend fails.
	ChatErrorReply = "I apologize, but I'm having trouble responding right now. Please try again in a moment."
)

// WelcomeMessage seeds every new transcript.
const WelcomeMessage = `# Welcome to DocBot AI! 🏥

I'm your **medical assistant**, here to answer health questions and share general medical information.

## What I can help you with:

- **General health questions**
- **Symptom information**
- **Medical condition explanations**
- **Treatment guidance**
- **Health tips and advice**

### How to get started:

1. Type your question in the chat box below
2. Pick one of the *quick questions* from the sidebar
3. Ask about a specific medical condition

> **Important Note**: I provide general medical information for educational purposes only. Always consult a healthcare professional for diagnosis and treatment.

How can I assist you today?`

// QuickQuestions prefill the chat input.
var QuickQuestions = []string{
	"What are the symptoms of flu?",
	"How to reduce fever naturally?",
	"When should I see a doctor?",
	"What is a healthy diet?",
	"How much water should I drink daily?",
	"What are signs of dehydration?",
}

// ChatSender is the gateway operation the chat page needs.
type ChatSender interface {
	SendChatMessage(ctx context.Context, message, sessionID string) (*model.ChatReply, error)
}

// Transcript is an append-only, ordered list of chat entries.
type Transcript struct {
	mu       sync.RWMutex
	messages []model.ChatMessage
}

func (t *Transcript) append(m model.ChatMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, m)
}

// Messages returns a snapshot in arrival order.
func (t *Transcript) Messages() []model.ChatMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]model.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Conversation is one chat page load: a session token that correlates turns
// on the backend, plus the transcript shown to the user.
type Conversation struct {
	ID         string
	Transcript *Transcript
}

type ChatService struct {
	sender ChatSender
	log    *zap.Logger
	now    func() time.Time
}

func NewChatService(sender ChatSender, log *zap.Logger) *ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatService{sender: sender, log: log.Named("chat"), now: time.Now}
}

// NewConversation creates a fresh token and a transcript holding only the
// welcome message.
func (s *ChatService) NewConversation() *Conversation {
	conv := &Conversation{
		ID:         NewConversationID(),
		Transcript: &Transcript{},
	}
	conv.Transcript.append(s.entry(model.RoleBot, WelcomeMessage, false))
	return conv
}

// NewConversationID returns a client-generated conversation token.
func NewConversationID() string {
	return "conv-" + uuid.NewString()
}

// Begin appends the user's entry. Blank input is rejected and nothing is
// appended.
func (s *ChatService) Begin(conv *Conversation, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, inputError(msgEmptyChat)
	}
	userMsg := s.entry(model.RoleUser, text, false)
	conv.Transcript.append(userMsg)
	return userMsg, nil
}

// Complete sends the user entry to the backend and appends exactly one
// terminal entry: the reply, or an error-flagged bot entry. The gateway error
// is returned alongside the error entry so the caller can show a notice.
func (s *ChatService) Complete(ctx context.Context, conv *Conversation, userMsg model.ChatMessage) (model.ChatMessage, error) {
	reply, err := s.sender.SendChatMessage(ctx, userMsg.Content, conv.ID)
	if err != nil {
		s.log.Warn("chat reply failed", zap.String("conversation_id", conv.ID), zap.Error(err))
		errMsg := s.entry(model.RoleBot, ChatErrorReply, true)
		conv.Transcript.append(errMsg)
		return errMsg, err
	}

	botMsg := s.entry(model.RoleBot, reply.Response, false)
	conv.Transcript.append(botMsg)
	return botMsg, nil
}

// Submit runs Begin and Complete back to back.
func (s *ChatService) Submit(ctx context.Context, conv *Conversation, text string) (model.ChatMessage, model.ChatMessage, error) {
	userMsg, err := s.Begin(conv, text)
	if err != nil {
		return model.ChatMessage{}, model.ChatMessage{}, err
	}
	reply, err := s.Complete(ctx, conv, userMsg)
	return userMsg, reply, err
}

// Ask is the stateless form used by the JSON API: one message, one reply.
func (s *ChatService) Ask(ctx context.Context, text, conversationID string) (*model.ChatAPIResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, inputError(msgEmptyChat)
	}
	if strings.TrimSpace(conversationID) == "" {
		conversationID = NewConversationID()
	}
	reply, err := s.sender.SendChatMessage(ctx, text, conversationID)
	if err != nil {
		return nil, err
	}
	return &model.ChatAPIResponse{Response: reply.Response, ConversationID: conversationID}, nil
}

func (s *ChatService) entry(role, content string, isError bool) model.ChatMessage {
	return model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
		IsError:   isError,
	}
}
