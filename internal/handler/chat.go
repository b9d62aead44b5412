package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docbot/web/internal/markdown"
	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/docbot/web/internal/session"
	"github.com/docbot/web/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventConnected = "connected"
	EventMessage   = "message"
	EventError     = "error"
	EventBusy      = "busy"

	wsWriteWait = 10 * time.Second
)

type ChatHandler struct {
	svc            *service.ChatService
	log            *zap.Logger
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader
}

func NewChatHandler(svc *service.ChatService, allowedOrigins []string, log *zap.Logger) *ChatHandler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &ChatHandler{
		svc:            svc,
		log:            log,
		allowedOrigins: make(map[string]bool),
	}
	for _, o := range allowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			h.allowedOrigins[o] = true
		}
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Page is a fresh load: a new conversation token and a transcript holding
// only the welcome message.
func (h *ChatHandler) Page(c *gin.Context) {
	v := GetVisitor(c)
	v.ResetConversation(h.svc.NewConversation())
	h.render(c, v, "")
}

// Send is the form fallback when the websocket is unavailable.
func (h *ChatHandler) Send(c *gin.Context) {
	v := GetVisitor(c)
	conv := v.Conversation(h.svc.NewConversation)

	var form model.ChatForm
	_ = c.ShouldBind(&form)

	if !v.TryBegin(session.PageChat) {
		v.Notify(model.ErrorNotice(service.ErrBusy.Error()))
		h.render(c, v, form.Message)
		return
	}

	// 대화 기록은 화면을 떠나도 끝까지 채운다
	_, _, err := h.svc.Submit(context.WithoutCancel(c.Request.Context()), conv, form.Message)
	v.End(session.PageChat)

	if err != nil {
		v.Notify(model.ErrorNotice(noticeMessage(err)))
	}
	if c.Request.Context().Err() != nil {
		return
	}
	h.render(c, v, "")
}

// Stream upgrades to a websocket and runs the same two-phase append per
// inbound message, pushing each entry as it lands.
func (h *ChatHandler) Stream(c *gin.Context) {
	v := GetVisitor(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conv := v.Conversation(h.svc.NewConversation)
	if err := h.write(conn, model.ChatEvent{Type: EventConnected, ConversationID: conv.ID}); err != nil {
		return
	}

	for {
		var in model.ChatInbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket closed unexpectedly", zap.Error(err))
			}
			return
		}
		if err := h.exchange(c.Request.Context(), conn, v, conv, in.Text); err != nil {
			h.log.Debug("websocket write failed", zap.Error(err))
			return
		}
	}
}

func (h *ChatHandler) exchange(ctx context.Context, conn *websocket.Conn, v *session.Visitor, conv *service.Conversation, text string) error {
	if !v.TryBegin(session.PageChat) {
		notice := model.ErrorNotice(service.ErrBusy.Error())
		return h.write(conn, model.ChatEvent{Type: EventError, ConversationID: conv.ID, Notice: &notice})
	}
	defer v.End(session.PageChat)

	userMsg, err := h.svc.Begin(conv, text)
	if err != nil {
		notice := model.ErrorNotice(noticeMessage(err))
		return h.write(conn, model.ChatEvent{Type: EventError, ConversationID: conv.ID, Notice: &notice})
	}

	writeErr := h.write(conn, model.ChatEvent{Type: EventMessage, ConversationID: conv.ID, Message: &userMsg})
	if writeErr == nil {
		writeErr = h.write(conn, model.ChatEvent{Type: EventBusy, ConversationID: conv.ID, Busy: true})
	}

	// 소켓이 끊겨도 응답(또는 에러 항목)은 대화 기록에 남긴다
	reply, err := h.svc.Complete(context.WithoutCancel(ctx), conv, userMsg)
	if writeErr != nil {
		return writeErr
	}

	ev := model.ChatEvent{Type: EventMessage, ConversationID: conv.ID, Message: &reply, HTML: string(markdown.Render(reply.Content))}
	if err != nil {
		notice := model.ErrorNotice(noticeMessage(err))
		ev.Type = EventError
		ev.Notice = &notice
	}
	if err := h.write(conn, ev); err != nil {
		return err
	}
	return h.write(conn, model.ChatEvent{Type: EventBusy, ConversationID: conv.ID, Busy: false})
}

func (h *ChatHandler) write(conn *websocket.Conn, ev model.ChatEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(ev)
}

// checkOrigin accepts same-origin pages, configured origins, and clients
// that send no Origin header.
func (h *ChatHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigins["*"] || h.allowedOrigins[origin] {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

func (h *ChatHandler) render(c *gin.Context, v *session.Visitor, draft string) {
	conv := v.Conversation(h.svc.NewConversation)
	renderPage(c, v, session.PageChat, "chat.html", "AI Chat", view.NewChatData(conv, draft))
}
