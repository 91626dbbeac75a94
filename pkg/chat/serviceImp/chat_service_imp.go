package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"morafo/entities"
	"morafo/pkg/ai"
	repo "morafo/pkg/chat/repository"
	"morafo/pkg/chat/service"
	"morafo/pkg/render"
)

// replier is the slice of ai.Client the chat needs.
type replier interface {
	Reply(ctx context.Context, history []entities.ChatMessage, text string, img *ai.Image, lang entities.Language) (string, error)
}

type chatSvc struct {
	r   repo.ChatRepository
	llm replier
	log *zap.Logger
	now func() time.Time
}

func NewChatService(r repo.ChatRepository, llm replier, log *zap.Logger) service.ChatService {
	return &chatSvc{r: r, llm: llm, log: log, now: time.Now}
}

func (s *chatSvc) History(sessionID string, lang entities.Language) ([]entities.ChatMessage, error) {
	msgs, err := s.load(sessionID, lang)
	if err != nil {
		return nil, err
	}
	return withHTML(msgs), nil
}

func (s *chatSvc) Send(ctx context.Context, sessionID string, lang entities.Language, in service.SendInput) ([]entities.ChatMessage, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && strings.TrimSpace(in.Image) == "" {
		return nil, nil
	}
	var img *ai.Image
	if strings.TrimSpace(in.Image) != "" {
		parsed, err := ai.ParseDataURL(in.Image)
		if err != nil {
			return nil, service.ErrBadImage
		}
		img = &parsed
	}

	prior, err := s.load(sessionID, lang)
	if err != nil {
		return nil, err
	}
	history := replayable(prior)

	user := &entities.ChatMessage{
		SessionID: sessionID,
		ID:        uuid.NewString(),
		Role:      entities.RoleUser,
		Text:      text,
		Image:     strings.TrimSpace(in.Image),
		Timestamp: s.now(),
	}
	if err := s.r.Append(user); err != nil {
		return nil, err
	}

	reply := &entities.ChatMessage{SessionID: sessionID, ID: uuid.NewString(), Role: entities.RoleModel}
	out, err := s.llm.Reply(ctx, history, text, img, lang)
	switch {
	case err == nil && strings.TrimSpace(out) != "":
		reply.Text = out
	case err == nil, errors.Is(err, ai.ErrEmpty):
		reply.Text = service.NotUnderstood(lang)
	default:
		s.log.Warn("chat reply failed", zap.String("session", sessionID), zap.Error(err))
		reply.Text = service.ConnectionError(lang)
		reply.IsError = true
	}
	reply.Timestamp = s.now()
	if err := s.r.Append(reply); err != nil {
		return nil, err
	}
	return withHTML([]entities.ChatMessage{*user, *reply}), nil
}

// load returns the stored conversation, seeding the greeting for new sessions.
func (s *chatSvc) load(sessionID string, lang entities.Language) ([]entities.ChatMessage, error) {
	msgs, err := s.r.List(sessionID)
	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 {
		return msgs, nil
	}
	g := &entities.ChatMessage{
		SessionID: sessionID,
		ID:        service.GreetingID,
		Role:      entities.RoleModel,
		Text:      service.Greeting(lang),
		Timestamp: s.now(),
	}
	if err := s.r.Append(g); err != nil {
		return nil, err
	}
	return []entities.ChatMessage{*g}, nil
}

// replayable drops the greeting and every failed exchange: an error reply and
// the user turn it answered.
func replayable(msgs []entities.ChatMessage) []entities.ChatMessage {
	out := make([]entities.ChatMessage, 0, len(msgs))
	for i, m := range msgs {
		if m.ID == service.GreetingID || m.IsError {
			continue
		}
		if m.Role == entities.RoleUser && i+1 < len(msgs) && msgs[i+1].IsError {
			continue
		}
		out = append(out, m)
	}
	return out
}

func withHTML(msgs []entities.ChatMessage) []entities.ChatMessage {
	for i := range msgs {
		if msgs[i].Role == entities.RoleModel {
			msgs[i].HTML = render.HTML(msgs[i].Text)
		}
	}
	return msgs
}
