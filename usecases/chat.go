package usecases

import (
	"context"
	"errors"

	"estate-server/entities"
	"estate-server/repositories"
	"estate-server/services"
	"estate-server/ws"

	"gorm.io/gorm"
)

// TextGenerator is a single-shot prompt-to-text completion service.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatUseCase runs the conversational assistant: persisted sessions and
// messages, plus the one-shot advisory completions (location/developer
// overviews, EMI advice, Vaastu analysis).
type ChatUseCase struct {
	repo   repositories.ChatRepository
	gen    TextGenerator
	events *ws.Manager
}

func NewChatUseCase(repo repositories.ChatRepository, gen TextGenerator, events *ws.Manager) *ChatUseCase {
	return &ChatUseCase{repo: repo, gen: gen, events: events}
}

func (uc *ChatUseCase) StartSession(userID, title string) (*entities.ChatSession, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	if title == "" {
		title = "New conversation"
	}
	session := &entities.ChatSession{UserID: userID, Title: title}
	if err := uc.repo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *ChatUseCase) ListSessions(userID string) ([]entities.ChatSession, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return uc.repo.GetSessionsByUserID(userID)
}

// Messages returns a session's history, oldest first. The session must
// belong to the caller.
func (uc *ChatUseCase) Messages(userID, sessionID string) ([]entities.ChatMessage, error) {
	session, err := uc.repo.GetSession(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return uc.repo.GetMessagesBySessionID(sessionID)
}

// Send stores the user's message, asks the generator for a reply, stores
// that too and pushes it to the user's open sessions as an event.
func (uc *ChatUseCase) Send(ctx context.Context, userID, sessionID, content string) (*entities.ChatMessage, error) {
	if content == "" {
		return nil, errors.New("message content is required")
	}

	session, err := uc.repo.GetSession(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}

	userMsg := &entities.ChatMessage{
		SessionID: sessionID,
		Role:      entities.ChatRoleUser,
		Content:   content,
	}
	if err := uc.repo.CreateMessage(userMsg); err != nil {
		return nil, err
	}

	history, err := uc.repo.GetMessagesBySessionID(sessionID)
	if err != nil {
		return nil, err
	}

	reply, err := uc.gen.Complete(ctx, services.BuildAssistantPrompt(history))
	if err != nil {
		return nil, err
	}

	assistantMsg := &entities.ChatMessage{
		SessionID: sessionID,
		Role:      entities.ChatRoleAssistant,
		Content:   reply,
	}
	if err := uc.repo.CreateMessage(assistantMsg); err != nil {
		return nil, err
	}

	uc.events.Publish(userID, ws.Event{
		Type:      ws.EventChatMessage,
		SessionID: sessionID,
		Message:   reply,
	})
	return assistantMsg, nil
}

// LocationOverview generates the neighborhood overview blob for a
// property's location.
func (uc *ChatUseCase) LocationOverview(ctx context.Context, p *entities.Property) (string, error) {
	if p == nil {
		return "", errors.New("property is required")
	}
	return uc.gen.Complete(ctx, services.BuildLocationOverviewPrompt(p.Title, p.Location))
}

// DeveloperOverview generates the public overview text for a developer.
func (uc *ChatUseCase) DeveloperOverview(ctx context.Context, d *entities.Developer) (string, error) {
	if d == nil {
		return "", errors.New("developer is required")
	}
	return uc.gen.Complete(ctx, services.BuildDeveloperOverviewPrompt(d.Name, d.City, d.Description))
}

// EMIAdvice answers a loan affordability question.
func (uc *ChatUseCase) EMIAdvice(ctx context.Context, price, downPayment float64, years int) (string, error) {
	if price <= 0 {
		return "", errors.New("price must be positive")
	}
	return uc.gen.Complete(ctx, services.BuildEMIAdvicePrompt(price, downPayment, years))
}

// VaastuAnalysis evaluates a property description against Vaastu
// guidelines.
func (uc *ChatUseCase) VaastuAnalysis(ctx context.Context, description string) (string, error) {
	if description == "" {
		return "", errors.New("property description is required")
	}
	return uc.gen.Complete(ctx, services.BuildVaastuPrompt(description))
}
