//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bate-papo/domain"
	chaterr "bate-papo/errors"
	"bate-papo/repositories"
)

// Censor rewrites forbidden fragments of a message text.
type Censor interface {
	Censor(text string) string
}

type IMessageService interface {
	PostMessage(cmd domain.PostMessageCommand) (domain.Message, error)
	VisibleMessages(viewer string, limit int) ([]domain.Message, error)
}

type MessageService struct {
	participants repositories.IParticipantRepository
	messages     repositories.IMessageRepository
	censor       Censor
	log          *slog.Logger
}

// NewMessageService wires the message flow. censor may be nil, in which
// case texts are stored untouched.
func NewMessageService(
	participants repositories.IParticipantRepository,
	messages repositories.IMessageRepository,
	censor Censor,
	log *slog.Logger,
) *MessageService {
	return &MessageService{
		participants: participants,
		messages:     messages,
		censor:       censor,
		log:          log,
	}
}

// PostMessage validates and stores a user-authored message. The sender
// must still be registered; an evicted sender gets ErrUnauthorized and is
// expected to re-register.
func (s *MessageService) PostMessage(cmd domain.PostMessageCommand) (domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Message{}, validationError(err)
	}

	if _, err := s.participants.GetParticipant(cmd.From); err != nil {
		if errors.Is(err, chaterr.ErrParticipantNotFound) {
			return domain.Message{}, chaterr.ErrUnauthorized
		}
		return domain.Message{}, err
	}

	text := cmd.Text
	if s.censor != nil {
		text = s.censor.Censor(text)
	}

	now := time.Now().UTC()
	message := domain.Message{
		ID:   uuid.New(),
		From: cmd.From,
		To:   cmd.To,
		Text: text,
		Kind: cmd.Kind,
		Time: now.Format(domain.ClockLayout),
		At:   now,
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// VisibleMessages returns what viewer may see, in insertion order.
// limit > 0 keeps only that many of the most recent visible messages,
// still oldest first.
func (s *MessageService) VisibleMessages(viewer string, limit int) ([]domain.Message, error) {
	if limit < 0 {
		return nil, chaterr.FieldErrors{
			Fields: []string{fmt.Sprintf("limit must be positive, got %d", limit)},
		}
	}

	all, err := s.messages.GetMessages()
	if err != nil {
		return nil, err
	}

	visible := domain.VisibleTo(all, viewer)
	if limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	return visible, nil
}
