//go:generate go run go.uber.org/mock/mockgen -source=registry_service.go -destination=../mocks/mock_registry_service.go -package=mocks
package services

import (
	"log/slog"
	"strings"
	"time"

	"bate-papo/domain"
	"bate-papo/repositories"
)

const (
	joinedText = "entered the room"
	leftText   = "left the room"
)

type IRegistryService interface {
	Register(name string) (domain.Participant, error)
	Heartbeat(name string) error
	ListParticipants() ([]domain.Participant, error)
	Sweep(now time.Time, threshold time.Duration) ([]string, error)
}

// RegistryService owns the participant lifecycle: registration,
// liveness refresh, and eviction of silent participants.
type RegistryService struct {
	participants repositories.IParticipantRepository
	messages     repositories.IMessageRepository
	log          *slog.Logger
}

func NewRegistryService(
	participants repositories.IParticipantRepository,
	messages repositories.IMessageRepository,
	log *slog.Logger,
) *RegistryService {
	return &RegistryService{participants: participants, messages: messages, log: log}
}

// Register creates a participant and emits its join notice. Both writes
// are awaited: a failed notice write fails the whole registration rather
// than leaving an unreported gap.
func (s *RegistryService) Register(name string) (domain.Participant, error) {
	cmd := domain.RegisterCommand{Name: strings.TrimSpace(name)}
	if err := validate.Struct(cmd); err != nil {
		return domain.Participant{}, validationError(err)
	}

	now := time.Now().UTC()
	participant, err := s.participants.CreateParticipant(cmd.Name, now)
	if err != nil {
		return domain.Participant{}, err
	}

	notice := domain.NewStatusMessage(cmd.Name, joinedText, now)
	if err = s.messages.StoreMessage(notice); err != nil {
		return domain.Participant{}, err
	}

	s.log.Info("Participant registered", "name", cmd.Name)
	return participant, nil
}

// Heartbeat refreshes the participant's LastSeen. Idempotent; returns
// ErrParticipantNotFound when the caller must re-register.
func (s *RegistryService) Heartbeat(name string) error {
	return s.participants.Touch(name, time.Now().UTC())
}

func (s *RegistryService) ListParticipants() ([]domain.Participant, error) {
	return s.participants.ListParticipants()
}

// Sweep evicts every participant silent for at least threshold and emits
// one leave notice per eviction. Evictions are independent: a failure is
// logged and the scan moves on, it never aborts the cycle. Returns the
// names actually removed.
func (s *RegistryService) Sweep(now time.Time, threshold time.Duration) ([]string, error) {
	participants, err := s.participants.ListParticipants()
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, participant := range participants {
		if !participant.Stale(now, threshold) {
			continue
		}
		if err := s.participants.DeleteParticipant(participant.Name); err != nil {
			s.log.Error("Eviction failed", "name", participant.Name, "err", err)
			continue
		}
		removed = append(removed, participant.Name)

		notice := domain.NewStatusMessage(participant.Name, leftText, now)
		if err := s.messages.StoreMessage(notice); err != nil {
			// The participant is already gone; the notice is advisory.
			s.log.Error("Leave notice failed", "name", participant.Name, "err", err)
		}
	}
	return removed, nil
}
