package services

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bate-papo/domain"
	chaterr "bate-papo/errors"
	"bate-papo/mocks"
	"bate-papo/moderation"
)

func newMessageServiceUnderTest(t *testing.T, censor Censor) (*MessageService, *mocks.MockIParticipantRepository, *mocks.MockIMessageRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	participantRepo := mocks.NewMockIParticipantRepository(ctrl)
	messageRepo := mocks.NewMockIMessageRepository(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewMessageService(participantRepo, messageRepo, censor, log), participantRepo, messageRepo
}

func TestMessageService_PostMessage(t *testing.T) {
	t.Run("should store a valid public message", func(t *testing.T) {
		req := require.New(t)
		svc, participantRepo, messageRepo := newMessageServiceUnderTest(t, nil)

		participantRepo.EXPECT().GetParticipant("Alice").
			Return(domain.Participant{Name: "Alice"}, nil).Times(1)
		messageRepo.EXPECT().StoreMessage(gomock.Any()).
			DoAndReturn(func(m domain.Message) error {
				req.Equal("Alice", m.From)
				req.Equal(domain.Broadcast, m.To)
				req.Equal("hello everyone", m.Text)
				req.Equal(domain.KindMessage, m.Kind)
				req.NotEmpty(m.Time)
				return nil
			}).
			Times(1)

		message, err := svc.PostMessage(domain.PostMessageCommand{
			From: "Alice",
			To:   domain.Broadcast,
			Text: "hello everyone",
			Kind: domain.KindMessage,
		})
		req.NoError(err)
		req.Equal("hello everyone", message.Text)
	})

	t.Run("should reject an unregistered sender without any store write", func(t *testing.T) {
		req := require.New(t)
		svc, participantRepo, messageRepo := newMessageServiceUnderTest(t, nil)

		participantRepo.EXPECT().GetParticipant("Ghost").
			Return(domain.Participant{}, chaterr.ErrParticipantNotFound).Times(1)
		messageRepo.EXPECT().StoreMessage(gomock.Any()).Times(0)

		_, err := svc.PostMessage(domain.PostMessageCommand{
			From: "Ghost",
			To:   domain.Broadcast,
			Text: "boo",
			Kind: domain.KindMessage,
		})
		req.ErrorIs(err, chaterr.ErrUnauthorized)
	})

	t.Run("should list every violated field, not just the first", func(t *testing.T) {
		req := require.New(t)
		svc, participantRepo, _ := newMessageServiceUnderTest(t, nil)
		participantRepo.EXPECT().GetParticipant(gomock.Any()).Times(0)

		_, err := svc.PostMessage(domain.PostMessageCommand{
			From: "Alice",
			To:   "",
			Text: "",
			Kind: "shout",
		})
		req.ErrorIs(err, chaterr.ErrValidation)

		var fieldErrs chaterr.FieldErrors
		req.ErrorAs(err, &fieldErrs)
		req.Len(fieldErrs.Fields, 3)
	})

	t.Run("should refuse user-authored status notices", func(t *testing.T) {
		svc, participantRepo, _ := newMessageServiceUnderTest(t, nil)
		participantRepo.EXPECT().GetParticipant(gomock.Any()).Times(0)

		_, err := svc.PostMessage(domain.PostMessageCommand{
			From: "Alice",
			To:   domain.Broadcast,
			Text: "entered the room",
			Kind: domain.KindStatus,
		})
		require.ErrorIs(t, err, chaterr.ErrValidation)
	})

	t.Run("should reject texts over 400 characters", func(t *testing.T) {
		svc, participantRepo, _ := newMessageServiceUnderTest(t, nil)
		participantRepo.EXPECT().GetParticipant(gomock.Any()).Times(0)

		_, err := svc.PostMessage(domain.PostMessageCommand{
			From: "Alice",
			To:   domain.Broadcast,
			Text: strings.Repeat("a", 401),
			Kind: domain.KindMessage,
		})
		require.ErrorIs(t, err, chaterr.ErrValidation)
	})

	t.Run("should censor the text before storing it", func(t *testing.T) {
		req := require.New(t)
		moderator, err := moderation.NewModerator([]string{"badger"}, '*')
		req.NoError(err)
		svc, participantRepo, messageRepo := newMessageServiceUnderTest(t, moderator)

		participantRepo.EXPECT().GetParticipant("Alice").
			Return(domain.Participant{Name: "Alice"}, nil).Times(1)
		messageRepo.EXPECT().StoreMessage(gomock.Any()).
			DoAndReturn(func(m domain.Message) error {
				req.Equal("The ****** is here", m.Text)
				return nil
			}).
			Times(1)

		message, err := svc.PostMessage(domain.PostMessageCommand{
			From: "Alice",
			To:   domain.Broadcast,
			Text: "The badger is here",
			Kind: domain.KindMessage,
		})
		req.NoError(err)
		req.Equal("The ****** is here", message.Text)
	})
}

func TestMessageService_VisibleMessages(t *testing.T) {
	t.Run("should filter the fetched log for the viewer", func(t *testing.T) {
		req := require.New(t)
		svc, _, messageRepo := newMessageServiceUnderTest(t, nil)

		messageRepo.EXPECT().GetMessages().Return([]domain.Message{
			{From: "Bob", To: domain.Broadcast, Text: "1"},
			{From: "Bob", To: "Alice", Text: "2"},
			{From: "Bob", To: "Carol", Text: "3"},
			{From: "Alice", To: "Carol", Text: "4"},
		}, nil).Times(1)

		visible, err := svc.VisibleMessages("Alice", 0)
		req.NoError(err)
		req.Len(visible, 3)
		req.Equal("1", visible[0].Text)
		req.Equal("2", visible[1].Text)
		req.Equal("4", visible[2].Text)
	})

	t.Run("should keep only the most recent visible messages when limited", func(t *testing.T) {
		req := require.New(t)
		svc, _, messageRepo := newMessageServiceUnderTest(t, nil)

		messageRepo.EXPECT().GetMessages().Return([]domain.Message{
			{From: "Bob", To: domain.Broadcast, Text: "old"},
			{From: "Bob", To: domain.Broadcast, Text: "newer"},
			{From: "Bob", To: domain.Broadcast, Text: "newest"},
		}, nil).Times(1)

		visible, err := svc.VisibleMessages("Alice", 2)
		req.NoError(err)
		req.Len(visible, 2)
		req.Equal("newer", visible[0].Text)
		req.Equal("newest", visible[1].Text)
	})

	t.Run("should reject a negative limit", func(t *testing.T) {
		svc, _, _ := newMessageServiceUnderTest(t, nil)
		_, err := svc.VisibleMessages("Alice", -1)
		require.ErrorIs(t, err, chaterr.ErrValidation)
	})
}
