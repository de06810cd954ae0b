package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"bate-papo/domain"
	chaterr "bate-papo/errors"
	"bate-papo/services"
)

// IdentityHeader carries the caller's display name. It is the only
// identity mechanism: there is no authentication beyond it.
const IdentityHeader = "User"

type Handler struct {
	registry services.IRegistryService
	messages services.IMessageService
	log      *slog.Logger
}

func NewHandler(
	registry services.IRegistryService,
	messages services.IMessageService,
	log *slog.Logger,
) *Handler {
	return &Handler{registry: registry, messages: messages, log: log}
}

type registerRequest struct {
	Name string `json:"name"`
}

type participantResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastSeen int64  `json:"lastStatus"`
}

type messageRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
}

type messageResponse struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// RegisterParticipant handles POST /participants.
func (h *Handler) RegisterParticipant(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, chaterr.FieldErrors{Fields: []string{"body must be valid JSON"}})
		return
	}

	participant, err := h.registry.Register(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toParticipantResponse(participant))
}

// ListParticipants handles GET /participants.
func (h *Handler) ListParticipants(c *gin.Context) {
	participants, err := h.registry.ListParticipants()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(participants, func(p domain.Participant, _ int) participantResponse {
		return toParticipantResponse(p)
	}))
}

// PostMessage handles POST /messages. The sender comes from the
// identity header, never from the body.
func (h *Handler) PostMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, chaterr.FieldErrors{Fields: []string{"body must be valid JSON"}})
		return
	}

	message, err := h.messages.PostMessage(domain.PostMessageCommand{
		From: c.GetHeader(IdentityHeader),
		To:   req.To,
		Text: req.Text,
		Kind: domain.Kind(req.Type),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMessageResponse(message))
}

// ListMessages handles GET /messages?limit=N, filtered for the viewer
// named by the identity header.
func (h *Handler) ListMessages(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, chaterr.FieldErrors{
				Fields: []string{fmt.Sprintf("limit must be a positive integer, got %q", raw)},
			})
			return
		}
		limit = parsed
	}

	visible, err := h.messages.VisibleMessages(c.GetHeader(IdentityHeader), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(visible, func(m domain.Message, _ int) messageResponse {
		return toMessageResponse(m)
	}))
}

// Heartbeat handles POST /status.
func (h *Handler) Heartbeat(c *gin.Context) {
	if err := h.registry.Heartbeat(c.GetHeader(IdentityHeader)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// respondError translates the domain taxonomy into HTTP statuses:
// validation, duplicate names, and unauthenticated senders are all 422;
// an unknown participant on heartbeat is 404; anything else is a store
// or programming failure and reported as 500.
func respondError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	var fieldErrs chaterr.FieldErrors
	if errors.As(err, &fieldErrs) {
		body["details"] = fieldErrs.Fields
	}
	c.JSON(statusFor(err), body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, chaterr.ErrValidation),
		errors.Is(err, chaterr.ErrDuplicateName),
		errors.Is(err, chaterr.ErrUnauthorized):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chaterr.ErrParticipantNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func toParticipantResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		LastSeen: p.LastSeen.UnixMilli(),
	}
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:   m.ID.String(),
		From: m.From,
		To:   m.To,
		Text: m.Text,
		Type: string(m.Kind),
		Time: m.Time,
	}
}
