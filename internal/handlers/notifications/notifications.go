package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/dto"
	notificationservice "github.com/DKoroteev/linkmart/internal/service/notificationservice"
	"github.com/DKoroteev/linkmart/pkg/auth"
	"github.com/DKoroteev/linkmart/pkg/utils"
)

type Service interface {
	GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List godoc
//
//	@Summary		Get notifications
//	@Description	In-app notifications for the authenticated user, newest first.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NotificationResponseDTO
//	@Success		204	{object}	utils.Response	"No notifications"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	notifications, err := h.notificationService.GetNotifications(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(notifications) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No notifications")
		return
	}

	response := make([]dto.NotificationResponseDTO, len(notifications))
	for i, n := range notifications {
		response[i] = dto.NotificationResponseDTO{
			ID:        n.ID,
			Kind:      n.Kind,
			Payload:   json.RawMessage(n.Payload),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark notification read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Notification id"
//	@Success		200	{object}	utils.Response	"Marked read"
//	@Failure		400	{object}	utils.Response	"Invalid notification id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), id, userID); err != nil {
		if errors.Is(err, notificationservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Notification marked read")
}
