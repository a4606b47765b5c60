package requests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/dto"
	requestservice "github.com/DKoroteev/linkmart/internal/service/requestservice"
	settlementservice "github.com/DKoroteev/linkmart/internal/service/settlementservice"
	"github.com/DKoroteev/linkmart/pkg/auth"
	"github.com/DKoroteev/linkmart/pkg/utils"
	"github.com/DKoroteev/linkmart/pkg/validate"
)

type Service interface {
	CreateRequest(ctx context.Context, advertiserID int, req *domain.PurchaseRequest) (*domain.PurchaseRequest, error)
	GetRequest(ctx context.Context, id int) (*domain.PurchaseRequest, error)
	GetRequests(ctx context.Context, userID int, role string) ([]domain.PurchaseRequest, error)
	RejectRequest(ctx context.Context, requestID, publisherID int) error
	CancelRequest(ctx context.Context, requestID, advertiserID int) error
}

type SettlementService interface {
	AcceptPurchaseRequest(ctx context.Context, requestID int) error
	AcceptPurchaseRequestWithURL(ctx context.Context, requestID int, placedURL string) error
}

type RequestHandler struct {
	requestService    Service
	settlementService SettlementService
}

func New(requestService Service, settlementService SettlementService) *RequestHandler {
	return &RequestHandler{
		requestService:    requestService,
		settlementService: settlementService,
	}
}

// Create godoc
//
//	@Summary		Create purchase request
//	@Description	Advertiser offers to buy a link placement on a publisher website.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRequestDTO	true	"Purchase request payload"
//	@Success		201		{object}	dto.RequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Website not found"
//	@Failure		422		{object}	utils.Response	"Invalid offer terms"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [post]
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsURL(req.TargetURL) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid target URL")
		return
	}
	if !validate.IsAnchorText(req.AnchorText) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Anchor text is required")
		return
	}

	created, err := h.requestService.CreateRequest(r.Context(), userID, &domain.PurchaseRequest{
		WebsiteID:              req.WebsiteID,
		AnchorText:             req.AnchorText,
		TargetURL:              req.TargetURL,
		ProposedPrice:          req.ProposedPrice,
		ProposedDurationMonths: req.ProposedDurationMonths,
		ContentOption:          req.ContentOption,
	})
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrWebsiteNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrInvalidContentOption),
			errors.Is(err, requestservice.ErrPriceBelowContentFee),
			errors.Is(err, requestservice.ErrNegativePrice):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(created))
}

// GetRequests godoc
//
//	@Summary		List purchase requests
//	@Description	Sent offers for an advertiser, incoming offers for a publisher.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RequestResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [get]
func (h *RequestHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)

	requests, err := h.requestService.GetRequests(r.Context(), userID, role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.RequestResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = toResponseDTO(&req)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Accept godoc
//
//	@Summary		Accept purchase request
//	@Description	Publisher accepts a pending offer; the advertiser is debited for the full price and the publisher is credited with the payout minus commission. An optional placed_url records proof of placement.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Purchase request id"
//	@Param			request	body		dto.AcceptRequestDTO	false	"Optional proof of placement"
//	@Success		200		{object}	utils.Response	"Request accepted and settled"
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Request belongs to another publisher"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Request already processed"
//	@Failure		422		{object}	utils.Response	"Invalid placed URL"
//	@Failure		500		{object}	utils.Response	"Settlement failed"
//	@Router			/api/requests/{id}/accept [post]
func (h *RequestHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requestID, ok := parseID(w, r)
	if !ok {
		return
	}

	var req dto.AcceptRequestDTO
	if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if req.PlacedURL != "" && !validate.IsURL(req.PlacedURL) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid placed URL")
		return
	}

	existing, err := h.requestService.GetRequest(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, requestservice.ErrRequestNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing.PublisherID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Request belongs to another publisher")
		return
	}

	if req.PlacedURL != "" {
		err = h.settlementService.AcceptPurchaseRequestWithURL(r.Context(), requestID, req.PlacedURL)
	} else {
		err = h.settlementService.AcceptPurchaseRequest(r.Context(), requestID)
	}
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, settlementservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, "Request already processed")
		case errors.Is(err, settlementservice.ErrSettlement):
			utils.RespondWithError(w, http.StatusInternalServerError, "Settlement failed, please retry")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Request accepted")
}

// Reject godoc
//
//	@Summary		Reject purchase request
//	@Description	Publisher declines a pending offer. No money moves.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Purchase request id"
//	@Success		200	{object}	utils.Response	"Request rejected"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Request belongs to another publisher"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/reject [post]
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requestID, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.requestService.RejectRequest(r.Context(), requestID, userID); err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Request rejected")
}

// Cancel godoc
//
//	@Summary		Cancel purchase request
//	@Description	Advertiser withdraws a pending offer.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Purchase request id"
//	@Success		200	{object}	utils.Response	"Request cancelled"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Request belongs to another advertiser"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requestID, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.requestService.CancelRequest(r.Context(), requestID, userID); err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Request cancelled")
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return 0, false
	}
	return id, true
}

func respondTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, requestservice.ErrRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, requestservice.ErrNotRequestOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, requestservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, "Request already processed")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponseDTO(req *domain.PurchaseRequest) dto.RequestResponseDTO {
	return dto.RequestResponseDTO{
		ID:                     req.ID,
		AdvertiserID:           req.AdvertiserID,
		PublisherID:            req.PublisherID,
		WebsiteID:              req.WebsiteID,
		AnchorText:             req.AnchorText,
		TargetURL:              req.TargetURL,
		ProposedPrice:          req.ProposedPrice,
		ProposedDurationMonths: req.ProposedDurationMonths,
		ContentOption:          req.ContentOption,
		Status:                 req.Status,
		PlacedURL:              req.PlacedURL,
		CreatedAt:              req.CreatedAt,
		ResponseDate:           req.ResponseDate,
	}
}
