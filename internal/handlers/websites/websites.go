package websites

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/dto"
	websiteservice "github.com/DKoroteev/linkmart/internal/service/websiteservice"
	"github.com/DKoroteev/linkmart/pkg/auth"
	"github.com/DKoroteev/linkmart/pkg/utils"
)

type Service interface {
	CreateWebsite(ctx context.Context, publisherID int, website *domain.Website) (*domain.Website, error)
	GetWebsites(ctx context.Context) ([]domain.Website, error)
}

type WebsiteHandler struct {
	websiteService Service
}

func New(websiteService Service) *WebsiteHandler {
	return &WebsiteHandler{
		websiteService: websiteService,
	}
}

// Create godoc
//
//	@Summary		List a website
//	@Description	Publisher adds a website to the catalog advertisers browse.
//	@Tags			Websites
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWebsiteDTO	true	"Website payload"
//	@Success		201		{object}	dto.WebsiteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid website"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/websites [post]
func (h *WebsiteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateWebsiteDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	website, err := h.websiteService.CreateWebsite(r.Context(), userID, &domain.Website{
		Domain:         req.Domain,
		Category:       req.Category,
		MonthlyTraffic: req.MonthlyTraffic,
		Price:          req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, websiteservice.ErrEmptyDomain), errors.Is(err, websiteservice.ErrNegativePrice):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(website))
}

// List godoc
//
//	@Summary		Browse websites
//	@Description	Catalog of publisher websites available for link placements.
//	@Tags			Websites
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WebsiteResponseDTO
//	@Success		204	{object}	utils.Response	"No websites listed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/websites [get]
func (h *WebsiteHandler) List(w http.ResponseWriter, r *http.Request) {
	websites, err := h.websiteService.GetWebsites(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(websites) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No websites listed")
		return
	}

	response := make([]dto.WebsiteResponseDTO, len(websites))
	for i, website := range websites {
		response[i] = toResponseDTO(&website)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponseDTO(website *domain.Website) dto.WebsiteResponseDTO {
	return dto.WebsiteResponseDTO{
		ID:             website.ID,
		PublisherID:    website.PublisherID,
		Domain:         website.Domain,
		Category:       website.Category,
		MonthlyTraffic: website.MonthlyTraffic,
		Price:          website.Price,
	}
}
