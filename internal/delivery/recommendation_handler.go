package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"recommendation_service/internal/domain"
	"recommendation_service/internal/middleware"
	"recommendation_service/internal/usecase"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type RecommendationHandler struct {
	useCase usecase.RecommendationUseCase
	log     *logrus.Logger
}

func NewRecommendationHandler(uc usecase.RecommendationUseCase, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *RecommendationHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("/hot", h.GetHotProducts)
		products.GET("/recommended", h.GetRecommendedProducts)
		products.GET("/preferences", h.GetCategoryPreferences)
	}
}

func (h *RecommendationHandler) GetRecommendedProducts(c *gin.Context) {
	actor, ok := h.requireUser(c)
	if !ok {
		return
	}
	limit := clampLimit(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	h.log.Infof("Processing recommendations request for user %d (limit %d)", actor.ID, limit)

	products, err := h.useCase.Recommend(c.Request.Context(), actor.ID, limit)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to recommend products for user %d: %v", actor.ID, err)
		ErrorResponse(c, statusCode, "Failed to retrieve recommended products")
		return
	}

	h.log.Infof("Returned %d recommended products for user %d", len(products), actor.ID)
	SuccessResponse(c, http.StatusOK, "Recommended products retrieved successfully", gin.H{"items": products})
}

func (h *RecommendationHandler) GetHotProducts(c *gin.Context) {
	limit := clampLimit(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	products, err := h.useCase.HotProducts(c.Request.Context(), limit)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to retrieve hot products (limit %d): %v", limit, err)
		ErrorResponse(c, statusCode, "Failed to retrieve hot products")
		return
	}

	h.log.Infof("Returned %d hot products (limit %d)", len(products), limit)
	SuccessResponse(c, http.StatusOK, "Hot products retrieved successfully", gin.H{"items": products})
}

func (h *RecommendationHandler) GetCategoryPreferences(c *gin.Context) {
	actor, ok := h.requireUser(c)
	if !ok {
		return
	}

	preferences, err := h.useCase.CategoryPreferences(c.Request.Context(), actor.ID)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to compute preferences for user %d: %v", actor.ID, err)
		ErrorResponse(c, statusCode, "Failed to retrieve category preferences")
		return
	}

	SuccessResponse(c, http.StatusOK, "Category preferences retrieved successfully", gin.H{"categories": preferences})
}

func (h *RecommendationHandler) requireUser(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok || !actor.IsUser() {
		h.log.Warn("Rejected request without an authenticated user actor")
		ErrorResponse(c, http.StatusUnauthorized, "User identification missing")
		return domain.Actor{}, false
	}
	return actor, true
}

// clampLimit mirrors the web contract: default 10, floor 1, cap 50. Anything
// unparsable falls back to the default.
func clampLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
