package handler

import (
	"github.com/gin-gonic/gin"
	rentalapp "github.com/stayhub/backend/internal/application/rental"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	BaseHandler
	reviewService *rentalapp.ReviewService
	requireAuth   gin.HandlerFunc
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *rentalapp.ReviewService, requireAuth gin.HandlerFunc) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		requireAuth:   requireAuth,
	}
}

// RegisterRoutes registers review routes. Reads are public; the caller
// becomes the author on create.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.GET("/:id", h.Get)

		reviews.POST("", h.requireAuth, h.Create)
		reviews.PUT("/:id", h.requireAuth, h.Update)
		reviews.DELETE("/:id", h.requireAuth, h.Delete)
	}
}

// Create creates a review authored by the caller
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var input rentalapp.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.reviewService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get retrieves a review by ID
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves all reviews
func (h *ReviewHandler) List(c *gin.Context) {
	results, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Update changes a review's text or rating (author or admin)
func (h *ReviewHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input rentalapp.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.reviewService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a review (author or admin)
func (h *ReviewHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
