package handler

import (
	"github.com/gin-gonic/gin"
	rentalapp "github.com/stayhub/backend/internal/application/rental"
)

// AmenityHandler handles amenity catalog endpoints
type AmenityHandler struct {
	BaseHandler
	amenityService *rentalapp.AmenityService
	requireAuth    gin.HandlerFunc
}

// NewAmenityHandler creates a new AmenityHandler
func NewAmenityHandler(amenityService *rentalapp.AmenityService, requireAuth gin.HandlerFunc) *AmenityHandler {
	return &AmenityHandler{
		amenityService: amenityService,
		requireAuth:    requireAuth,
	}
}

// RegisterRoutes registers amenity routes. Reads are public; mutations
// require an admin token.
func (h *AmenityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	amenities := rg.Group("/amenities")
	{
		amenities.GET("", h.List)
		amenities.GET("/:id", h.Get)

		amenities.POST("", h.requireAuth, h.Create)
		amenities.PUT("/:id", h.requireAuth, h.Update)
		amenities.DELETE("/:id", h.requireAuth, h.Delete)
	}
}

// Create creates a new amenity (admin only)
func (h *AmenityHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var input rentalapp.CreateAmenityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.amenityService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get retrieves an amenity by ID
func (h *AmenityHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.amenityService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves all amenities
func (h *AmenityHandler) List(c *gin.Context) {
	results, err := h.amenityService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Update applies a partial update to an amenity (admin only)
func (h *AmenityHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input rentalapp.UpdateAmenityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.amenityService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes an amenity and its listing associations (admin only)
func (h *AmenityHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.amenityService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
