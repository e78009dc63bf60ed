package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	identityapp "github.com/stayhub/backend/internal/application/identity"
	rentalapp "github.com/stayhub/backend/internal/application/rental"
	"github.com/stayhub/backend/internal/domain/shared"
)

// ListingHandler handles listing endpoints
type ListingHandler struct {
	BaseHandler
	listingService *rentalapp.ListingService
	accountService *identityapp.AccountService
	amenityService *rentalapp.AmenityService
	reviewService  *rentalapp.ReviewService
	requireAuth    gin.HandlerFunc
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(
	listingService *rentalapp.ListingService,
	accountService *identityapp.AccountService,
	amenityService *rentalapp.AmenityService,
	reviewService *rentalapp.ReviewService,
	requireAuth gin.HandlerFunc,
) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		accountService: accountService,
		amenityService: amenityService,
		reviewService:  reviewService,
		requireAuth:    requireAuth,
	}
}

// ListingDetailResponse is a listing with its owner summary and amenities
// expanded inline
type ListingDetailResponse struct {
	rentalapp.ListingResult
	Owner     *identityapp.AccountResult `json:"owner"`
	Amenities []*rentalapp.AmenityResult `json:"amenities"`
}

// RegisterRoutes registers listing routes. Reads are public; mutations
// require authentication.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.List)
		listings.GET("/:id", h.Get)
		listings.GET("/:id/reviews", h.GetReviews)

		listings.POST("", h.requireAuth, h.Create)
		listings.PUT("/:id", h.requireAuth, h.Update)
		listings.DELETE("/:id", h.requireAuth, h.Delete)
		listings.POST("/:id/amenities/:amenity_id", h.requireAuth, h.AddAmenity)
		listings.DELETE("/:id/amenities/:amenity_id", h.requireAuth, h.RemoveAmenity)
	}
}

// Create creates a new listing owned by the caller
func (h *ListingHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var input rentalapp.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.listingService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	detail, err := h.toDetail(c.Request.Context(), result)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, detail)
}

// Get retrieves a listing with its owner and amenities expanded
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	detail, err := h.toDetail(c.Request.Context(), result)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, detail)
}

// List retrieves all listings
func (h *ListingHandler) List(c *gin.Context) {
	results, err := h.listingService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// GetReviews retrieves all reviews for a listing
func (h *ListingHandler) GetReviews(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	results, err := h.reviewService.GetByPlace(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Update applies a partial update to a listing (owner or admin)
func (h *ListingHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input rentalapp.UpdateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.listingService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	detail, err := h.toDetail(c.Request.Context(), result)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, detail)
}

// Delete removes a listing and its reviews (owner or admin)
func (h *ListingHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddAmenity associates an amenity with a listing (owner or admin, idempotent)
func (h *ListingHandler) AddAmenity(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	listingID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	amenityID, ok := h.pathID(c, "amenity_id")
	if !ok {
		return
	}

	result, err := h.listingService.AddAmenity(c.Request.Context(), actor, listingID, amenityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RemoveAmenity drops an amenity association (owner or admin, idempotent)
func (h *ListingHandler) RemoveAmenity(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	listingID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	amenityID, ok := h.pathID(c, "amenity_id")
	if !ok {
		return
	}

	result, err := h.listingService.RemoveAmenity(c.Request.Context(), actor, listingID, amenityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// toDetail expands the owner summary and the amenity list for a listing
func (h *ListingHandler) toDetail(ctx context.Context, listing *rentalapp.ListingResult) (*ListingDetailResponse, error) {
	owner, err := h.accountService.Get(ctx, listing.OwnerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	amenities := make([]*rentalapp.AmenityResult, 0, len(listing.AmenityIDs))
	for _, amenityID := range listing.AmenityIDs {
		amenity, err := h.amenityService.Get(ctx, amenityID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		amenities = append(amenities, amenity)
	}

	return &ListingDetailResponse{
		ListingResult: *listing,
		Owner:         owner,
		Amenities:     amenities,
	}, nil
}
