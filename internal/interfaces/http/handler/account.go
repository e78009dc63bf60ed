package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/stayhub/backend/internal/application/identity"
)

// AccountHandler handles account management endpoints
type AccountHandler struct {
	BaseHandler
	accountService *identityapp.AccountService
	requireAuth    gin.HandlerFunc
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *identityapp.AccountService, requireAuth gin.HandlerFunc) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		requireAuth:    requireAuth,
	}
}

// RegisterRoutes registers account routes. Every account route requires
// authentication; create and delete are additionally admin-only in the
// service.
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts", h.requireAuth)
	{
		accounts.GET("", h.List)
		accounts.POST("", h.Create)
		accounts.GET("/:id", h.Get)
		accounts.PUT("/:id", h.Update)
		accounts.DELETE("/:id", h.Delete)
	}
}

// Create creates a new account (admin only)
func (h *AccountHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var input identityapp.CreateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.accountService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get retrieves an account by ID
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.accountService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves all accounts
func (h *AccountHandler) List(c *gin.Context) {
	results, err := h.accountService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Update applies a partial update to an account (self or admin)
func (h *AccountHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input identityapp.UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.accountService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes an account (admin only)
func (h *AccountHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
