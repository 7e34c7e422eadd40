package handlers

import (
	"net/http"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/http/middleware"
	"marketplace/internal/query"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/users
func (h *Handler) Register(c *gin.Context) {
	var in services.RegisterInput
	if !BindJSONOrError(c, &in) {
		return
	}
	u, err := h.userService().Register(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u.ToPublic())
}

// GET /api/users
func (h *Handler) ListUsers(c *gin.Context) {
	page, ok := pageRequest(c)
	if !ok {
		return
	}
	var crit domain.UserCriteria
	if !BindQueryOrError(c, &crit) {
		return
	}
	res, err := h.userService().List(c.Request.Context(), crit, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, query.MapPage(res, models.User.ToPublic))
}

// loadOwnedUser fetches :id and applies the route's owner rule to it.
func (h *Handler) loadOwnedUser(c *gin.Context) (models.User, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return models.User{}, false
	}
	u, err := h.userService().Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return models.User{}, false
	}
	if !middleware.AuthorizeOwner(c, u.ID) {
		return models.User{}, false
	}
	return u, true
}

// GET /api/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	u, ok := h.loadOwnedUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u.ToPublic())
}

// PATCH /api/users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	u, ok := h.loadOwnedUser(c)
	if !ok {
		return
	}
	var patch services.UserPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	updated, err := h.userService().Update(c.Request.Context(), u, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.ToPublic())
}

// DELETE /api/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	u, ok := h.loadOwnedUser(c)
	if !ok {
		return
	}
	if err := h.userService().Delete(c.Request.Context(), u.ID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
