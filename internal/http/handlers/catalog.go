package handlers

import (
	"net/http"

	"marketplace/internal/domain"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	page, ok := pageRequest(c)
	if !ok {
		return
	}
	var crit domain.CategoryCriteria
	if !BindQueryOrError(c, &crit) {
		return
	}
	res, err := h.catalogService().ListCategories(c.Request.Context(), crit, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/categories/:id
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cat, err := h.catalogService().GetCategory(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// POST /api/categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var in services.CategoryInput
	if !BindJSONOrError(c, &in) {
		return
	}
	cat, err := h.catalogService().CreateCategory(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// PATCH /api/categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in services.CategoryInput
	if !BindJSONOrError(c, &in) {
		return
	}
	cat, err := h.catalogService().UpdateCategory(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DELETE /api/categories/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService().DeleteCategory(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/statuses
func (h *Handler) ListStatuses(c *gin.Context) {
	page, ok := pageRequest(c)
	if !ok {
		return
	}
	var crit domain.StatusCriteria
	if !BindQueryOrError(c, &crit) {
		return
	}
	res, err := h.catalogService().ListStatuses(c.Request.Context(), crit, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/statuses/:id
func (h *Handler) GetStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	st, err := h.catalogService().GetStatus(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /api/statuses
func (h *Handler) CreateStatus(c *gin.Context) {
	var in services.StatusInput
	if !BindJSONOrError(c, &in) {
		return
	}
	st, err := h.catalogService().CreateStatus(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// PATCH /api/statuses/:id
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in services.StatusInput
	if !BindJSONOrError(c, &in) {
		return
	}
	st, err := h.catalogService().UpdateStatus(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DELETE /api/statuses/:id
func (h *Handler) DeleteStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService().DeleteStatus(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
