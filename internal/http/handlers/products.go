package handlers

import (
	"net/http"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/http/middleware"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/products
func (h *Handler) ListProducts(c *gin.Context) {
	page, ok := pageRequest(c)
	if !ok {
		return
	}
	var crit domain.ProductCriteria
	if !BindQueryOrError(c, &crit) {
		return
	}
	res, err := h.productService().List(c.Request.Context(), crit, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.productService().Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var in services.ProductInput
	if !BindJSONOrError(c, &in) {
		return
	}
	seller := middleware.PrincipalFrom(c)
	p, err := h.productService().Create(c.Request.Context(), seller.UserID(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) loadOwnedProduct(c *gin.Context) (models.Product, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return models.Product{}, false
	}
	p, err := h.productService().Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return models.Product{}, false
	}
	if !middleware.AuthorizeOwner(c, p.SellerID) {
		return models.Product{}, false
	}
	return p, true
}

// PATCH /api/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	p, ok := h.loadOwnedProduct(c)
	if !ok {
		return
	}
	var patch services.ProductPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	updated, err := h.productService().Update(c.Request.Context(), p, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	p, ok := h.loadOwnedProduct(c)
	if !ok {
		return
	}
	if err := h.productService().Delete(c.Request.Context(), p.ID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
