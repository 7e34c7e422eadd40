package handlers

import (
	"fmt"
	"net/http"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/http/middleware"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/orders
// Non-admin callers only ever see their own orders, whatever userId they pass.
func (h *Handler) ListOrders(c *gin.Context) {
	page, ok := pageRequest(c)
	if !ok {
		return
	}
	var crit domain.OrderCriteria
	if !BindQueryOrError(c, &crit) {
		return
	}
	if p := middleware.PrincipalFrom(c); !p.HasRole(domain.RoleAdmin) {
		uid := p.UserID()
		crit.UserID = &uid
	}
	res, err := h.orderService(c).List(c.Request.Context(), crit, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	var in services.OrderInput
	if !BindJSONOrError(c, &in) {
		return
	}
	buyer := middleware.PrincipalFrom(c)
	o, err := h.orderService(c).Create(c.Request.Context(), buyer.UserID(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handler) loadOrder(c *gin.Context, id int64, checkOwner bool) (models.Order, bool) {
	o, err := h.orderService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return models.Order{}, false
	}
	if checkOwner && !middleware.AuthorizeOwner(c, o.UserID) {
		return models.Order{}, false
	}
	return o, true
}

func (h *Handler) loadOwnedOrder(c *gin.Context) (models.Order, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return models.Order{}, false
	}
	return h.loadOrder(c, id, true)
}

// GET /api/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	o, ok := h.loadOwnedOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, o)
}

// PATCH /api/orders/:id
func (h *Handler) UpdateOrder(c *gin.Context) {
	o, ok := h.loadOwnedOrder(c)
	if !ok {
		return
	}
	var patch services.OrderPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	updated, err := h.orderService(c).Update(c.Request.Context(), o, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PATCH /api/orders/:id/status
func (h *Handler) ChangeOrderStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in services.OrderStatusInput
	if !BindJSONOrError(c, &in) {
		return
	}
	o, ok := h.loadOrder(c, id, false)
	if !ok {
		return
	}
	updated, err := h.orderService(c).ChangeStatus(c.Request.Context(), o, in.StatusID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/orders/:id
func (h *Handler) DeleteOrder(c *gin.Context) {
	o, ok := h.loadOwnedOrder(c)
	if !ok {
		return
	}
	if err := h.orderService(c).Delete(c.Request.Context(), o.ID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/orders/:id/items
func (h *Handler) OrderItemsOf(c *gin.Context) {
	o, ok := h.loadOwnedOrder(c)
	if !ok {
		return
	}
	items, err := h.orderService(c).ItemsOf(c.Request.Context(), o.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/orders/:id/invoice
func (h *Handler) OrderInvoice(c *gin.Context) {
	o, ok := h.loadOwnedOrder(c)
	if !ok {
		return
	}
	pdf, filename, err := h.invoiceService(c).Generate(c.Request.Context(), o)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/order-items
func (h *Handler) ListOrderItems(c *gin.Context) {
	page, ok := pageRequest(c)
	if !ok {
		return
	}
	var crit domain.OrderItemCriteria
	if !BindQueryOrError(c, &crit) {
		return
	}
	res, err := h.orderService(c).ListItems(c.Request.Context(), crit, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/order-items
// The caller must own the target order unless the route's override role applies.
func (h *Handler) CreateOrderItem(c *gin.Context) {
	var in services.OrderItemInput
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := services.ValidateItem(in); err != nil {
		RespondDomainError(c, err)
		return
	}
	o, ok := h.loadOrder(c, in.OrderID, true)
	if !ok {
		return
	}
	item, err := h.orderService(c).AddItem(c.Request.Context(), o, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /api/order-items/:id
func (h *Handler) DeleteOrderItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, err := h.orderService(c).GetItem(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, ok := h.loadOrder(c, item.OrderID, true); !ok {
		return
	}
	if err := h.orderService(c).RemoveItem(c.Request.Context(), item); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
