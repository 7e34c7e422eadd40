package handlers

import (
	"database/sql"

	"marketplace/internal/auth"
	"marketplace/internal/http/middleware"
	"marketplace/internal/repositories"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the shared dependencies; services are assembled per
// request so they log with the caller's request id.
type Handler struct {
	DB     *sql.DB
	Codec  *auth.Codec
	Hasher auth.PasswordHasher
	Access *auth.AccessTable
}

func New(db *sql.DB, codec *auth.Codec, hasher auth.PasswordHasher, access *auth.AccessTable) *Handler {
	return &Handler{DB: db, Codec: codec, Hasher: hasher, Access: access}
}

func (h *Handler) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     repositories.UserRepository{DB: h.DB},
		Hasher:    h.Hasher,
		Codec:     h.Codec,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) userService() services.UserService {
	return services.UserService{
		Users:  repositories.UserRepository{DB: h.DB},
		Hasher: h.Hasher,
	}
}

func (h *Handler) productService() services.ProductService {
	return services.ProductService{
		Products:   repositories.ProductRepository{DB: h.DB},
		Categories: repositories.CategoryRepository{DB: h.DB},
	}
}

func (h *Handler) catalogService() services.CatalogService {
	return services.CatalogService{
		Categories: repositories.CategoryRepository{DB: h.DB},
		Statuses:   repositories.StatusRepository{DB: h.DB},
	}
}

func (h *Handler) orderService(c *gin.Context) services.OrderService {
	return services.OrderService{
		Orders:    repositories.OrderRepository{DB: h.DB},
		Items:     repositories.OrderItemRepository{DB: h.DB},
		Products:  repositories.ProductRepository{DB: h.DB},
		Statuses:  repositories.StatusRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) invoiceService(c *gin.Context) services.InvoiceService {
	return services.InvoiceService{
		Items:     repositories.OrderItemRepository{DB: h.DB},
		Products:  repositories.ProductRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}
