package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"marketplace/internal/auth"
	intconfig "marketplace/internal/config"
	"marketplace/internal/domain"
	h "marketplace/internal/http/handlers"
	"marketplace/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the process-wide collaborators the router hands to handlers.
type Deps struct {
	DB     *sql.DB
	Codec  *auth.Codec
	Hasher auth.PasswordHasher
}

type route struct {
	method  string
	path    string
	rule    auth.Rule
	handler gin.HandlerFunc
}

var (
	public        = auth.PublicRule()
	authenticated = auth.AuthenticatedRule()
	adminOnly     = auth.RoleRule(domain.RoleAdmin)
	ownerOrAdmin  = auth.OwnerRule(domain.RoleAdmin)
	ownerOnly     = auth.OwnerRule("")
)

// routeTable is the single place where a route and its access rule are
// declared together.
func routeTable(hd *h.Handler) []route {
	return []route{
		{stdhttp.MethodGet, "/api/health", public, hd.Health},
		{stdhttp.MethodGet, "/api/routes", adminOnly, hd.Routes},

		{stdhttp.MethodPost, "/api/auth/login", public, hd.Login},

		{stdhttp.MethodPost, "/api/users", public, hd.Register},
		{stdhttp.MethodGet, "/api/users", adminOnly, hd.ListUsers},
		{stdhttp.MethodGet, "/api/users/:id", ownerOrAdmin, hd.GetUser},
		{stdhttp.MethodPatch, "/api/users/:id", ownerOrAdmin, hd.UpdateUser},
		{stdhttp.MethodDelete, "/api/users/:id", ownerOrAdmin, hd.DeleteUser},

		{stdhttp.MethodGet, "/api/products", public, hd.ListProducts},
		{stdhttp.MethodGet, "/api/products/:id", public, hd.GetProduct},
		{stdhttp.MethodPost, "/api/products", authenticated, hd.CreateProduct},
		{stdhttp.MethodPatch, "/api/products/:id", ownerOnly, hd.UpdateProduct},
		{stdhttp.MethodDelete, "/api/products/:id", ownerOrAdmin, hd.DeleteProduct},

		{stdhttp.MethodGet, "/api/categories", public, hd.ListCategories},
		{stdhttp.MethodGet, "/api/categories/:id", public, hd.GetCategory},
		{stdhttp.MethodPost, "/api/categories", adminOnly, hd.CreateCategory},
		{stdhttp.MethodPatch, "/api/categories/:id", adminOnly, hd.UpdateCategory},
		{stdhttp.MethodDelete, "/api/categories/:id", adminOnly, hd.DeleteCategory},

		{stdhttp.MethodGet, "/api/statuses", public, hd.ListStatuses},
		{stdhttp.MethodGet, "/api/statuses/:id", public, hd.GetStatus},
		{stdhttp.MethodPost, "/api/statuses", adminOnly, hd.CreateStatus},
		{stdhttp.MethodPatch, "/api/statuses/:id", adminOnly, hd.UpdateStatus},
		{stdhttp.MethodDelete, "/api/statuses/:id", adminOnly, hd.DeleteStatus},

		{stdhttp.MethodGet, "/api/orders", authenticated, hd.ListOrders},
		{stdhttp.MethodPost, "/api/orders", authenticated, hd.CreateOrder},
		{stdhttp.MethodGet, "/api/orders/:id", ownerOrAdmin, hd.GetOrder},
		{stdhttp.MethodPatch, "/api/orders/:id", ownerOnly, hd.UpdateOrder},
		{stdhttp.MethodPatch, "/api/orders/:id/status", adminOnly, hd.ChangeOrderStatus},
		{stdhttp.MethodDelete, "/api/orders/:id", ownerOrAdmin, hd.DeleteOrder},
		{stdhttp.MethodGet, "/api/orders/:id/items", ownerOrAdmin, hd.OrderItemsOf},
		{stdhttp.MethodGet, "/api/orders/:id/invoice", ownerOrAdmin, hd.OrderInvoice},

		{stdhttp.MethodGet, "/api/order-items", adminOnly, hd.ListOrderItems},
		{stdhttp.MethodPost, "/api/order-items", ownerOrAdmin, hd.CreateOrderItem},
		{stdhttp.MethodDelete, "/api/order-items/:id", ownerOrAdmin, hd.DeleteOrderItem},
	}
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	if deps.Hasher == nil {
		deps.Hasher = auth.NewBcryptHasher()
	}

	table := auth.NewAccessTable()
	table.Set(stdhttp.MethodOptions, "/*path", public)
	hd := h.New(deps.DB, deps.Codec, deps.Hasher, table)
	routes := routeTable(hd)
	for _, rt := range routes {
		table.Set(rt.method, rt.path, rt.rule)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.Authenticate(deps.Codec),
		middleware.Access(table),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	for _, rt := range routes {
		r.Handle(rt.method, rt.path, rt.handler)
	}
	h.SetRouter(r)
	return r
}
