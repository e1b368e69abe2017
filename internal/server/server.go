package server

import (
	"bistro-server/internal/handler"
	authmw "bistro-server/internal/middleware"
	"bistro-server/internal/repository"
	"bistro-server/internal/service"
	"bistro-server/internal/token"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	menuHandler    *handler.MenuHandler
	reviewHandler  *handler.ReviewHandler
	cartHandler    *handler.CartHandler
	paymentHandler *handler.PaymentHandler

	requireAuth  echo.MiddlewareFunc
	requireAdmin echo.MiddlewareFunc
}

func NewServer(
	tokens *token.Service,
	userService service.UserService,
	paymentService service.PaymentService,
	userRepo repository.UserRepository,
	menuRepo repository.MenuRepository,
	reviewRepo repository.ReviewRepository,
	cartRepo repository.CartRepository,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		authHandler:    handler.NewAuthHandler(tokens),
		userHandler:    handler.NewUserHandler(userService),
		menuHandler:    handler.NewMenuHandler(menuRepo),
		reviewHandler:  handler.NewReviewHandler(reviewRepo),
		cartHandler:    handler.NewCartHandler(cartRepo),
		paymentHandler: handler.NewPaymentHandler(paymentService),

		requireAuth:  authmw.RequireAuth(tokens),
		requireAdmin: authmw.RequireAdmin(userRepo),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/jwt", s.authHandler.IssueToken)

	// -------- users / role administration --------
	api.GET("/users", s.userHandler.ListUsers, s.requireAuth, s.requireAdmin)
	api.POST("/users", s.userHandler.CreateUser)
	api.DELETE("/users/:id", s.userHandler.DeleteUser, s.requireAuth, s.requireAdmin)
	api.PATCH("/users/admin/:id", s.userHandler.PromoteUser, s.requireAuth, s.requireAdmin)
	api.GET("/users/admin/:email", s.userHandler.AdminStatus, s.requireAuth)

	// -------- menu / reviews --------
	api.GET("/menu", s.menuHandler.ListMenu)
	api.POST("/menu", s.menuHandler.CreateMenuItem, s.requireAuth, s.requireAdmin)
	api.DELETE("/menu/:id", s.menuHandler.DeleteMenuItem, s.requireAuth, s.requireAdmin)
	api.GET("/reviews", s.reviewHandler.ListReviews)
	api.POST("/reviews", s.reviewHandler.CreateReview)

	// -------- carts --------
	api.GET("/carts", s.cartHandler.ListCartItems)
	api.POST("/carts", s.cartHandler.AddCartItem)
	api.DELETE("/carts/:id", s.cartHandler.DeleteCartItem)

	// -------- payments --------
	api.POST("/create-payment-intent", s.paymentHandler.CreatePaymentIntent)
	api.GET("/payments/:email", s.paymentHandler.ListPayments, s.requireAuth)
	api.POST("/payments", s.paymentHandler.RecordPayment)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the underlying router, mainly for tests that drive requests
// through the full middleware chain.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
