package echoServer

import (
	"librarybff/app/echoServer/controller/admin"
	"librarybff/app/echoServer/controller/detail"
	"librarybff/app/echoServer/controller/messages"
	"librarybff/app/echoServer/controller/reviews"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Detail    *detail.Controller
	Reviews   *reviews.Controller
	Admin     *admin.Controller
	Messages  *messages.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public: the detail page and review browsing render for anonymous
	// callers too; a bearer token, when present, unlocks the
	// user-specific slices.
	pub := e.Group("/v1")
	pub.GET("/books/:id/page", c.Detail.Page)
	pub.GET("/books/:id/reviews", c.Reviews.ListByBook)

	// Auth
	sec := e.Group("/v1")
	sec.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))

	sec.PUT("/books/:id/checkout", c.Detail.Checkout)
	sec.POST("/books/:id/reviews", c.Detail.SubmitReview)

	sec.POST("/messages", c.Messages.Create)
	sec.GET("/messages", c.Messages.My)

	// Admin endpoints
	sec.POST("/admin/books", c.Admin.AddBook)
	sec.PUT("/admin/books/:id/quantity", c.Admin.ChangeQuantity)
	sec.GET("/admin/messages", c.Admin.OpenMessages)
	sec.PUT("/admin/messages/:id", c.Admin.Answer)
}
