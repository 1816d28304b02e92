// Package main library catalog BFF.
//
// @title           library catalog BFF
// @version         1.0
// @description     browsing and lending API over the upstream library catalog (book pages, reviews, checkout, admin).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"log/slog"
	"os"

	"librarybff/app/echoServer"
	adminctrl "librarybff/app/echoServer/controller/admin"
	detailctrl "librarybff/app/echoServer/controller/detail"
	messagesctrl "librarybff/app/echoServer/controller/messages"
	reviewsctrl "librarybff/app/echoServer/controller/reviews"
	"librarybff/app/echoServer/validation"
	"librarybff/config"
	"librarybff/repository/catalog"
	adminsvc "librarybff/service/admin"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// upstream catalog client
	cr := catalog.NewHTTP(cfg.CatalogAPIURL)

	// services
	as := adminsvc.New(cr)

	// controllers
	v := validator.New()
	detailC := &detailctrl.Controller{Repo: cr, LoanCeiling: cfg.LoanCeiling, V: v, Log: log}
	reviewsC := &reviewsctrl.Controller{Repo: cr, PageSize: cfg.ReviewPageSize, Log: log}
	adminC := &adminctrl.Controller{Svc: as, PageSize: cfg.ReviewPageSize, V: v, Log: log}
	messagesC := &messagesctrl.Controller{Repo: cr, PageSize: cfg.ReviewPageSize, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Detail:   detailC,
		Reviews:  reviewsC,
		Admin:    adminC,
		Messages: messagesC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
