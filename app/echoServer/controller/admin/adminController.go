package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"librarybff/app/echoServer/jwtx"
	"librarybff/model"
	adminsvc "librarybff/service/admin"
)

type Controller struct {
	Svc      adminsvc.Service
	PageSize int
	V        *validator.Validate
	Log      *slog.Logger
}

// POST /v1/admin/books
func (h *Controller) AddBook(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req AddBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"title": "required", "author": "required", "category": "required", "copies": "gt 0"},
		})
	}

	b := model.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Copies:      req.Copies,
		Category:    req.Category,
		Img:         req.Img,
	}
	if err := h.Svc.AddBook(c.Request().Context(), b, jwtx.RawToken(c)); err != nil {
		h.Log.Error("add book", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "add book failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "book added"})
}

// PUT /v1/admin/books/:id/quantity?action=increase|decrease
func (h *Controller) ChangeQuantity(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	action := c.QueryParam("action")
	if action != "increase" && action != "decrease" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "action must be increase or decrease"})
	}

	if err := h.Svc.ChangeQuantity(c.Request().Context(), id, action == "increase", jwtx.RawToken(c)); err != nil {
		h.Log.Error("change quantity", "book_id", id, "action", action, "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "quantity change failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "quantity updated"})
}

// GET /v1/admin/messages?page=N
func (h *Controller) OpenMessages(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	page := pageParam(c)

	res, err := h.Svc.OpenMessages(c.Request().Context(), page-1, h.PageSize, jwtx.RawToken(c))
	if err != nil {
		h.Log.Error("open messages", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "messages unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"messages":   res.Messages,
		"totalItems": res.TotalItems,
		"totalPages": res.TotalPages,
	})
}

// PUT /v1/admin/messages/:id
func (h *Controller) Answer(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req AnswerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"response": "required"}})
	}

	if err := h.Svc.Answer(c.Request().Context(), id, req.Response, jwtx.RawToken(c)); err != nil {
		h.Log.Error("answer message", "message_id", id, "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "answer failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "answered"})
}

func pageParam(c echo.Context) int {
	page := 1
	if p := c.QueryParam("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n >= 1 {
			page = n
		}
	}
	return page
}
