package messages

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"librarybff/app/echoServer/jwtx"
	"librarybff/repository/catalog"
)

type Controller struct {
	Repo     catalog.Repo
	PageSize int
	V        *validator.Validate
	Log      *slog.Logger
}

// POST /v1/messages
func (h *Controller) Create(c echo.Context) error {
	var req SubmitQuestionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"title": "required", "question": "required"}})
	}

	if err := h.Repo.SubmitQuestion(c.Request().Context(), req.Title, req.Question, jwtx.RawToken(c)); err != nil {
		h.Log.Error("submit question", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "message submission failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "question submitted"})
}

// GET /v1/messages?page=N
func (h *Controller) My(c echo.Context) error {
	email, err := jwtx.EmailFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	page := 1
	if p := c.QueryParam("page"); p != "" {
		if n, perr := strconv.Atoi(p); perr == nil && n >= 1 {
			page = n
		}
	}

	res, err := h.Repo.MessagesByUser(c.Request().Context(), email, page-1, h.PageSize, jwtx.RawToken(c))
	if err != nil {
		h.Log.Error("my messages", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "messages unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"messages":   res.Messages,
		"totalItems": res.TotalItems,
		"totalPages": res.TotalPages,
	})
}
