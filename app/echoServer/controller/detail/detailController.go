package detail

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"librarybff/app/echoServer/jwtx"
	"librarybff/auth"
	"librarybff/repository/catalog"
	bd "librarybff/service/bookdetail"
)

type Controller struct {
	Repo        catalog.Repo
	LoanCeiling int
	V           *validator.Validate
	Log         *slog.Logger
}

// orchestrate builds a fresh page-view orchestrator for the request's
// book and identity, runs the retrieval set, and waits for it to settle.
func (h *Controller) orchestrate(c echo.Context) (*bd.Orchestrator, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	ts := auth.Anonymous()
	if raw := jwtx.RawToken(c); raw != "" {
		ts = auth.Static(raw)
	}

	o := bd.New(h.Repo, ts, h.LoanCeiling, h.Log)
	if err := o.Load(c.Request().Context(), id); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	o.Wait()
	return o, nil
}

func (h *Controller) pageError(c echo.Context, v bd.View) error {
	if v.PageErr == catalog.ErrNotFound.Error() {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"message": v.PageErr})
}

// GET /v1/books/:id/page
func (h *Controller) Page(c echo.Context) error {
	o, err := h.orchestrate(c)
	if err != nil {
		return err
	}
	v := o.View()
	if v.PageErr != "" {
		return h.pageError(c, v)
	}
	return c.JSON(http.StatusOK, v)
}

// PUT /v1/books/:id/checkout
func (h *Controller) Checkout(c echo.Context) error {
	o, err := h.orchestrate(c)
	if err != nil {
		return err
	}
	if v := o.View(); v.PageErr != "" {
		return h.pageError(c, v)
	}

	if err := o.Checkout(c.Request().Context()); err != nil {
		h.Log.Error("checkout", "err", err)
		switch bd.Code(err) {
		case bd.ErrNotSignedIn:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "sign in to check out"})
		case bd.ErrAlreadyCheckedOut:
			return c.JSON(http.StatusConflict, echo.Map{"message": "already checked out"})
		case bd.ErrLoanLimit:
			return c.JSON(http.StatusConflict, echo.Map{"message": "loan limit reached"})
		default:
			return c.JSON(http.StatusBadGateway, echo.Map{"message": "checkout failed"})
		}
	}

	o.Wait()
	return c.JSON(http.StatusOK, o.View())
}

// POST /v1/books/:id/reviews
func (h *Controller) SubmitReview(c echo.Context) error {
	var req SubmitReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"rating": "integer 1 to 5"},
		})
	}

	o, err := h.orchestrate(c)
	if err != nil {
		return err
	}
	if v := o.View(); v.PageErr != "" {
		return h.pageError(c, v)
	}

	if err := o.SubmitReview(c.Request().Context(), req.Rating, req.Description); err != nil {
		h.Log.Error("submit review", "err", err)
		switch bd.Code(err) {
		case bd.ErrNotSignedIn:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "sign in to review"})
		case bd.ErrBadRating:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rating must be 1 to 5"})
		case bd.ErrAlreadyReviewed:
			return c.JSON(http.StatusConflict, echo.Map{"message": "review already left"})
		default:
			return c.JSON(http.StatusBadGateway, echo.Map{"message": "review submission failed"})
		}
	}

	o.Wait()
	return c.JSON(http.StatusCreated, o.View())
}
