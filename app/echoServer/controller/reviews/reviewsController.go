package reviews

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"librarybff/repository/catalog"
	rp "librarybff/service/reviewpage"
)

type Controller struct {
	Repo     catalog.Repo
	PageSize int
	Log      *slog.Logger
}

// GET /v1/books/:id/reviews?page=N
func (h *Controller) ListByBook(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid book id"})
	}

	page := 1
	if p := c.QueryParam("page"); p != "" {
		page, err = strconv.Atoi(p)
		if err != nil || page < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid page"})
		}
	}

	o := rp.New(h.Repo, id, h.PageSize)
	if err := o.Load(c.Request().Context(), page); err != nil {
		h.Log.Error("review page", "book_id", id, "page", page, "err", err)
		if rp.Code(err) == rp.ErrBadPage {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid page"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "reviews unavailable"})
	}

	w := o.Window()
	return c.JSON(http.StatusOK, echo.Map{
		"reviews": o.Reviews(),
		"window":  w,
		"showing": echo.Map{
			"from": w.FirstItemIndex(),
			"to":   w.LastItemIndex(),
			"of":   w.TotalItems,
		},
	})
}
