package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"cinema_rental/internal/model"
)

// Films did not exist before 1888 ("Roundhay Garden Scene"); next year's
// titles are admitted for pre-orders.
const earliestReleaseYear = 1888

// filmInputProblem normalizes the candidate film and returns an empty string
// when it is acceptable, or the validation message to report.
func filmInputProblem(f *model.Film) string {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return "title is required"
	}
	if f.ReleaseYear < earliestReleaseYear || f.ReleaseYear > time.Now().UTC().Year()+1 {
		return "releaseYear is out of range"
	}
	if f.PurchaseCost < 0 {
		return "purchaseCost cannot be negative"
	}
	return ""
}

// ListFilms handles GET /v1/films.
func (h *Handler) ListFilms(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Registry.Films()})
}

// CreateFilm handles POST /v1/films. The supplierId in the payload must
// resolve to an existing supplier or the request fails with 404 and nothing
// is admitted.
func (h *Handler) CreateFilm(c echo.Context) error {
	film := new(model.Film)
	if err := c.Bind(film); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := filmInputProblem(film); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Registry.AddFilm(film, film.SupplierID); err != nil {
		return registryError(c, err)
	}
	if !h.persist(c) {
		return nil
	}
	return c.JSON(http.StatusCreated, film)
}

// UpdateFilm handles PUT /v1/films/:id. Reassigning the film to another
// supplier is allowed as long as the new supplier exists.
func (h *Handler) UpdateFilm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	input := new(model.Film)
	if err := c.Bind(input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := filmInputProblem(input); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	film, err := h.Registry.UpdateFilm(id, input.SupplierID, func(stored *model.Film) error {
		if err := stored.ChangePrice(input.PurchaseCost); err != nil {
			return err
		}
		stored.Title = input.Title
		stored.Category = input.Category
		stored.ScriptAuthor = input.ScriptAuthor
		stored.Director = input.Director
		stored.ProducerCompany = input.ProducerCompany
		stored.ReleaseYear = input.ReleaseYear
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNegativeCost) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return registryError(c, err)
	}

	if !h.persist(c) {
		return nil
	}
	return c.JSON(http.StatusOK, film)
}

// DeleteFilm handles DELETE /v1/films/:id. Blocked with 409 while an active
// rental references the film; otherwise the film and its rental history are
// removed together.
func (h *Handler) DeleteFilm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Registry.RemoveFilm(id); err != nil {
		return registryError(c, err)
	}
	if !h.persist(c) {
		return nil
	}
	return c.NoContent(http.StatusNoContent)
}
