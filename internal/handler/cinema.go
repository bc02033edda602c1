package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cinema_rental/internal/model"
)

// ListCinemas handles GET /v1/cinemas and returns the cinema collection in
// insertion order.
func (h *Handler) ListCinemas(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Registry.Cinemas()})
}

// CreateCinema handles POST /v1/cinemas. The client sends a fully populated
// candidate record; the registry assigns the identifier when none is set.
func (h *Handler) CreateCinema(c echo.Context) error {
	cinema := new(model.Cinema)
	if err := c.Bind(cinema); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cinema.Name = strings.TrimSpace(cinema.Name)
	if cinema.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if cinema.SeatsCount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seatsCount must be positive"})
	}
	if err := h.Registry.AddCinema(cinema); err != nil {
		return registryError(c, err)
	}
	if !h.persist(c) {
		return nil
	}
	return c.JSON(http.StatusCreated, cinema)
}

// UpdateCinema handles PUT /v1/cinemas/:id and replaces the editable fields
// of the stored cinema. The identifier never changes.
func (h *Handler) UpdateCinema(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	input := new(model.Cinema)
	if err := c.Bind(input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if input.SeatsCount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seatsCount must be positive"})
	}

	cinema, err := h.Registry.UpdateCinema(id, func(stored *model.Cinema) {
		stored.Name = input.Name
		stored.Phone = input.Phone
		stored.BankDetails = input.BankDetails
		stored.LegalInfo = input.LegalInfo
		stored.Address = input.Address
		stored.SeatsCount = input.SeatsCount
		stored.DirectorFullName = input.DirectorFullName
		stored.OwnerFullName = input.OwnerFullName
	})
	if err != nil {
		return registryError(c, err)
	}

	if !h.persist(c) {
		return nil
	}
	return c.JSON(http.StatusOK, cinema)
}

// DeleteCinema handles DELETE /v1/cinemas/:id. Removal is blocked with 409
// while the cinema has active rentals; otherwise its rental history is
// cascade-removed along with it.
func (h *Handler) DeleteCinema(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Registry.RemoveCinema(id); err != nil {
		return registryError(c, err)
	}
	if !h.persist(c) {
		return nil
	}
	return c.NoContent(http.StatusNoContent)
}
