// Package handler contains the HTTP handlers through which the catalog is
// read and mutated. Handlers translate request payloads into registry
// operations, map the registry's sentinel errors onto HTTP status codes and
// persist the catalog file after every successful mutation, so the file on
// disk always reflects the last accepted change.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cinema_rental/internal/config"
	"cinema_rental/internal/registry"
	"cinema_rental/internal/storage"
)

// Handler bundles the registry and the persistence adapter for all catalog
// endpoints.
type Handler struct {
	Cfg      config.Config
	Registry *registry.Registry
	Store    *storage.Store
}

// NewHandler constructs a Handler and panics when a dependency is missing;
// wiring errors should surface at startup, not on the first request.
func NewHandler(cfg config.Config, reg *registry.Registry, store *storage.Store) *Handler {
	if reg == nil || store == nil {
		panic("nil dependency passed to NewHandler")
	}
	return &Handler{Cfg: cfg, Registry: reg, Store: store}
}

// parseID parses the :id route parameter into a positive integer.
func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// parseDate accepts either a bare date ("2024-01-13") or a full RFC 3339
// timestamp; times of day are discarded by the registry anyway.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// registryError maps a registry failure onto the matching HTTP response:
// invalid input 400, unresolved identifiers 404, integrity violations 409,
// anything unexpected 500.
func registryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, registry.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, registry.ErrCinemaNotFound),
		errors.Is(err, registry.ErrSupplierNotFound),
		errors.Is(err, registry.ErrFilmNotFound),
		errors.Is(err, registry.ErrRentalNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, registry.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// persist writes the registry state to the catalog file and reports whether
// it succeeded. On failure the 500 response is written here and the caller
// must return without touching the response again; the in-memory mutation has
// already happened and the next successful mutation will persist it.
func (h *Handler) persist(c echo.Context) bool {
	if err := h.Store.SaveFrom(h.Registry); err != nil {
		c.Logger().Errorf("save catalog: %v", err)
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save catalog file"})
		return false
	}
	return true
}
