package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Reload handles POST /v1/reload: it discards the in-memory collections and
// re-reads them from the catalog file, rebinding all rental references. Any
// unsaved edits are lost, which is the point of the operation.
func (h *Handler) Reload(c echo.Context) error {
	if err := h.Store.LoadInto(h.Registry); err != nil {
		c.Logger().Errorf("reload catalog: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not reload catalog file"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"cinemas":   len(h.Registry.Cinemas()),
		"suppliers": len(h.Registry.Suppliers()),
		"films":     len(h.Registry.Films()),
		"rentals":   len(h.Registry.Rentals()),
	})
}
