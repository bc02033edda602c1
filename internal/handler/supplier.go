package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cinema_rental/internal/model"
)

// ListSuppliers handles GET /v1/suppliers.
func (h *Handler) ListSuppliers(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Registry.Suppliers()})
}

// CreateSupplier handles POST /v1/suppliers.
func (h *Handler) CreateSupplier(c echo.Context) error {
	supplier := new(model.Supplier)
	if err := c.Bind(supplier); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if err := h.Registry.AddSupplier(supplier); err != nil {
		return registryError(c, err)
	}
	if !h.persist(c) {
		return nil
	}
	return c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplier handles PUT /v1/suppliers/:id, replacing the editable
// fields.
func (h *Handler) UpdateSupplier(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	input := new(model.Supplier)
	if err := c.Bind(input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	supplier, err := h.Registry.UpdateSupplier(id, func(stored *model.Supplier) {
		stored.Name = input.Name
		stored.Phone = input.Phone
		stored.BankDetails = input.BankDetails
		stored.LegalInfo = input.LegalInfo
	})
	if err != nil {
		return registryError(c, err)
	}

	if !h.persist(c) {
		return nil
	}
	return c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier handles DELETE /v1/suppliers/:id. A supplier that still has
// films in the catalog cannot be removed; there is no cascade.
func (h *Handler) DeleteSupplier(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Registry.RemoveSupplier(id); err != nil {
		return registryError(c, err)
	}
	if !h.persist(c) {
		return nil
	}
	return c.NoContent(http.StatusNoContent)
}
