package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cinema_rental/internal/model"
	"cinema_rental/internal/queue"
)

const dateLayout = "2006-01-02"

// rentalRow is the display shape of a rental: stored fields plus values
// derived at response time (names resolved through the back-references,
// penalty amount, overdue evaluated against "now"). Derived fields are never
// persisted.
type rentalRow struct {
	ID                int     `json:"id"`
	CinemaID          int     `json:"cinemaId"`
	CinemaName        string  `json:"cinemaName"`
	FilmID            int     `json:"filmId"`
	FilmTitle         string  `json:"filmTitle"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	PaymentAmount     float64 `json:"paymentAmount"`
	PenaltyRatePerDay float64 `json:"penaltyRatePerDay"`
	ActualReturnDate  string  `json:"actualReturnDate,omitempty"`
	PenaltyAmount     float64 `json:"penaltyAmount"`
	Active            bool    `json:"active"`
	Overdue           bool    `json:"overdue"`
}

func toRentalRow(r *model.Rental, now time.Time) rentalRow {
	row := rentalRow{
		ID:                r.ID,
		CinemaID:          r.CinemaID,
		CinemaName:        fmt.Sprintf("cinema #%d", r.CinemaID), // fallback when the reference did not resolve
		FilmID:            r.FilmID,
		FilmTitle:         fmt.Sprintf("film #%d", r.FilmID),
		StartDate:         r.StartDate.Format(dateLayout),
		EndDate:           r.EndDate.Format(dateLayout),
		PaymentAmount:     r.PaymentAmount,
		PenaltyRatePerDay: r.PenaltyRatePerDay,
		PenaltyAmount:     r.CalculatePenalty(),
		Active:            r.IsActive(),
		Overdue:           r.IsOverdue(now),
	}
	if r.Cinema != nil {
		row.CinemaName = r.Cinema.Name
	}
	if r.Film != nil {
		row.FilmTitle = r.Film.Title
	}
	if r.ActualReturnDate != nil {
		row.ActualReturnDate = r.ActualReturnDate.Format(dateLayout)
	}
	return row
}

func toRentalRows(rentals []*model.Rental) []rentalRow {
	now := time.Now().UTC()
	rows := make([]rentalRow, 0, len(rentals))
	for _, r := range rentals {
		rows = append(rows, toRentalRow(r, now))
	}
	return rows
}

// ListRentals handles GET /v1/rentals and returns every rental with its
// derived display fields.
func (h *Handler) ListRentals(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": toRentalRows(h.Registry.Rentals())})
}

// ListActiveRentals handles GET /v1/rentals/active, returning only rentals
// whose film has not come back yet.
func (h *Handler) ListActiveRentals(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": toRentalRows(h.Registry.GetActiveRentals())})
}

type createRentalReq struct {
	CinemaID          int     `json:"cinemaId"`
	FilmID            int     `json:"filmId"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	PaymentAmount     float64 `json:"paymentAmount"`
	PenaltyRatePerDay float64 `json:"penaltyRatePerDay"`
}

// CreateRental handles POST /v1/rentals. The registry validates the foreign
// keys, date order and payment; the penalty rate is configured on the
// returned rental afterwards, the way the registry contract intends.
func (h *Handler) CreateRental(c echo.Context) error {
	var req createRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid startDate"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid endDate"})
	}
	if req.PenaltyRatePerDay < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "penaltyRatePerDay cannot be negative"})
	}

	rental, err := h.Registry.CreateRental(req.CinemaID, req.FilmID, start, end, req.PaymentAmount)
	if err != nil {
		return registryError(c, err)
	}
	if _, err := h.Registry.SetPenaltyRate(rental.ID, req.PenaltyRatePerDay); err != nil {
		return registryError(c, err)
	}

	if !h.persist(c) {
		return nil
	}

	// Event delivery is best effort; the rental is already committed.
	_ = queue.PublishRentalCreated(c.Request().Context(), queue.RentalCreatedEvent{
		RentalID:      rental.ID,
		CinemaID:      rental.CinemaID,
		CinemaName:    rental.Cinema.Name,
		FilmID:        rental.FilmID,
		FilmTitle:     rental.Film.Title,
		StartDate:     rental.StartDate.Format(dateLayout),
		EndDate:       rental.EndDate.Format(dateLayout),
		PaymentAmount: rental.PaymentAmount,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, toRentalRow(rental, time.Now().UTC()))
}

type closeRentalReq struct {
	ReturnDate string `json:"returnDate"`
}

// CloseRental handles POST /v1/rentals/:id/close, recording the actual
// return of the film and reporting the resulting penalty.
func (h *Handler) CloseRental(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req closeRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	returnDate, err := parseDate(req.ReturnDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid returnDate"})
	}

	if err := h.Registry.CloseRental(id, returnDate); err != nil {
		return registryError(c, err)
	}
	rental, err := h.Registry.GetRentalByID(id)
	if err != nil {
		return registryError(c, err)
	}

	if !h.persist(c) {
		return nil
	}

	_ = queue.PublishRentalClosed(c.Request().Context(), queue.RentalClosedEvent{
		RentalID:      rental.ID,
		ReturnDate:    rental.ActualReturnDate.Format(dateLayout),
		PenaltyAmount: rental.CalculatePenalty(),
		ClosedAt:      time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, toRentalRow(rental, time.Now().UTC()))
}

type penaltyRateReq struct {
	PenaltyRatePerDay float64 `json:"penaltyRatePerDay"`
}

// SetPenaltyRate handles PATCH /v1/rentals/:id/penalty-rate.
func (h *Handler) SetPenaltyRate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req penaltyRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rental, err := h.Registry.SetPenaltyRate(id, req.PenaltyRatePerDay)
	if err != nil {
		return registryError(c, err)
	}

	if !h.persist(c) {
		return nil
	}
	return c.JSON(http.StatusOK, toRentalRow(rental, time.Now().UTC()))
}

// DeleteRental handles DELETE /v1/rentals/:id. Rentals are leaf records, so
// removal has no preconditions.
func (h *Handler) DeleteRental(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Registry.RemoveRental(id); err != nil {
		return registryError(c, err)
	}
	if !h.persist(c) {
		return nil
	}
	return c.NoContent(http.StatusNoContent)
}
