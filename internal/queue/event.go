// Package queue defines the rental lifecycle events published to the message
// broker and the fire-and-forget publisher that delivers them. Events carry
// denormalized names/titles so downstream consumers do not need to read the
// catalog file.
package queue

// RentalCreatedEvent is published when a rental agreement is opened.
type RentalCreatedEvent struct {
	RentalID      int     `json:"rental_id"`
	CinemaID      int     `json:"cinema_id"`
	CinemaName    string  `json:"cinema_name"`
	FilmID        int     `json:"film_id"`
	FilmTitle     string  `json:"film_title"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	PaymentAmount float64 `json:"payment_amount"`
	CreatedAt     string  `json:"created_at"`
}

// RentalClosedEvent is published when a film is returned.
type RentalClosedEvent struct {
	RentalID      int     `json:"rental_id"`
	ReturnDate    string  `json:"return_date"`
	PenaltyAmount float64 `json:"penalty_amount"`
	ClosedAt      string  `json:"closed_at"`
}
