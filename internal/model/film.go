package model

import "errors"

// ErrNegativeCost is returned by ChangePrice when the proposed purchase cost
// is below zero.
var ErrNegativeCost = errors.New("purchase cost cannot be negative")

// Film represents a title purchased from a supplier and offered for rental.
//
// Fields:
//  ID              – identifier, unique within the film collection.
//  Title           – film title.
//  Category        – genre/category, free text.
//  ScriptAuthor    – script author full name.
//  Director        – director full name.
//  ProducerCompany – producing company name.
//  ReleaseYear     – year of release (plausible range 1888..next year).
//  PurchaseCost    – non-negative cost the catalog owner paid for the film.
//  SupplierID      – id of the supplier the film was purchased from; every
//                    film has exactly one supplier.
type Film struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	ScriptAuthor    string  `json:"scriptAuthor"`
	Director        string  `json:"director"`
	ProducerCompany string  `json:"producerCompany"`
	ReleaseYear     int     `json:"releaseYear"`
	PurchaseCost    float64 `json:"purchaseCost"`
	SupplierID      int     `json:"supplierId"`
}

// ChangePrice updates the purchase cost, rejecting negative values.
func (f *Film) ChangePrice(newCost float64) error {
	if newCost < 0 {
		return ErrNegativeCost
	}
	f.PurchaseCost = newCost
	return nil
}
