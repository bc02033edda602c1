package model

import "fmt"

// LegalInfo is a value object with the legal registration data of an
// organization.
type LegalInfo struct {
	Inn          string `json:"inn"`          // tax identification number, kept as a string to preserve leading zeros
	LegalAddress string `json:"legalAddress"` // registered legal address, free text
}

// DisplayString formats the legal data for contact listings.
func (l LegalInfo) DisplayString() string {
	return fmt.Sprintf("INN %s, legal address: %s", l.Inn, l.LegalAddress)
}
