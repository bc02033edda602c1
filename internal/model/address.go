package model

import "strings"

// Address is a free-text postal address value object.  It has no identity of
// its own; a cinema owns exactly one embedded copy.
type Address struct {
	Region string `json:"region"` // region or federal subject
	City   string `json:"city"`   // city or town
	Street string `json:"street"` // street name
	House  string `json:"house"`  // house/building number, free text
}

// DisplayString joins the non-empty address parts with a comma so partially
// filled addresses still render without dangling separators.
func (a Address) DisplayString() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Region, a.City, a.Street, a.House} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
