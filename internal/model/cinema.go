package model

import "fmt"

// Cinema represents a movie theatre that rents films from the catalog.
// It embeds the shared Organization attributes and owns its postal address.
//
// Fields:
//  Organization     – shared counterparty attributes (id, name, phone, bank, legal).
//  Address          – postal address of the venue, owned value object.
//  SeatsCount       – seating capacity, positive integer.
//  DirectorFullName – full name of the cinema director.
//  OwnerFullName    – full name of the cinema owner.
type Cinema struct {
	Organization
	Address          Address `json:"address"`
	SeatsCount       int     `json:"seatsCount"`
	DirectorFullName string  `json:"directorFullName"`
	OwnerFullName    string  `json:"ownerFullName"`
}

// ContactInfo implements Contactable for generic organization listings.
func (c *Cinema) ContactInfo() string {
	return fmt.Sprintf("Cinema: %s; address: %s; phone: %s", c.Name, c.Address.DisplayString(), c.Phone)
}
