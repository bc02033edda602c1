package model

import "fmt"

// Organization bundles the attributes shared by every counterparty in the
// catalog (cinemas and film suppliers).  It is embedded by Cinema and
// Supplier rather than subclassed, so both kinds serialize the shared
// fields at the top level of their JSON records.
//
// Fields:
//  ID          – identifier, unique within the owning collection.
//  Name        – display name of the organization.
//  Phone       – contact phone number, free text.
//  BankDetails – payment details, owned value object.
//  LegalInfo   – tax/legal registration data, owned value object.
type Organization struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	BankDetails BankDetails `json:"bankDetails"`
	LegalInfo   LegalInfo   `json:"legalInfo"`
}

// Contactable is implemented by every organization kind that can appear in a
// generic contact listing.  It replaces inheritance-based polymorphism: the
// caller only needs the formatted contact line, not the concrete type.
type Contactable interface {
	ContactInfo() string
}

// Label returns a short human-readable identification of the organization,
// used in log lines and derived display rows.
func (o Organization) Label() string {
	return fmt.Sprintf("%s (id %d)", o.Name, o.ID)
}
