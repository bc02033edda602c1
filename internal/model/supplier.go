package model

import "fmt"

// Supplier represents a film distribution company.  It carries only the
// shared Organization attributes; films reference their supplier by id.
type Supplier struct {
	Organization
}

// ContactInfo implements Contactable for generic organization listings.
func (s *Supplier) ContactInfo() string {
	return fmt.Sprintf("Supplier: %s; phone: %s; %s; %s",
		s.Name, s.Phone, s.LegalInfo.DisplayString(), s.BankDetails.DisplayString())
}
