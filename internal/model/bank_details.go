package model

import "fmt"

// BankDetails is a value object holding the payment coordinates of an
// organization.
type BankDetails struct {
	BankName      string `json:"bankName"`      // name of the servicing bank
	AccountNumber string `json:"accountNumber"` // settlement account number, kept as a string
}

// DisplayString formats the details for contact listings.
func (b BankDetails) DisplayString() string {
	return fmt.Sprintf("%s, account %s", b.BankName, b.AccountNumber)
}
