package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer modes. ModeCredit is reserved for opening credits and
// administrative balance adjustments; customers transfer over the others.
const (
	ModeCredit = "CREDIT"
	ModeNEFT   = "NEFT"
	ModeIMPS   = "IMPS"
	ModeUPI    = "UPI"
)

// Transaction directions as rendered on statements.
const (
	TypeDebit  = "DR"
	TypeCredit = "CR"
)

// StatusSuccess is the only transaction status the system records.
const StatusSuccess = "Success"

// DateLayout is the dd/mm/yyyy format statements are rendered with.
const DateLayout = "02/01/2006"

// Customer is a bank account holder. The credential digests are persisted
// with the rest of the record; Sanitized strips them before a record is
// written to an HTTP response.
type Customer struct {
	AccNo        string          `json:"accNo"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	DOB          string          `json:"dob"`
	Addr         string          `json:"addr"`
	Balance      decimal.Decimal `json:"balance"`
	PINHash      string          `json:"pinHash,omitempty"`
	PasswordHash string          `json:"passwordHash,omitempty"`
	Lang         string          `json:"lang"`
	Status       string          `json:"status,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	Txns         []Transaction   `json:"txns"`
}

// Sanitized returns a copy safe to serialize to clients: the bcrypt digests
// are blanked and drop out of the JSON via omitempty.
func (c Customer) Sanitized() Customer {
	c.PINHash = ""
	c.PasswordHash = ""
	return c
}

// Transaction is one entry in a customer's statement, most recent first.
// Balance is the account balance immediately after the entry was applied.
type Transaction struct {
	Date    string          `json:"date"`
	Desc    string          `json:"desc"`
	Mode    string          `json:"mode"`
	Amount  decimal.Decimal `json:"amount"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	Status  string          `json:"status"`
}

// TransferRecord is one entry in the global transfer audit log. To keeps the
// raw input when the payee was not a known account (external UPI payment).
type TransferRecord struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode"`
	Status string          `json:"status"`
}

// Document is the entire persisted state: one JSON file rewritten in full on
// every mutation.
type Document struct {
	Customers   []*Customer      `json:"customers"`
	TransferLog []TransferRecord `json:"transferLog"`
	NextAccNo   int64            `json:"nextAccNo"`
}

// FormatDate renders a timestamp the way statements expect it.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
