// Package ledger applies balance mutations and records them: every change
// to a balance leaves a statement entry on the account, and every transfer
// attempt leaves one record in the global audit log.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"netbank/models"
)

// Outcome reports what a transfer applied. Sender and Receiver are value
// copies of the post-transfer records for response shaping; Receiver is nil
// when the payee was not a registered account.
type Outcome struct {
	Sender   models.Customer
	Receiver *models.Customer
	Record   models.TransferRecord
}

// ApplyTransfer debits the sender and, when the payee resolved, credits the
// receiver, prepending matching DR/CR statement entries carrying the
// post-operation balances, then appends one audit record either way.
//
// Preconditions are the caller's job: amount > 0, amount <= sender.Balance,
// PIN verified, and receiver may only be nil on the UPI rail. Callers run
// this inside a store update so the whole mutation is all-or-nothing.
func ApplyTransfer(doc *models.Document, sender, receiver *models.Customer, toRaw string, amount decimal.Decimal, mode string, now time.Time) Outcome {
	date := models.FormatDate(now)

	payee := toRaw
	if receiver != nil {
		payee = receiver.Name
	}
	sender.Balance = sender.Balance.Sub(amount)
	prepend(sender, models.Transaction{
		Date:    date,
		Desc:    "Transfer to " + payee,
		Mode:    mode,
		Amount:  amount,
		Type:    models.TypeDebit,
		Balance: sender.Balance,
		Status:  models.StatusSuccess,
	})

	if receiver != nil {
		receiver.Balance = receiver.Balance.Add(amount)
		prepend(receiver, models.Transaction{
			Date:    date,
			Desc:    "Received from " + sender.Name,
			Mode:    mode,
			Amount:  amount,
			Type:    models.TypeCredit,
			Balance: receiver.Balance,
			Status:  models.StatusSuccess,
		})
	}

	to := toRaw
	if receiver != nil {
		to = receiver.AccNo
	}
	record := models.TransferRecord{
		ID:     uuid.NewString(),
		Date:   date,
		From:   sender.AccNo,
		To:     to,
		Amount: amount,
		Mode:   mode,
		Status: models.StatusSuccess,
	}
	doc.TransferLog = append(doc.TransferLog, record)

	out := Outcome{Sender: *sender, Record: record}
	if receiver != nil {
		cp := *receiver
		out.Receiver = &cp
	}
	return out
}

// Credit adds amount to the account and prepends a CR entry, used for the
// signup bonus and admin-created accounts.
func Credit(c *models.Customer, amount decimal.Decimal, desc string, now time.Time) {
	c.Balance = c.Balance.Add(amount)
	prepend(c, models.Transaction{
		Date:    models.FormatDate(now),
		Desc:    desc,
		Mode:    models.ModeCredit,
		Amount:  amount,
		Type:    models.TypeCredit,
		Balance: c.Balance,
		Status:  models.StatusSuccess,
	})
}

// Adjust moves the balance to newBalance and records the delta as an
// adjustment entry, so administrative edits stay visible on the statement.
// A zero delta records nothing.
func Adjust(c *models.Customer, newBalance decimal.Decimal, now time.Time) {
	delta := newBalance.Sub(c.Balance)
	if delta.IsZero() {
		return
	}
	typ := models.TypeCredit
	if delta.IsNegative() {
		typ = models.TypeDebit
	}
	c.Balance = newBalance
	prepend(c, models.Transaction{
		Date:    models.FormatDate(now),
		Desc:    "Balance Adjustment",
		Mode:    models.ModeCredit,
		Amount:  delta.Abs(),
		Type:    typ,
		Balance: c.Balance,
		Status:  models.StatusSuccess,
	})
}

// prepend keeps statements most-recent-first, matching how the UI renders
// them.
func prepend(c *models.Customer, txn models.Transaction) {
	c.Txns = append([]models.Transaction{txn}, c.Txns...)
}
