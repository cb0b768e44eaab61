package economy

import (
	"fmt"
	"strings"

	"CampusHub/internal/model"
)

// CashbackPercent is the fixed reward rate on settled amounts.
const CashbackPercent = 10

// Cashback returns floor(amount * 10%) for a non-negative amount.
// Dividing first keeps it exact for any int.
func Cashback(amount int) int {
	return amount / (100 / CashbackPercent)
}

// Settlement is the outcome of SettleTransaction beyond the new snapshot.
type Settlement struct {
	InvoiceID       string
	BonesAwarded    int
	StreakTriggered bool
}

// SettleTransaction records a spend, pays cash-back and writes a PAID invoice in one step.
// It never debits a balance; the caller has already charged the underlying amount.
func (e *Engine) SettleTransaction(s model.State, userID string, amount int, source string, receipt *model.ReceiptMetadata) (model.State, Settlement, error) {
	if amount < 0 {
		return s, Settlement{}, fmt.Errorf("%w: negative amount %d", model.ErrInvalidArgument, amount)
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return s, Settlement{}, fmt.Errorf("%w: empty source label", model.ErrInvalidArgument)
	}
	if userID != s.User.ID {
		return s, Settlement{}, fmt.Errorf("%w: unknown user %q", model.ErrInvalidArgument, userID)
	}

	var res Settlement
	res.BonesAwarded = Cashback(amount)
	s, res.StreakTriggered = e.TriggerDailyStreak(s)

	s = e.record(s, model.TxSpend, amount, source)
	s = e.record(s, model.TxReward, res.BonesAwarded, "Cash-back: "+source)

	res.InvoiceID = e.NewID()
	var rcpt *model.ReceiptMetadata
	if receipt != nil {
		cp := *receipt
		rcpt = &cp
		if cp.TransactionID != "" {
			res.InvoiceID = cp.TransactionID
		}
	}
	s.Invoices = prepend(model.HubInvoice{
		ID:          res.InvoiceID,
		Target:      source,
		Amount:      amount,
		Status:      model.InvoicePaid,
		Date:        e.Now(),
		Category:    model.InvoiceCategorySystem,
		Description: "Settlement: " + source,
		Receipt:     rcpt,
	}, s.Invoices)

	s = earn(s, res.BonesAwarded)

	if res.BonesAwarded > 0 {
		s.Toast = model.Toast{
			Visible: true,
			Message: fmt.Sprintf("+%d BONES MINED", res.BonesAwarded),
			Amount:  res.BonesAwarded,
			Seq:     s.Toast.Seq + 1,
		}
	}

	s = e.notify(s, "PAYMENT_SETTLED",
		fmt.Sprintf("₹%d settled for %s. +%d bones cash-back.", amount, source, res.BonesAwarded),
		model.NotifySuccess, "SETTLEMENT", model.TagInvoices)
	return s, res, nil
}
