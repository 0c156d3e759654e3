package domain

import "time"

const PaymentPaid = "Paid"

type Payment struct {
	ID        int64
	OrderID   int64
	Status    string
	Method    string
	Reference string
	BankName  string
	BankAccount string
	PaidAt    *time.Time
}

func (p *Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}

// Settled reports whether an order is settled to the seller: every payment
// record attached to it reads Paid. An order with no payments is not settled.
func Settled(payments []*Payment) bool {
	if len(payments) == 0 {
		return false
	}
	for _, p := range payments {
		if !p.IsPaid() {
			return false
		}
	}
	return true
}

// PaymentSettlement is the outcome of one payment update within a settlement
// batch. Settlement is best-effort: updates are independent calls and a
// partial failure leaves a mixed state the caller has to surface.
type PaymentSettlement struct {
	PaymentID int64
	Err       error
}
