package payment

import "fmt"

// PartialPaymentError reports a payment that reached the ledger while its
// booking could not be marked paid and no retry could be queued. The ledger
// entry stays unsettled until Settle succeeds.
type PartialPaymentError struct {
	PaymentID  string
	BookingID  string
	Cause      error
	EnqueueErr error
}

func (e *PartialPaymentError) Error() string {
	return fmt.Sprintf("payment %s recorded but booking %s not marked paid: %v (retry not queued: %v)",
		e.PaymentID, e.BookingID, e.Cause, e.EnqueueErr)
}
