package models

// WriteResult summarizes a single-document write for API responses.
type WriteResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"insertedId,omitempty"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
	DeletedCount  int64  `json:"deletedCount"`
}

// SettlementPayload is the queued request to finish recording a payment.
type SettlementPayload struct {
	PaymentID string `json:"paymentId"`
}
