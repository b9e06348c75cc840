package models

import "time"

// PaymentTransaction records one charge or refund attempt against a
// payment processor. Transactions live in memory only.
type PaymentTransaction struct {
	ReferenceID string    `json:"reference_id"`
	Kind        string    `json:"kind"` // "charge" or "refund"
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Success     bool      `json:"success"`
	CreatedAt   time.Time `json:"created_at"`
}
