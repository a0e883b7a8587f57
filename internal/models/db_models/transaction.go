package db_models

import (
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPaid   TransactionStatus = "paid"
	TxnStatusFailed TransactionStatus = "failed"
)

// Transaction is the append-only ledger: exactly one row per resolved
// intent, written in the same database transaction as the status flip.
// Rows are never mutated or deleted.
type Transaction struct {
	BaseModel
	SenderAlienID    string `gorm:"index"`
	RecipientAddress string
	TxHash           *string // absent on failed payments
	Status           TransactionStatus `gorm:"index"`

	// Terms copied from the intent, not from the webhook payload.
	Amount  string
	Token   string `gorm:"size:16"`
	Network string `gorm:"size:32"`

	Invoice string  `gorm:"index;not null"`
	Test    *string // "true" for sandbox payments, NULL otherwise

	// Verbatim copy of the verified webhook body, kept for audit.
	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
