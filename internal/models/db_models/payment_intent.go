package db_models

type PaymentIntentStatus string

const (
	IntentStatusPending   PaymentIntentStatus = "pending"
	IntentStatusCompleted PaymentIntentStatus = "completed"
	IntentStatusFailed    PaymentIntentStatus = "failed"
)

// PaymentIntent is one invoice offered to a user. The terms (amount, token,
// network, recipient) are copied from the catalog at creation time and are
// never recomputed, so later catalog changes cannot affect an issued invoice.
// Status moves pending -> completed|failed exactly once and is then frozen.
type PaymentIntent struct {
	BaseModel
	Invoice          string `gorm:"uniqueIndex;not null"` // correlation key for the whole lifecycle
	SenderAlienID    string `gorm:"index;not null"`
	RecipientAddress string `gorm:"not null"`
	Amount           string `gorm:"not null"` // smallest-unit decimal string, never a float
	Token            string `gorm:"size:16"`
	Network          string `gorm:"size:32"`
	ProductID        string `gorm:"index"`

	Status PaymentIntentStatus `gorm:"index;default:pending"`
}
