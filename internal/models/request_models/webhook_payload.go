package request_models

import "encoding/json"

// FlexibleAmount accepts both string and numeric JSON encodings and
// normalizes to a string. The processor has been observed sending both.
type FlexibleAmount string

func (a *FlexibleAmount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = FlexibleAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = FlexibleAmount(n.String())
	return nil
}

const (
	WebhookStatusFinalized = "finalized"
	WebhookStatusFailed    = "failed"
)

// WebhookPayload is the settlement notice sent by the payment processor.
// It is unmarshalled only after the raw body passed signature verification.
// Amount/token/network here are informational: the ledger always records
// the terms locked on the intent.
type WebhookPayload struct {
	Invoice   string         `json:"invoice" validate:"required"`
	Recipient string         `json:"recipient" validate:"required"`
	TxHash    *string        `json:"txHash,omitempty"`
	Status    string         `json:"status" validate:"required,oneof=finalized failed"`
	Amount    FlexibleAmount `json:"amount,omitempty"`
	Token     string         `json:"token,omitempty"`
	Network   string         `json:"network,omitempty"`
	Test      bool           `json:"test,omitempty"`
}
