package response_models

type InvoiceItem struct {
	Title    string `json:"title"`
	IconURL  string `json:"iconUrl"`
	Quantity int    `json:"quantity"`
}

// CreateInvoiceResponse carries everything the miniapp client needs to hand
// to the payment SDK: the locked terms plus display metadata.
type CreateInvoiceResponse struct {
	Invoice   string      `json:"invoice"`
	ID        string      `json:"id"`
	Recipient string      `json:"recipient"`
	Amount    string      `json:"amount"`
	Token     string      `json:"token"`
	Network   string      `json:"network"`
	Item      InvoiceItem `json:"item"`
	Test      string      `json:"test,omitempty"`
}
