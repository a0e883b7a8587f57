package response_models

type TransactionResponse struct {
	ID        string  `json:"id"`
	TxHash    *string `json:"txHash"`
	Status    string  `json:"status"`
	Amount    string  `json:"amount"`
	Token     string  `json:"token"`
	Invoice   string  `json:"invoice"`
	Test      *string `json:"test"`
	CreatedAt string  `json:"createdAt"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
