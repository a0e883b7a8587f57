package response_models

type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IconURL   string `json:"iconUrl"`
	Diamonds  int    `json:"diamonds"`
	Amount    string `json:"amount"`
	Token     string `json:"token"`
	Network   string `json:"network"`
	Recipient string `json:"recipient"`
	Test      string `json:"test,omitempty"`
}

type ProductListResponse struct {
	Products     []ProductResponse `json:"products"`
	TestProducts []ProductResponse `json:"testProducts"`
}
