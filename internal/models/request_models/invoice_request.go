package request_models

type CreateInvoiceRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
