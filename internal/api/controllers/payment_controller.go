package controllers

import (
	"github.com/gin-gonic/gin"
	"io"
	"net/http"

	"diamondstore/internal/catalog"
	"diamondstore/internal/models/request_models"
	"diamondstore/internal/models/response_models"
	"diamondstore/internal/services"
	"diamondstore/pkg/utils"
)

// SignatureHeader carries the processor's hex-encoded Ed25519 signature over
// the raw webhook body.
const SignatureHeader = "X-Webhook-Signature"

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	catalog        *catalog.Catalog
}

func NewPaymentController(paymentService services.PaymentServiceInterface, productCatalog *catalog.Catalog) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		catalog:        productCatalog,
	}
}

// CreateInvoice godoc
// @Summary Create a payment intent for a diamond product
// @Description Issues a fresh invoice with the product's terms locked in
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateInvoiceRequest true "Create Invoice Request"
// @Success 200 {object} response_models.CreateInvoiceResponse
// @Security BearerAuth
// @Router /api/invoices [post]
func (p *PaymentController) CreateInvoice(c *gin.Context) {

	alienID := c.GetString("alien_id")
	if alienID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authorization token")
		return
	}

	var request request_models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	invoice, err := p.paymentService.CreateInvoice(alienID, request.ProductID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// HandleWebhook receives settlement notices from the payment processor. The
// body must stay untouched until the service has verified the signature over
// the exact bytes, so it is read raw here and never bound.
func (p *PaymentController) HandleWebhook(c *gin.Context) {

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	signature := c.GetHeader(SignatureHeader)

	if err := p.paymentService.ProcessWebhook(rawBody, signature, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (p *PaymentController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.ProductListResponse{
		Products:     toProductResponses(p.catalog.Products()),
		TestProducts: toProductResponses(p.catalog.TestProducts()),
	})
}

func (p *PaymentController) ListTransactions(c *gin.Context) {

	alienID := c.GetString("alien_id")
	if alienID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authorization token")
		return
	}

	transactions, err := p.paymentService.ListTransactions(alienID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func toProductResponses(products []catalog.Product) []response_models.ProductResponse {
	responses := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, response_models.ProductResponse{
			ID:        product.ID,
			Name:      product.Name,
			IconURL:   product.IconURL,
			Diamonds:  product.Diamonds,
			Amount:    product.Amount,
			Token:     product.Token,
			Network:   product.Network,
			Recipient: product.RecipientAddress,
			Test:      product.Test,
		})
	}
	return responses
}
