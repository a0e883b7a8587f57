package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"diamondstore/internal/catalog"
	"diamondstore/internal/models/db_models"
	"diamondstore/internal/models/request_models"
	"diamondstore/internal/models/response_models"
	"diamondstore/internal/repositories"
	"diamondstore/pkg/utils"
)

// storageTimeout bounds every storage round trip so a stuck database call
// cannot pin a webhook or invoice request forever.
const storageTimeout = 5 * time.Second

type PaymentConfig struct {
	// WebhookPublicKey is the processor's hex-encoded Ed25519 public key.
	WebhookPublicKey string
}

type PaymentServiceInterface interface {
	CreateInvoice(alienID string, productID string, ctx context.Context) (*response_models.CreateInvoiceResponse, error)
	ProcessWebhook(rawBody []byte, signatureHex string, ctx context.Context) error
	ListTransactions(alienID string, ctx context.Context) (*response_models.TransactionListResponse, error)
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepositoryInterface
	catalog     *catalog.Catalog
	cfg         PaymentConfig
	validate    *validator.Validate
}

func NewPaymentService(paymentRepo repositories.PaymentRepositoryInterface, productCatalog *catalog.Catalog, cfg PaymentConfig) PaymentServiceInterface {
	return &PaymentService{
		paymentRepo: paymentRepo,
		catalog:     productCatalog,
		cfg:         cfg,
		validate:    validator.New(),
	}
}

// CreateInvoice issues a fresh payment intent for the given product. Every
// call mints a new invoice id, so retrying a purchase creates a new intent
// rather than reviving an old one. The product's terms are copied onto the
// intent verbatim: that copy is the price lock, later catalog edits do not
// touch issued invoices.
func (p *PaymentService) CreateInvoice(alienID string, productID string, ctx context.Context) (*response_models.CreateInvoiceResponse, error) {

	product, ok := p.catalog.Find(productID)
	if !ok {
		return nil, utils.ErrInvalidProduct
	}

	invoice := fmt.Sprintf("inv-%s", uuid.New().String())

	intent := &db_models.PaymentIntent{
		Invoice:          invoice,
		SenderAlienID:    alienID,
		RecipientAddress: product.RecipientAddress,
		Amount:           product.Amount,
		Token:            product.Token,
		Network:          product.Network,
		ProductID:        product.ID,
		Status:           db_models.IntentStatusPending,
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if err := p.paymentRepo.CreateIntent(intent, ctx); err != nil {
		log.Printf("create intent for product %s: %v", product.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateInvoiceResponse{
		Invoice:   intent.Invoice,
		ID:        intent.ID.String(),
		Recipient: intent.RecipientAddress,
		Amount:    intent.Amount,
		Token:     intent.Token,
		Network:   intent.Network,
		Item: response_models.InvoiceItem{
			Title:    product.Name,
			IconURL:  product.IconURL,
			Quantity: product.Diamonds,
		},
		Test: product.Test,
	}, nil
}

// ProcessWebhook reconciles a settlement notice from the payment processor
// against the matching intent. Order matters: the signature is checked over
// the raw bytes before anything is parsed, the payload schema is checked
// before any lookup, and the terminal-status check makes redelivery a no-op.
// The ledger row records the terms locked on the intent, not whatever the
// payload claims.
func (p *PaymentService) ProcessWebhook(rawBody []byte, signatureHex string, ctx context.Context) error {

	if signatureHex == "" {
		return utils.ErrMissingSignature
	}

	if !utils.VerifyWebhookSignature(p.cfg.WebhookPublicKey, signatureHex, rawBody) {
		return utils.ErrInvalidSignature
	}

	var payload request_models.WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return utils.ErrInvalidPayload
	}
	if err := p.validate.Struct(payload); err != nil {
		return utils.ErrInvalidPayload
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	intent, err := p.paymentRepo.GetIntentByInvoice(payload.Invoice, ctx)
	if err != nil {
		log.Printf("lookup intent %s: %v", payload.Invoice, err)
		return utils.ErrDatabaseError
	}
	if intent == nil {
		// Never create intents from webhook data: an invoice the issuer
		// didn't mint is either a forgery or a processor-side bug.
		return utils.ErrInvoiceNotFound
	}

	if intent.Status != db_models.IntentStatusPending {
		// Already processed: acknowledge without side effects.
		return nil
	}

	intentStatus := db_models.IntentStatusFailed
	ledgerStatus := db_models.TxnStatusFailed
	if payload.Status == request_models.WebhookStatusFinalized {
		intentStatus = db_models.IntentStatusCompleted
		ledgerStatus = db_models.TxnStatusPaid
	}

	var testMarker *string
	if payload.Test {
		marker := "true"
		testMarker = &marker
	}

	txn := &db_models.Transaction{
		SenderAlienID:    intent.SenderAlienID,
		RecipientAddress: payload.Recipient,
		TxHash:           payload.TxHash,
		Status:           ledgerStatus,
		Amount:           intent.Amount,
		Token:            intent.Token,
		Network:          intent.Network,
		Invoice:          payload.Invoice,
		Test:             testMarker,
		Payload:          rawBody,
	}

	won, err := p.paymentRepo.FinalizeIntent(payload.Invoice, intentStatus, txn, ctx)
	if err != nil {
		log.Printf("finalize intent %s: %v", payload.Invoice, err)
		return utils.ErrDatabaseError
	}
	if !won {
		// Lost the race against a concurrent delivery; the winner already
		// wrote the ledger row, so this delivery acknowledges as a no-op.
		return nil
	}

	return nil
}

func (p *PaymentService) ListTransactions(alienID string, ctx context.Context) (*response_models.TransactionListResponse, error) {

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	transactions, err := p.paymentRepo.ListTransactionsByAlienID(alienID, ctx)
	if err != nil {
		log.Printf("list transactions for %s: %v", alienID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		responses = append(responses, response_models.TransactionResponse{
			ID:        txn.ID.String(),
			TxHash:    txn.TxHash,
			Status:    string(txn.Status),
			Amount:    txn.Amount,
			Token:     txn.Token,
			Invoice:   txn.Invoice,
			Test:      txn.Test,
			CreatedAt: time.Unix(txn.CreatedAt, 0).UTC().Format(time.RFC3339),
		})
	}

	return &response_models.TransactionListResponse{Transactions: responses}, nil
}
