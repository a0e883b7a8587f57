package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"diamondstore/internal/infra"
	"diamondstore/internal/models/db_models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func pendingIntent(t *testing.T, db *gorm.DB, invoice string) *db_models.PaymentIntent {
	t.Helper()
	intent := &db_models.PaymentIntent{
		Invoice:          invoice,
		SenderAlienID:    "alien-1",
		RecipientAddress: "recipient-addr",
		Amount:           "1000000",
		Token:            "USDC",
		Network:          "solana",
		ProductID:        "diamonds-10",
		Status:           db_models.IntentStatusPending,
	}
	require.NoError(t, db.Create(intent).Error)
	return intent
}

func ledgerRow(intent *db_models.PaymentIntent, status db_models.TransactionStatus) *db_models.Transaction {
	return &db_models.Transaction{
		SenderAlienID:    intent.SenderAlienID,
		RecipientAddress: intent.RecipientAddress,
		Status:           status,
		Amount:           intent.Amount,
		Token:            intent.Token,
		Network:          intent.Network,
		Invoice:          intent.Invoice,
		Payload:          []byte(`{}`),
	}
}

func TestFinalizeIntentTransitionsOnce(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	intent := pendingIntent(t, db, "inv-once")

	won, err := repo.FinalizeIntent(intent.Invoice, db_models.IntentStatusCompleted, ledgerRow(intent, db_models.TxnStatusPaid), ctx)
	require.NoError(t, err)
	assert.True(t, won)

	// Redelivery loses the conditional update and must not write again.
	won, err = repo.FinalizeIntent(intent.Invoice, db_models.IntentStatusCompleted, ledgerRow(intent, db_models.TxnStatusPaid), ctx)
	require.NoError(t, err)
	assert.False(t, won)

	var stored db_models.PaymentIntent
	require.NoError(t, db.Where("invoice = ?", intent.Invoice).First(&stored).Error)
	assert.Equal(t, db_models.IntentStatusCompleted, stored.Status)

	var count int64
	require.NoError(t, db.Model(&db_models.Transaction{}).Where("invoice = ?", intent.Invoice).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFinalizeIntentDoesNotReopenTerminalIntent(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	intent := pendingIntent(t, db, "inv-terminal")

	won, err := repo.FinalizeIntent(intent.Invoice, db_models.IntentStatusFailed, ledgerRow(intent, db_models.TxnStatusFailed), ctx)
	require.NoError(t, err)
	require.True(t, won)

	// A later "finalized" delivery must not flip failed -> completed.
	won, err = repo.FinalizeIntent(intent.Invoice, db_models.IntentStatusCompleted, ledgerRow(intent, db_models.TxnStatusPaid), ctx)
	require.NoError(t, err)
	assert.False(t, won)

	var stored db_models.PaymentIntent
	require.NoError(t, db.Where("invoice = ?", intent.Invoice).First(&stored).Error)
	assert.Equal(t, db_models.IntentStatusFailed, stored.Status)
}

func TestFinalizeIntentRollsBackStatusOnLedgerFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	intent := pendingIntent(t, db, "inv-atomic")

	// Occupy a primary key so the ledger insert inside FinalizeIntent fails
	// after the status update already ran.
	conflictID := uuid.New()
	existing := ledgerRow(intent, db_models.TxnStatusPaid)
	existing.ID = conflictID
	existing.Invoice = "inv-other"
	require.NoError(t, db.Create(existing).Error)

	failing := ledgerRow(intent, db_models.TxnStatusPaid)
	failing.ID = conflictID

	won, err := repo.FinalizeIntent(intent.Invoice, db_models.IntentStatusCompleted, failing, ctx)
	require.Error(t, err)
	assert.False(t, won)

	// The transaction rolled back: intent must still be pending with no
	// ledger row of its own.
	var stored db_models.PaymentIntent
	require.NoError(t, db.Where("invoice = ?", intent.Invoice).First(&stored).Error)
	assert.Equal(t, db_models.IntentStatusPending, stored.Status)

	var count int64
	require.NoError(t, db.Model(&db_models.Transaction{}).Where("invoice = ?", intent.Invoice).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetIntentByInvoiceMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)

	intent, err := repo.GetIntentByInvoice("inv-missing", context.Background())
	require.NoError(t, err)
	assert.Nil(t, intent)
}

func TestListTransactionsByAlienIDFiltersAndOrders(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	older := &db_models.Transaction{SenderAlienID: "alien-1", Invoice: "inv-a", Status: db_models.TxnStatusPaid, Amount: "1", Payload: []byte(`{}`)}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour).Unix()).Error)

	newer := &db_models.Transaction{SenderAlienID: "alien-1", Invoice: "inv-b", Status: db_models.TxnStatusFailed, Amount: "2", Payload: []byte(`{}`)}
	require.NoError(t, db.Create(newer).Error)

	other := &db_models.Transaction{SenderAlienID: "alien-2", Invoice: "inv-c", Status: db_models.TxnStatusPaid, Amount: "3", Payload: []byte(`{}`)}
	require.NoError(t, db.Create(other).Error)

	transactions, err := repo.ListTransactionsByAlienID("alien-1", ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "inv-b", transactions[0].Invoice)
	assert.Equal(t, "inv-a", transactions[1].Invoice)
}
