package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"diamondstore/internal/models/db_models"
)

type PaymentRepositoryInterface interface {
	CreateIntent(intent *db_models.PaymentIntent, ctx context.Context) error
	GetIntentByInvoice(invoice string, ctx context.Context) (*db_models.PaymentIntent, error)
	FinalizeIntent(invoice string, status db_models.PaymentIntentStatus, txn *db_models.Transaction, ctx context.Context) (bool, error)
	ListTransactionsByAlienID(alienID string, ctx context.Context) ([]db_models.Transaction, error)
}

func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &PaymentRepository{db: db}
}

type PaymentRepository struct {
	db *gorm.DB
}

func (p PaymentRepository) CreateIntent(intent *db_models.PaymentIntent, ctx context.Context) error {
	return p.db.WithContext(ctx).Create(intent).Error
}

func (p PaymentRepository) GetIntentByInvoice(invoice string, ctx context.Context) (*db_models.PaymentIntent, error) {

	var intent db_models.PaymentIntent
	err := p.db.WithContext(ctx).Where("invoice = ?", invoice).First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}
	return &intent, nil
}

// FinalizeIntent moves a pending intent to a terminal status and appends the
// ledger row in one database transaction. The status flip is a conditional
// update keyed on status='pending': its affected-row count decides the race
// between concurrent deliveries of the same invoice. The loser gets
// won=false and must not write anything, which the rollback of the empty
// transaction guarantees. A failing ledger insert rolls the status flip back
// too, so an intent can never be terminal without its ledger row.
func (p PaymentRepository) FinalizeIntent(invoice string, status db_models.PaymentIntentStatus, txn *db_models.Transaction, ctx context.Context) (bool, error) {

	won := false
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.PaymentIntent{}).
			Where("invoice = ? AND status = ?", invoice, db_models.IntentStatusPending).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Already terminal: someone else finalized this invoice.
			return nil
		}

		won = true
		return tx.Create(txn).Error
	})
	if err != nil {
		return false, err
	}

	return won, nil
}

func (p PaymentRepository) ListTransactionsByAlienID(alienID string, ctx context.Context) ([]db_models.Transaction, error) {

	var transactions []db_models.Transaction
	err := p.db.WithContext(ctx).
		Where("sender_alien_id = ?", alienID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
