package repository

import (
	"lab-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository handles database operations for the borrow/return
// ledger. The ledger is append-only: this type deliberately exposes no update
// or delete operations.
type TransactionRepository struct {
	db *gorm.DB
}

// Ensure TransactionRepository implements TransactionRepositoryInterface
var _ TransactionRepositoryInterface = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTx returns a transaction repository bound to the given transaction
func (r *TransactionRepository) WithTx(tx *gorm.DB) TransactionRepositoryInterface {
	if tx == nil {
		return r
	}
	return &TransactionRepository{db: tx}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}

// ListRecent retrieves records ordered by timestamp descending, capped at limit
func (r *TransactionRepository) ListRecent(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Order("created_at DESC").Limit(limit).Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListByComponent retrieves all records referencing a component
func (r *TransactionRepository) ListByComponent(componentID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Where("component_id = ?", componentID).Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// OutstandingQuantity sums borrows minus returns for a component
func (r *TransactionRepository) OutstandingQuantity(componentID uuid.UUID) (int, error) {
	var outstanding int
	err := r.db.Model(&models.Transaction{}).
		Where("component_id = ?", componentID).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN quantity ELSE -quantity END), 0)", models.TransactionKindBorrow).
		Scan(&outstanding).Error
	if err != nil {
		return 0, err
	}
	return outstanding, nil
}

// TxManager runs functions inside a single gorm transaction
type TxManager struct {
	db *gorm.DB
}

// Ensure TxManager implements TxManagerInterface
var _ TxManagerInterface = (*TxManager)(nil)

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction runs fn inside a database transaction
func (m *TxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
