package repository

import (
	"lab-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManagerInterface runs a function inside a single database transaction.
// The borrow/return workflow uses it to commit the stock adjustment and the
// ledger record together or not at all.
type TxManagerInterface interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) ComponentRepositoryInterface
	Create(component *models.Component) error
	List() ([]models.Component, error)
	GetByID(id uuid.UUID) (*models.Component, error)
	// GetForUpdate retrieves a component by ID holding a row lock until the
	// surrounding transaction ends.
	GetForUpdate(id uuid.UUID) (*models.Component, error)
	GetByName(name string) (*models.Component, error)
	// DecrementQuantity applies a guarded single-statement decrement and
	// reports whether any row matched. A false result means the component
	// lacked sufficient stock at the moment of the update.
	DecrementQuantity(id uuid.UUID, quantity int) (bool, error)
	IncrementQuantity(id uuid.UUID, quantity int) error
}

// TransactionRepositoryInterface defines the interface for transaction repository operations
type TransactionRepositoryInterface interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) TransactionRepositoryInterface
	Create(transaction *models.Transaction) error
	ListRecent(limit int) ([]models.Transaction, error)
	ListByComponent(componentID uuid.UUID) ([]models.Transaction, error)
	// OutstandingQuantity derives the borrowed-but-not-yet-returned amount
	// for a component from the ledger.
	OutstandingQuantity(componentID uuid.UUID) (int, error)
}
