package service

import (
	"errors"
	"time"

	"lab-inventory-backend/internal/database/models"
	apperrors "lab-inventory-backend/internal/errors"
	"lab-inventory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 500
)

// TransactionService reads and appends the borrow/return audit ledger.
// Records are immutable once written.
type TransactionService struct {
	transactions repository.TransactionRepositoryInterface
	components   repository.ComponentRepositoryInterface
	validator    *validator.Validate
}

// Ensure TransactionService implements TransactionServiceInterface
var _ TransactionServiceInterface = (*TransactionService)(nil)

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactions repository.TransactionRepositoryInterface,
	components repository.ComponentRepositoryInterface,
	validator *validator.Validate,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		components:   components,
		validator:    validator,
	}
}

// RecordRequest is the payload for appending a ledger entry directly
type RecordRequest struct {
	ActorName          string                 `json:"name" validate:"required,min=1,max=200"`
	RegistrationNumber string                 `json:"registrationNumber" validate:"required,min=1,max=40"`
	Component          string                 `json:"component" validate:"required,min=1,max=200"`
	Quantity           int                    `json:"quantity" validate:"required,gt=0"`
	Kind               models.TransactionKind `json:"kind" validate:"required"`
}

// TransactionResponse represents a single ledger entry in API responses
type TransactionResponse struct {
	ID                 uuid.UUID              `json:"id"`
	ComponentID        uuid.UUID              `json:"component_id"`
	ComponentName      string                 `json:"component_name"`
	ActorName          string                 `json:"name"`
	RegistrationNumber string                 `json:"registration_number"`
	Quantity           int                    `json:"quantity"`
	Kind               models.TransactionKind `json:"kind"`
	Timestamp          time.Time              `json:"timestamp"`
}

// Record validates and appends a ledger entry without touching stock. The
// borrow/return workflow does not go through here; it shares a database
// transaction with the stock adjustment instead.
func (s *TransactionService) Record(req *RecordRequest) (*TransactionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", "kind must be borrow or return")
	}

	component, err := s.components.GetByName(req.Component)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("component", req.Component)
		}
		return nil, apperrors.NewStorageError("get component", err)
	}

	record := &models.Transaction{
		ComponentID:        component.ID,
		ComponentName:      component.Name,
		ActorName:          req.ActorName,
		RegistrationNumber: req.RegistrationNumber,
		Quantity:           req.Quantity,
		Kind:               req.Kind,
	}
	if err := s.transactions.Create(record); err != nil {
		return nil, apperrors.NewStorageError("create transaction", err)
	}

	resp := toTransactionResponse(record)
	return &resp, nil
}

// ListRecent retrieves the newest ledger entries, capped at limit
func (s *TransactionService) ListRecent(limit int) ([]TransactionResponse, error) {
	if limit < 1 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records, err := s.transactions.ListRecent(limit)
	if err != nil {
		return nil, apperrors.NewStorageError("list transactions", err)
	}
	return toTransactionResponses(records), nil
}

// ListForComponent retrieves all ledger entries referencing a component.
// The component name is resolved against the catalog; the cached name on the
// records themselves is display-only.
func (s *TransactionService) ListForComponent(componentName string) ([]TransactionResponse, error) {
	component, err := s.components.GetByName(componentName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("component", componentName)
		}
		return nil, apperrors.NewStorageError("get component", err)
	}

	records, err := s.transactions.ListByComponent(component.ID)
	if err != nil {
		return nil, apperrors.NewStorageError("list component transactions", err)
	}
	return toTransactionResponses(records), nil
}

// OutstandingQuantity derives the borrowed-but-not-yet-returned amount for a
// component from the ledger
func (s *TransactionService) OutstandingQuantity(componentName string) (int, error) {
	component, err := s.components.GetByName(componentName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NewNotFoundError("component", componentName)
		}
		return 0, apperrors.NewStorageError("get component", err)
	}

	outstanding, err := s.transactions.OutstandingQuantity(component.ID)
	if err != nil {
		return 0, apperrors.NewStorageError("outstanding quantity", err)
	}
	return outstanding, nil
}

// toTransactionResponse converts a Transaction model to API response
func toTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 t.ID,
		ComponentID:        t.ComponentID,
		ComponentName:      t.ComponentName,
		ActorName:          t.ActorName,
		RegistrationNumber: t.RegistrationNumber,
		Quantity:           t.Quantity,
		Kind:               t.Kind,
		Timestamp:          t.CreatedAt,
	}
}

func toTransactionResponses(records []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(records))
	for i, r := range records {
		responses[i] = toTransactionResponse(&r)
	}
	return responses
}
