package service

import (
	"errors"
	"fmt"

	"lab-inventory-backend/internal/database/models"
	apperrors "lab-inventory-backend/internal/errors"
	"lab-inventory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService owns the component catalog and is the only code path
// allowed to mutate quantity-on-hand. Borrow and Return commit the stock
// adjustment and the ledger record in one database transaction.
type InventoryService struct {
	components   repository.ComponentRepositoryInterface
	transactions repository.TransactionRepositoryInterface
	tx           repository.TxManagerInterface
	validator    *validator.Validate
}

// Ensure InventoryService implements InventoryServiceInterface
var _ InventoryServiceInterface = (*InventoryService)(nil)

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	components repository.ComponentRepositoryInterface,
	transactions repository.TransactionRepositoryInterface,
	tx repository.TxManagerInterface,
	validator *validator.Validate,
) *InventoryService {
	return &InventoryService{
		components:   components,
		transactions: transactions,
		tx:           tx,
		validator:    validator,
	}
}

// ComponentResponse represents a single catalog entry in API responses
type ComponentResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Quantity          int       `json:"quantity"`
	Location          string    `json:"location,omitempty"`
	UnitPrice         float64   `json:"unit_price,omitempty"`
	LowStockThreshold int       `json:"low_stock_threshold,omitempty"`
	LowStock          bool      `json:"low_stock,omitempty"`
}

// BorrowReturnRequest is the payload for POST /borrow and POST /return
type BorrowReturnRequest struct {
	ActorName          string `json:"name" validate:"required,min=1,max=200"`
	RegistrationNumber string `json:"registrationNumber" validate:"required,min=1,max=40"`
	Component          string `json:"component" validate:"required,min=1,max=200"`
	Quantity           int    `json:"quantity" validate:"required,gt=0"`
}

// ActionResponse is returned for an accepted borrow or return
type ActionResponse struct {
	Message        string              `json:"message"`
	RemainingStock int                 `json:"remainingStock"`
	Component      ComponentResponse   `json:"component"`
	Transaction    TransactionResponse `json:"transaction"`
}

// ListComponents retrieves all components ordered by name ascending
func (s *InventoryService) ListComponents() ([]ComponentResponse, error) {
	components, err := s.components.List()
	if err != nil {
		return nil, apperrors.NewStorageError("list components", err)
	}

	responses := make([]ComponentResponse, len(components))
	for i, c := range components {
		responses[i] = toComponentResponse(&c)
	}
	return responses, nil
}

// GetComponentByName retrieves a single component by its unique name
func (s *InventoryService) GetComponentByName(name string) (*ComponentResponse, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "component name is required")
	}

	component, err := s.components.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("component", name)
		}
		return nil, apperrors.NewStorageError("get component", err)
	}
	return responsePtr(toComponentResponse(component)), nil
}

// Borrow validates the request, decrements stock and appends a borrow record
func (s *InventoryService) Borrow(req *BorrowReturnRequest) (*ActionResponse, error) {
	return s.apply(req, models.TransactionKindBorrow)
}

// Return validates the request, increments stock and appends a return record
func (s *InventoryService) Return(req *BorrowReturnRequest) (*ActionResponse, error) {
	return s.apply(req, models.TransactionKindReturn)
}

// apply runs the borrow/return workflow. The guarded quantity update and the
// ledger insert share one transaction, so a record is never created without
// its stock adjustment and vice versa.
func (s *InventoryService) apply(req *BorrowReturnRequest, kind models.TransactionKind) (*ActionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	component, err := s.components.GetByName(req.Component)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("component", req.Component)
		}
		return nil, apperrors.NewStorageError("get component", err)
	}

	var (
		updated *models.Component
		record  *models.Transaction
		applied bool
	)

	txErr := s.tx.Transaction(func(tx *gorm.DB) error {
		components := s.components.WithTx(tx)
		transactions := s.transactions.WithTx(tx)

		switch kind {
		case models.TransactionKindBorrow:
			ok, err := components.DecrementQuantity(component.ID, req.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// Re-read inside the transaction so the reported quantity is
				// the one the guard actually saw, not the pre-transaction read.
				current, err := components.GetByID(component.ID)
				if err != nil {
					return err
				}
				return &apperrors.InsufficientStockError{
					Component: component.Name,
					Requested: req.Quantity,
					Available: current.Quantity,
				}
			}
		case models.TransactionKindReturn:
			// Lock the component row first: the cap check is a read followed
			// by an unguarded increment, so concurrent returns for the same
			// component must serialize or both would pass against the same
			// stale sum.
			if _, err := components.GetForUpdate(component.ID); err != nil {
				return err
			}
			outstanding, err := transactions.OutstandingQuantity(component.ID)
			if err != nil {
				return err
			}
			if req.Quantity > outstanding {
				return &apperrors.ReturnExceedsOutstandingError{
					Component:   component.Name,
					Requested:   req.Quantity,
					Outstanding: outstanding,
				}
			}
			if err := components.IncrementQuantity(component.ID, req.Quantity); err != nil {
				return err
			}
		default:
			return apperrors.NewValidationError("kind", fmt.Sprintf("invalid transaction kind %q", kind))
		}

		record = &models.Transaction{
			ComponentID:        component.ID,
			ComponentName:      component.Name,
			ActorName:          req.ActorName,
			RegistrationNumber: req.RegistrationNumber,
			Quantity:           req.Quantity,
			Kind:               kind,
		}
		if err := transactions.Create(record); err != nil {
			return err
		}

		updated, err = components.GetByID(component.ID)
		if err != nil {
			return err
		}

		applied = true
		return nil
	})
	if txErr != nil {
		switch {
		case apperrors.IsInsufficientStock(txErr),
			apperrors.IsReturnExceedsOutstanding(txErr),
			apperrors.IsValidation(txErr):
			return nil, txErr
		case applied:
			// All writes were acknowledged but the commit failed; stock and
			// ledger may have diverged at the driver level.
			return nil, &apperrors.PartialFailureError{Component: component.Name, Err: txErr}
		default:
			return nil, apperrors.NewStorageError(string(kind), txErr)
		}
	}

	return &ActionResponse{
		Message:        fmt.Sprintf("%s recorded successfully", kind),
		RemainingStock: updated.Quantity,
		Component:      toComponentResponse(updated),
		Transaction:    toTransactionResponse(record),
	}, nil
}

// toComponentResponse converts a Component model to API response
func toComponentResponse(c *models.Component) ComponentResponse {
	return ComponentResponse{
		ID:                c.ID,
		Name:              c.Name,
		Quantity:          c.Quantity,
		Location:          c.Location,
		UnitPrice:         c.UnitPrice,
		LowStockThreshold: c.LowStockThreshold,
		LowStock:          c.IsLowStock(),
	}
}

func responsePtr(r ComponentResponse) *ComponentResponse {
	return &r
}

// validationError converts a validator failure into the typed taxonomy,
// keeping the first offending field for the client message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewValidationError(verrs[0].Field(), fmt.Sprintf("failed on %q", verrs[0].Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
