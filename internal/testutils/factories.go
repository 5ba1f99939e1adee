package testutils

import (
	"time"

	"lab-inventory-backend/internal/database/models"

	"github.com/google/uuid"
)

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component with default values
func (f *ComponentFactory) Create() *models.Component {
	return &models.Component{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:              "Arduino Uno",
		Quantity:          20,
		Location:          "Shelf A1",
		UnitPrice:         450.0,
		LowStockThreshold: 5,
	}
}

// WithName sets a custom name for the component
func (f *ComponentFactory) WithName(name string) *models.Component {
	component := f.Create()
	component.Name = name
	return component
}

// WithQuantity sets a custom quantity for the component
func (f *ComponentFactory) WithQuantity(quantity int) *models.Component {
	component := f.Create()
	component.Quantity = quantity
	return component
}

// TransactionFactory provides methods to create test Transaction data
type TransactionFactory struct{}

// NewTransactionFactory creates a new TransactionFactory
func NewTransactionFactory() *TransactionFactory {
	return &TransactionFactory{}
}

// Create creates a test borrow Transaction referencing the given component
func (f *TransactionFactory) Create(component *models.Component) *models.Transaction {
	return &models.Transaction{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ComponentID:        component.ID,
		ComponentName:      component.Name,
		ActorName:          "Jordan Rivera",
		RegistrationNumber: "RA2111003010042",
		Quantity:           5,
		Kind:               models.TransactionKindBorrow,
	}
}

// WithKind sets a custom kind for the transaction
func (f *TransactionFactory) WithKind(component *models.Component, kind models.TransactionKind) *models.Transaction {
	transaction := f.Create(component)
	transaction.Kind = kind
	return transaction
}
