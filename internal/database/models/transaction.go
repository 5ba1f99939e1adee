package models

import "github.com/google/uuid"

// TransactionKind defines the kinds of ledger entries
type TransactionKind string

const (
	TransactionKindBorrow TransactionKind = "borrow"
	TransactionKindReturn TransactionKind = "return"
)

// IsValid checks if the TransactionKind is valid
func (k TransactionKind) IsValid() bool {
	switch k {
	case TransactionKindBorrow, TransactionKindReturn:
		return true
	}
	return false
}

// Transaction is one immutable borrow or return entry in the audit ledger.
// Rows are only ever inserted; nothing in the codebase updates or deletes
// them. ComponentID is the authoritative reference; ComponentName is a
// denormalized display cache taken from the component row at record time.
type Transaction struct {
	BaseModel
	ComponentID        uuid.UUID       `json:"component_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentName      string          `json:"component_name" gorm:"not null;size:200"`
	ActorName          string          `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	RegistrationNumber string          `json:"registration_number" gorm:"not null;size:40" validate:"required,min=1,max=40"`
	Quantity           int             `json:"quantity" gorm:"not null" validate:"required,gt=0"`
	Kind               TransactionKind `json:"kind" gorm:"type:varchar(20);not null;index" validate:"required"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
