package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// InventoryServiceInterface defines the interface for the inventory ledger
type InventoryServiceInterface interface {
	ListComponents() ([]ComponentResponse, error)
	GetComponentByName(name string) (*ComponentResponse, error)
	Borrow(req *BorrowReturnRequest) (*ActionResponse, error)
	Return(req *BorrowReturnRequest) (*ActionResponse, error)
}

// TransactionServiceInterface defines the interface for the transaction recorder
type TransactionServiceInterface interface {
	Record(req *RecordRequest) (*TransactionResponse, error)
	ListRecent(limit int) ([]TransactionResponse, error)
	ListForComponent(componentName string) ([]TransactionResponse, error)
	OutstandingQuantity(componentName string) (int, error)
}
