package repository

import (
	"lab-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// Ensure ComponentRepository implements ComponentRepositoryInterface
var _ ComponentRepositoryInterface = (*ComponentRepository)(nil)

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// WithTx returns a component repository bound to the given transaction
func (r *ComponentRepository) WithTx(tx *gorm.DB) ComponentRepositoryInterface {
	if tx == nil {
		return r
	}
	return &ComponentRepository{db: tx}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// List retrieves all components ordered by name ascending
func (r *ComponentRepository) List() ([]models.Component, error) {
	var components []models.Component
	err := r.db.Order("name ASC").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetForUpdate retrieves a component by ID holding a row lock until the
// surrounding transaction ends. Serializes read-then-write sequences on the
// same component; only meaningful on a repository bound via WithTx.
func (r *ComponentRepository) GetForUpdate(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByName retrieves a component by its unique name. Exact match; the name
// column carries a unique index.
func (r *ComponentRepository) GetByName(name string) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// DecrementQuantity decrements the quantity-on-hand in a single guarded
// statement. The WHERE clause keeps quantity from ever going negative under
// concurrent borrows; RowsAffected == 0 means insufficient stock.
func (r *ComponentRepository) DecrementQuantity(id uuid.UUID, quantity int) (bool, error) {
	res := r.db.Model(&models.Component{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementQuantity increments the quantity-on-hand in a single statement
func (r *ComponentRepository) IncrementQuantity(id uuid.UUID, quantity int) error {
	return r.db.Model(&models.Component{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", quantity)).Error
}
