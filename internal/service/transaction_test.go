package service_test

import (
	"testing"

	"lab-inventory-backend/internal/database/models"
	apperrors "lab-inventory-backend/internal/errors"
	"lab-inventory-backend/internal/mocks"
	"lab-inventory-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TransactionServiceTestSuite defines the test suite for TransactionService
type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *mocks.MockTransactionRepositoryInterface
	mockComponentRepo   *mocks.MockComponentRepositoryInterface
	transactionService  *service.TransactionService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTransactionRepo = mocks.NewMockTransactionRepositoryInterface(suite.ctrl)
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.transactionService = service.NewTransactionService(
		suite.mockTransactionRepo,
		suite.mockComponentRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRecord tests appending a ledger entry
func (suite *TransactionServiceTestSuite) TestRecord() {
	component := &models.Component{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Servo Motor SG90",
		Quantity:  40,
	}
	req := &service.RecordRequest{
		ActorName:          "Jordan Rivera",
		RegistrationNumber: "RA2111003010042",
		Component:          "Servo Motor SG90",
		Quantity:           4,
		Kind:               models.TransactionKindBorrow,
	}

	suite.mockComponentRepo.EXPECT().
		GetByName("Servo Motor SG90").
		Return(component, nil).
		Times(1)

	suite.mockTransactionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.Transaction) error {
			assert.Equal(suite.T(), component.ID, record.ComponentID)
			assert.Equal(suite.T(), "Servo Motor SG90", record.ComponentName)
			return nil
		}).
		Times(1)

	response, err := suite.transactionService.Record(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, response.Quantity)
	assert.Equal(suite.T(), models.TransactionKindBorrow, response.Kind)
}

// TestRecordInvalidKind tests that an unknown kind tag is rejected
func (suite *TransactionServiceTestSuite) TestRecordInvalidKind() {
	req := &service.RecordRequest{
		ActorName:          "Jordan Rivera",
		RegistrationNumber: "RA2111003010042",
		Component:          "Servo Motor SG90",
		Quantity:           4,
		Kind:               models.TransactionKind("lend"),
	}

	response, err := suite.transactionService.Record(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRecordNonPositiveQuantity tests that zero quantity fails validation
func (suite *TransactionServiceTestSuite) TestRecordNonPositiveQuantity() {
	req := &service.RecordRequest{
		ActorName:          "Jordan Rivera",
		RegistrationNumber: "RA2111003010042",
		Component:          "Servo Motor SG90",
		Quantity:           0,
		Kind:               models.TransactionKindBorrow,
	}

	response, err := suite.transactionService.Record(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestListRecent tests the newest-first listing with the default limit
func (suite *TransactionServiceTestSuite) TestListRecent() {
	records := []models.Transaction{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ComponentName: "Arduino Uno", Quantity: 5, Kind: models.TransactionKindBorrow},
		{BaseModel: models.BaseModel{ID: uuid.New()}, ComponentName: "Arduino Uno", Quantity: 3, Kind: models.TransactionKindReturn},
	}

	suite.mockTransactionRepo.EXPECT().
		ListRecent(50).
		Return(records, nil).
		Times(1)

	responses, err := suite.transactionService.ListRecent(0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), models.TransactionKindBorrow, responses[0].Kind)
}

// TestListRecentCapsLimit tests that oversized limits are clamped
func (suite *TransactionServiceTestSuite) TestListRecentCapsLimit() {
	suite.mockTransactionRepo.EXPECT().
		ListRecent(500).
		Return([]models.Transaction{}, nil).
		Times(1)

	responses, err := suite.transactionService.ListRecent(10000)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), responses)
}

// TestListForComponent tests per-component history resolution by name
func (suite *TransactionServiceTestSuite) TestListForComponent() {
	component := &models.Component{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Arduino Uno",
		Quantity:  20,
	}
	records := []models.Transaction{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ComponentID: component.ID, Quantity: 5, Kind: models.TransactionKindBorrow},
	}

	suite.mockComponentRepo.EXPECT().
		GetByName("Arduino Uno").
		Return(component, nil).
		Times(1)

	suite.mockTransactionRepo.EXPECT().
		ListByComponent(component.ID).
		Return(records, nil).
		Times(1)

	responses, err := suite.transactionService.ListForComponent("Arduino Uno")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), component.ID, responses[0].ComponentID)
}

// TestListForComponentNotFound tests the unknown-component path
func (suite *TransactionServiceTestSuite) TestListForComponentNotFound() {
	suite.mockComponentRepo.EXPECT().
		GetByName("Flux Capacitor").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	responses, err := suite.transactionService.ListForComponent("Flux Capacitor")

	assert.Nil(suite.T(), responses)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestOutstandingQuantity tests deriving the outstanding amount
func (suite *TransactionServiceTestSuite) TestOutstandingQuantity() {
	component := &models.Component{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Arduino Uno",
		Quantity:  15,
	}

	suite.mockComponentRepo.EXPECT().
		GetByName("Arduino Uno").
		Return(component, nil).
		Times(1)

	suite.mockTransactionRepo.EXPECT().
		OutstandingQuantity(component.ID).
		Return(5, nil).
		Times(1)

	outstanding, err := suite.transactionService.OutstandingQuantity("Arduino Uno")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, outstanding)
}

// TestTransactionServiceTestSuite runs the test suite
func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
