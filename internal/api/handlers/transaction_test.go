package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lab-inventory-backend/internal/api/handlers"
	apperrors "lab-inventory-backend/internal/errors"
	"lab-inventory-backend/internal/mocks"
	"lab-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TransactionHandlerTestSuite defines the test suite for TransactionHandler
type TransactionHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTransactionSvc *mocks.MockTransactionServiceInterface
	handler            *handlers.TransactionHandler
	router             *gin.Engine
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTransactionSvc = mocks.NewMockTransactionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTransactionHandler(suite.mockTransactionSvc)

	suite.router = gin.New()
	suite.router.GET("/transactions", suite.handler.ListTransactions)
	suite.router.POST("/transactions", suite.handler.RecordTransaction)
	suite.router.GET("/items/:name/transactions", suite.handler.ListComponentTransactions)
}

func (suite *TransactionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TransactionHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) postJSON(url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultLimit() {
	records := []service.TransactionResponse{
		{
			ID:            uuid.New(),
			ComponentName: "Arduino Uno",
			ActorName:     "Jordan Rivera",
			Quantity:      5,
			Kind:          "borrow",
			Timestamp:     time.Now(),
		},
	}
	suite.mockTransactionSvc.EXPECT().ListRecent(50).Return(records, nil)

	w := suite.get("/transactions")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.TransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "borrow", string(got[0].Kind))
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ExplicitLimit() {
	suite.mockTransactionSvc.EXPECT().ListRecent(10).Return([]service.TransactionResponse{}, nil)

	w := suite.get("/transactions?limit=10")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), "[]", w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_NonNumericLimit() {
	// strconv failure yields 0; the service treats that as the default
	suite.mockTransactionSvc.EXPECT().ListRecent(0).Return([]service.TransactionResponse{}, nil)

	w := suite.get("/transactions?limit=lots")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_StorageError() {
	suite.mockTransactionSvc.EXPECT().
		ListRecent(50).
		Return(nil, apperrors.NewStorageError("list transactions", assert.AnError))

	w := suite.get("/transactions")

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Server Error")
}

// TestRecordTransaction_Success tests appending a manual ledger correction
func (suite *TransactionHandlerTestSuite) TestRecordTransaction_Success() {
	resp := &service.TransactionResponse{
		ID:            uuid.New(),
		ComponentName: "Arduino Uno",
		ActorName:     "Jordan Rivera",
		Quantity:      5,
		Kind:          "return",
	}
	suite.mockTransactionSvc.EXPECT().
		Record(gomock.Any()).
		DoAndReturn(func(req *service.RecordRequest) (*service.TransactionResponse, error) {
			assert.Equal(suite.T(), "Jordan Rivera", req.ActorName)
			assert.Equal(suite.T(), "Arduino Uno", req.Component)
			assert.Equal(suite.T(), 5, req.Quantity)
			assert.Equal(suite.T(), "return", string(req.Kind))
			return resp, nil
		})

	w := suite.postJSON("/transactions", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":5,"kind":"return"}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.TransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "return", string(got.Kind))
}

// TestRecordTransaction_InvalidKind tests rejecting an unknown kind
func (suite *TransactionHandlerTestSuite) TestRecordTransaction_InvalidKind() {
	suite.mockTransactionSvc.EXPECT().
		Record(gomock.Any()).
		Return(nil, apperrors.NewValidationError("kind", "kind must be borrow or return"))

	w := suite.postJSON("/transactions", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":5,"kind":"lend"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "kind")
}

// TestRecordTransaction_MalformedBody tests rejecting unparseable JSON
func (suite *TransactionHandlerTestSuite) TestRecordTransaction_MalformedBody() {
	w := suite.postJSON("/transactions", `{"quantity":"five"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid request body")
}

func (suite *TransactionHandlerTestSuite) TestListComponentTransactions_Success() {
	records := []service.TransactionResponse{
		{ID: uuid.New(), ComponentName: "Arduino Uno", Kind: "borrow", Quantity: 5},
		{ID: uuid.New(), ComponentName: "Arduino Uno", Kind: "return", Quantity: 3},
	}
	suite.mockTransactionSvc.EXPECT().ListForComponent("Arduino Uno").Return(records, nil)

	w := suite.get("/items/Arduino%20Uno/transactions")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.TransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *TransactionHandlerTestSuite) TestListComponentTransactions_NotFound() {
	suite.mockTransactionSvc.EXPECT().
		ListForComponent("Flux Capacitor").
		Return(nil, apperrors.NewNotFoundError("component", "Flux Capacitor"))

	w := suite.get("/items/Flux%20Capacitor/transactions")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestTransactionHandlerTestSuite runs the test suite
func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
