package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

// InventoryHandlerTestSuite defines the test suite for InventoryHandler
type InventoryHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockInventorySvc *mocks.MockInventoryServiceInterface
	handler          *handlers.InventoryHandler
	router           *gin.Engine
}

func (suite *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInventorySvc = mocks.NewMockInventoryServiceInterface(suite.ctrl)
	suite.handler = handlers.NewInventoryHandler(suite.mockInventorySvc)

	suite.router = gin.New()
	suite.router.GET("/items", suite.handler.ListItems)
	suite.router.GET("/items/:name", suite.handler.GetItem)
	suite.router.POST("/borrow", suite.handler.Borrow)
	suite.router.POST("/return", suite.handler.Return)
}

func (suite *InventoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InventoryHandlerTestSuite) postJSON(url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *InventoryHandlerTestSuite) TestListItems_Success() {
	components := []service.ComponentResponse{
		{ID: uuid.New(), Name: "Arduino Uno", Quantity: 20},
		{ID: uuid.New(), Name: "Breadboard 830pt", Quantity: 50},
	}
	suite.mockInventorySvc.EXPECT().ListComponents().Return(components, nil)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.ComponentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Arduino Uno", got[0].Name)
}

func (suite *InventoryHandlerTestSuite) TestListItems_StorageError() {
	suite.mockInventorySvc.EXPECT().
		ListComponents().
		Return(nil, apperrors.NewStorageError("list components", assert.AnError))

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	// Internal detail must not leak
	assert.NotContains(suite.T(), w.Body.String(), assert.AnError.Error())
	assert.Contains(suite.T(), w.Body.String(), "Server Error")
}

func (suite *InventoryHandlerTestSuite) TestGetItem_NotFound() {
	suite.mockInventorySvc.EXPECT().
		GetComponentByName("Flux Capacitor").
		Return(nil, apperrors.NewNotFoundError("component", "Flux Capacitor"))

	req := httptest.NewRequest(http.MethodGet, "/items/Flux%20Capacitor", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *InventoryHandlerTestSuite) TestBorrow_Success() {
	resp := &service.ActionResponse{
		Message:        "borrow recorded successfully",
		RemainingStock: 15,
		Component:      service.ComponentResponse{Name: "Arduino Uno", Quantity: 15},
	}
	suite.mockInventorySvc.EXPECT().
		Borrow(gomock.Any()).
		DoAndReturn(func(req *service.BorrowReturnRequest) (*service.ActionResponse, error) {
			assert.Equal(suite.T(), "Jordan Rivera", req.ActorName)
			assert.Equal(suite.T(), "RA2111003010042", req.RegistrationNumber)
			assert.Equal(suite.T(), "Arduino Uno", req.Component)
			assert.Equal(suite.T(), 5, req.Quantity)
			return resp, nil
		})

	w := suite.postJSON("/borrow", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":5}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ActionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 15, got.RemainingStock)
	assert.Equal(suite.T(), "borrow recorded successfully", got.Message)
}

func (suite *InventoryHandlerTestSuite) TestBorrow_InsufficientStock() {
	suite.mockInventorySvc.EXPECT().
		Borrow(gomock.Any()).
		Return(nil, &apperrors.InsufficientStockError{Component: "Arduino Uno", Requested: 25, Available: 20})

	w := suite.postJSON("/borrow", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":25}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "insufficient stock")
	assert.Contains(suite.T(), w.Body.String(), "available 20")
}

func (suite *InventoryHandlerTestSuite) TestBorrow_ValidationError() {
	suite.mockInventorySvc.EXPECT().
		Borrow(gomock.Any()).
		Return(nil, apperrors.NewValidationError("Quantity", `failed on "gt"`))

	w := suite.postJSON("/borrow", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":-1}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *InventoryHandlerTestSuite) TestBorrow_UnknownComponent() {
	suite.mockInventorySvc.EXPECT().
		Borrow(gomock.Any()).
		Return(nil, apperrors.NewNotFoundError("component", "Flux Capacitor"))

	w := suite.postJSON("/borrow", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Flux Capacitor","quantity":5}`)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *InventoryHandlerTestSuite) TestBorrow_MalformedBody() {
	w := suite.postJSON("/borrow", `{"quantity":"five"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid request body")
}

func (suite *InventoryHandlerTestSuite) TestReturn_Success() {
	resp := &service.ActionResponse{
		Message:        "return recorded successfully",
		RemainingStock: 18,
	}
	suite.mockInventorySvc.EXPECT().Return(gomock.Any()).Return(resp, nil)

	w := suite.postJSON("/return", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":3}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ActionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 18, got.RemainingStock)
}

func (suite *InventoryHandlerTestSuite) TestReturn_ExceedsOutstanding() {
	suite.mockInventorySvc.EXPECT().
		Return(gomock.Any()).
		Return(nil, &apperrors.ReturnExceedsOutstandingError{Component: "Arduino Uno", Requested: 10, Outstanding: 2})

	w := suite.postJSON("/return", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":10}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "return exceeds outstanding")
}

func (suite *InventoryHandlerTestSuite) TestBorrow_PartialFailure() {
	suite.mockInventorySvc.EXPECT().
		Borrow(gomock.Any()).
		Return(nil, &apperrors.PartialFailureError{Component: "Arduino Uno", Err: assert.AnError})

	w := suite.postJSON("/borrow", `{"name":"Jordan Rivera","registrationNumber":"RA2111003010042","component":"Arduino Uno","quantity":5}`)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "partial failure")
	assert.NotContains(suite.T(), w.Body.String(), assert.AnError.Error())
}

// TestInventoryHandlerTestSuite runs the test suite
func TestInventoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}
