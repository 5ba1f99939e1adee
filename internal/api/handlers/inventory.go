package handlers

import (
	"net/http"

	"lab-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles HTTP requests for the component catalog and the
// borrow/return workflow
type InventoryHandler struct {
	inventoryService service.InventoryServiceInterface
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// ListItems handles GET /items
// @Summary List components
// @Description Get all catalog components with their stock levels, ordered by name
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {array} service.ComponentResponse "Successfully retrieved components"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /items [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	components, err := h.inventoryService.ListComponents()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// GetItem handles GET /items/:name
// @Summary Get a component
// @Description Get a single component by its unique name
// @Tags inventory
// @Accept json
// @Produce json
// @Param name path string true "Component name"
// @Success 200 {object} service.ComponentResponse "Successfully retrieved component"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /items/{name} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	component, err := h.inventoryService.GetComponentByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// Borrow handles POST /borrow
// @Summary Borrow a component
// @Description Decrease a component's stock and append a borrow record to the ledger
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body service.BorrowReturnRequest true "Borrow request"
// @Success 201 {object} service.ActionResponse "Borrow recorded successfully"
// @Failure 400 {object} ErrorResponse "Missing fields, invalid quantity or insufficient stock"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /borrow [post]
func (h *InventoryHandler) Borrow(c *gin.Context) {
	var req service.BorrowReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.inventoryService.Borrow(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Return handles POST /return
// @Summary Return a component
// @Description Increase a component's stock and append a return record to the ledger
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body service.BorrowReturnRequest true "Return request"
// @Success 201 {object} service.ActionResponse "Return recorded successfully"
// @Failure 400 {object} ErrorResponse "Missing fields, invalid quantity or return exceeding outstanding"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /return [post]
func (h *InventoryHandler) Return(c *gin.Context) {
	var req service.BorrowReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.inventoryService.Return(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
