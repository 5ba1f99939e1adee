package handlers

import (
	"net/http"

	apperrors "lab-inventory-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps a typed service error to its HTTP status. Storage detail
// never reaches the client; only the stable per-kind messages do.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err),
		apperrors.IsInsufficientStock(err),
		apperrors.IsReturnExceedsOutstanding(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsPartialFailure(err):
		logrus.WithError(err).Error("partial failure: stock and ledger may have diverged")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "partial failure, please contact lab staff"})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
	}
}
