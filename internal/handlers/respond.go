package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumit03062/Task-Tracker/internal/apperrors"
)

// respondError maps the service failure taxonomy onto HTTP statuses.
// NotFound and Forbidden stay distinct; unexpected causes are logged
// and surfaced as an opaque 500.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperrors.Error

	if !errors.As(err, &appErr) {
		log.Printf("Unclassified error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	switch appErr.Kind {
	case apperrors.KindInvalidInput, apperrors.KindLimitExceeded:
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": appErr.Message})
	case apperrors.KindNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": appErr.Message})
	case apperrors.KindForbidden:
		ctx.JSON(http.StatusForbidden, gin.H{"success": false, "message": appErr.Message})
	default:
		log.Printf("Unexpected error: %v", appErr.Err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}
