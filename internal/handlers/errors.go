package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omnical-dev/omnical/internal/services"
)

// respondServiceError maps a service error to its HTTP status. Anything
// unrecognized is a 500 and gets logged with its real cause.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrMissingIdentity):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	case errors.Is(err, services.ErrTagNotOwned):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "One or more tag ids do not belong to you"})
	case errors.Is(err, services.ErrCategoryNotOwned):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Parent category does not belong to you"})
	case errors.Is(err, services.ErrMissingAPIKey):
		log.Printf("Holiday lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Holiday API is not configured"})
	case errors.Is(err, services.ErrUpstream):
		log.Printf("Holiday upstream failure: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Holiday provider is unavailable"})
	default:
		log.Printf("Internal error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
