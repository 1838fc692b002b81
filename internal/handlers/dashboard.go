package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omnical-dev/omnical/internal/services"
	"github.com/omnical-dev/omnical/internal/utils"
)

type DashboardHandler struct {
	identity  *services.IdentityResolver
	dashboard *services.DashboardService
}

func NewDashboardHandler(identity *services.IdentityResolver, dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{identity: identity, dashboard: dashboard}
}

// GetSummary returns the caller's rank, experience and today/total task
// counts.
func (h *DashboardHandler) GetSummary(ctx *gin.Context) {
	principal, err := utils.CurrentPrincipal(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := h.identity.Resolve(ctx.Request.Context(), principal)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	summary, err := h.dashboard.Summary(ctx.Request.Context(), user)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
