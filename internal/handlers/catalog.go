package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omnical-dev/omnical/internal/models"
	"github.com/omnical-dev/omnical/internal/services"
	"github.com/omnical-dev/omnical/internal/utils"
)

type CatalogHandler struct {
	identity *services.IdentityResolver
	catalog  *services.CatalogService
}

func NewCatalogHandler(identity *services.IdentityResolver, catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{identity: identity, catalog: catalog}
}

func (h *CatalogHandler) CreateTag(ctx *gin.Context) {
	var req services.TagCreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.resolveUser(ctx)

	if err != nil {
		return
	}

	tag, err := h.catalog.CreateTag(ctx.Request.Context(), user, req)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, tag)
}

func (h *CatalogHandler) ListTags(ctx *gin.Context) {
	user, err := h.resolveUser(ctx)

	if err != nil {
		return
	}

	tags, err := h.catalog.ListTags(ctx.Request.Context(), user)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

func (h *CatalogHandler) CreateCategory(ctx *gin.Context) {
	var req services.CategoryCreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.resolveUser(ctx)

	if err != nil {
		return
	}

	category, err := h.catalog.CreateCategory(ctx.Request.Context(), user, req)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) ListCategories(ctx *gin.Context) {
	user, err := h.resolveUser(ctx)

	if err != nil {
		return
	}

	categories, err := h.catalog.ListCategories(ctx.Request.Context(), user)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) resolveUser(ctx *gin.Context) (*models.User, error) {
	principal, err := utils.CurrentPrincipal(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, err
	}

	user, err := h.identity.Resolve(ctx.Request.Context(), principal)

	if err != nil {
		respondServiceError(ctx, err)
		return nil, err
	}

	return user, nil
}
