package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/omnical-dev/omnical/internal/models"
)

type TagCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	ColorHex string `json:"color_hex"`
}

type TagResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"color_hex"`
}

type CategoryCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	ColorHex  string `json:"color_hex"`
	ParentID  *uint  `json:"parent_id"`
	IsDefault bool   `json:"is_default"`
}

type CategoryResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ColorHex  string `json:"color_hex"`
	ParentID  *uint  `json:"parent_id"`
	IsDefault bool   `json:"is_default"`
}

// CatalogService covers the owner-scoped tag and category surfaces.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateTag(ctx context.Context, user *models.User, req TagCreateRequest) (TagResponse, error) {
	tag := models.Tag{
		UserID:   user.ID,
		Name:     req.Name,
		ColorHex: req.ColorHex,
	}

	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return TagResponse{}, fmt.Errorf("create tag: %w", err)
	}

	return TagResponse{ID: tag.ID, Name: tag.Name, ColorHex: tag.ColorHex}, nil
}

func (s *CatalogService) ListTags(ctx context.Context, user *models.User) ([]TagResponse, error) {
	var tags []models.Tag

	err := s.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("name ASC").
		Find(&tags).Error

	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	responses := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, TagResponse{ID: tag.ID, Name: tag.Name, ColorHex: tag.ColorHex})
	}
	return responses, nil
}

// CreateCategory validates that a referenced parent belongs to the same
// user before linking into the tree.
func (s *CatalogService) CreateCategory(ctx context.Context, user *models.User, req CategoryCreateRequest) (CategoryResponse, error) {
	if req.ParentID != nil {
		var parent models.Category
		err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", *req.ParentID, user.ID).
			First(&parent).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryResponse{}, ErrCategoryNotOwned
		}
		if err != nil {
			return CategoryResponse{}, fmt.Errorf("check parent category: %w", err)
		}
	}

	category := models.Category{
		UserID:    user.ID,
		Name:      req.Name,
		ColorHex:  req.ColorHex,
		ParentID:  req.ParentID,
		IsDefault: req.IsDefault,
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return CategoryResponse{}, fmt.Errorf("create category: %w", err)
	}

	return toCategoryResponse(category), nil
}

func (s *CatalogService) ListCategories(ctx context.Context, user *models.User) ([]CategoryResponse, error) {
	var categories []models.Category

	err := s.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("name ASC").
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	return responses, nil
}

func toCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		ColorHex:  category.ColorHex,
		ParentID:  category.ParentID,
		IsDefault: category.IsDefault,
	}
}
