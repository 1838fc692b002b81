package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omnical-dev/omnical/internal/auth"
	"github.com/omnical-dev/omnical/internal/models"
)

const placeholderEmail = "unknown@example.com"

// IdentityResolver maps an authenticated principal to its user row,
// creating the row on first sight. Repeat visits return the stored record
// untouched; profile claims are never re-synced after creation.
type IdentityResolver struct {
	db *gorm.DB
}

func NewIdentityResolver(db *gorm.DB) *IdentityResolver {
	return &IdentityResolver{db: db}
}

func (r *IdentityResolver) Resolve(ctx context.Context, principal auth.Principal) (*models.User, error) {
	if principal == (auth.Principal{}) {
		return nil, ErrUnauthenticated
	}

	if principal.Subject == "" {
		return nil, ErrMissingIdentity
	}

	var user models.User

	err := r.db.WithContext(ctx).Where("clerk_id = ?", principal.Subject).First(&user).Error

	if err == nil {
		return &user, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	email := principal.Email
	if email == "" {
		email = placeholderEmail
	}

	now := time.Now().UTC()
	user = models.User{
		ID:               uuid.New(),
		ClerkID:          principal.Subject,
		Email:            email,
		Nickname:         optionalString(principal.Name),
		AvatarURL:        optionalString(principal.Picture),
		ExperiencePoints: 0,
		CurrentRank:      RankJunior,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
