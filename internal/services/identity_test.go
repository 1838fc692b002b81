package services

import (
	"context"
	"errors"
	"testing"

	"github.com/omnical-dev/omnical/internal/auth"
	"github.com/omnical-dev/omnical/internal/models"
)

func TestResolveCreatesUserOnFirstSight(t *testing.T) {
	db := newTestDB(t)
	resolver := NewIdentityResolver(db)

	principal := auth.Principal{
		Subject: "user_2abc",
		Email:   "kia@example.com",
		Name:    "Kia",
		Picture: "https://img.example.com/kia.png",
	}

	user, err := resolver.Resolve(context.Background(), principal)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if user.ClerkID != "user_2abc" {
		t.Errorf("clerk id = %q, want user_2abc", user.ClerkID)
	}
	if user.Email != "kia@example.com" {
		t.Errorf("email = %q", user.Email)
	}
	if user.ExperiencePoints != 0 || user.CurrentRank != RankJunior {
		t.Errorf("new user should start at 0 xp / Junior, got %d / %q", user.ExperiencePoints, user.CurrentRank)
	}
	if user.Nickname == nil || *user.Nickname != "Kia" {
		t.Errorf("nickname not stored from claims")
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}
}

func TestResolveReturnsExistingUserUnchanged(t *testing.T) {
	db := newTestDB(t)
	resolver := NewIdentityResolver(db)

	first, err := resolver.Resolve(context.Background(), auth.Principal{
		Subject: "user_repeat",
		Email:   "original@example.com",
	})
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}

	// Changed claims on a later login must not touch the stored record.
	second, err := resolver.Resolve(context.Background(), auth.Principal{
		Subject: "user_repeat",
		Email:   "changed@example.com",
		Name:    "New Name",
	})
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}

	if second.ID != first.ID {
		t.Error("repeat resolve returned a different user")
	}
	if second.Email != "original@example.com" {
		t.Errorf("email re-synced to %q; create-once contract broken", second.Email)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}
}

func TestResolvePlaceholderEmail(t *testing.T) {
	db := newTestDB(t)
	resolver := NewIdentityResolver(db)

	user, err := resolver.Resolve(context.Background(), auth.Principal{Subject: "user_noemail"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if user.Email != placeholderEmail {
		t.Errorf("email = %q, want placeholder %q", user.Email, placeholderEmail)
	}
	if user.Nickname != nil || user.AvatarURL != nil {
		t.Error("absent claims should store as null, not empty strings")
	}
}

func TestResolveMissingSubject(t *testing.T) {
	db := newTestDB(t)
	resolver := NewIdentityResolver(db)

	_, err := resolver.Resolve(context.Background(), auth.Principal{Email: "sub.less@example.com"})
	if !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("err = %v, want ErrMissingIdentity", err)
	}
}

func TestResolveNoPrincipal(t *testing.T) {
	db := newTestDB(t)
	resolver := NewIdentityResolver(db)

	_, err := resolver.Resolve(context.Background(), auth.Principal{})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}
