package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/omnical-dev/omnical/internal/models"
	"github.com/omnical-dev/omnical/internal/types"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own database name so state never leaks across tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.TaskItem{},
		&models.TaskNote{},
		&models.TaskTag{},
		&models.HolidayCache{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func newTestUser(t *testing.T, db *gorm.DB, clerkID string, xp int) *models.User {
	t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:               uuid.New(),
		ClerkID:          clerkID,
		Email:            clerkID + "@example.com",
		ExperiencePoints: xp,
		CurrentRank:      RankForExperience(xp),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return &user
}

func newTestTask(t *testing.T, db *gorm.DB, user *models.User, title string, due *types.Date, priority int, completed bool) models.TaskItem {
	t.Helper()

	now := time.Now().UTC()
	task := models.TaskItem{
		ID:          uuid.New(),
		UserID:      user.ID,
		Title:       title,
		DueDate:     due,
		Priority:    priority,
		Status:      types.StatusPending,
		IsCompleted: completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if completed {
		task.CompletedAt = &now
		task.Status = "Completed"
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("create test task: %v", err)
	}
	return task
}

func datePtr(d types.Date) *types.Date {
	return &d
}
