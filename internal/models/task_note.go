package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskNote is a free-text note on a task. Notes are soft-deleted.
type TaskNote struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	TaskID    uuid.UUID `gorm:"column:task_id;type:uuid;not null;index"`
	Note      string    `gorm:"column:note"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (TaskNote) TableName() string { return "task_notes" }
