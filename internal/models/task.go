package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/omnical-dev/omnical/internal/types"
)

// TaskItem is a calendar entry or todo owned by a single user. DueDate is a
// calendar date distinct from the StartTime/EndTime timestamps; recurring
// and sub-tasks point at their parent via ParentTaskID.
type TaskItem struct {
	ID             uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	UserID         uuid.UUID   `gorm:"column:user_id;type:uuid;not null;index:idx_tasks_user_duedate,priority:1;index:idx_tasks_user_starttime,priority:1"`
	CategoryID     *uint       `gorm:"column:category_id;index:idx_tasks_category"`
	Title          string      `gorm:"column:title;size:255;not null"`
	Description    *string     `gorm:"column:description"`
	StartTime      *time.Time  `gorm:"column:start_time;index:idx_tasks_user_starttime,priority:2"`
	EndTime        *time.Time  `gorm:"column:end_time"`
	DueDate        *types.Date `gorm:"column:due_date;type:date;index:idx_tasks_user_duedate,priority:2"`
	IsAllDay       bool        `gorm:"column:is_all_day;not null;default:false"`
	Priority       int         `gorm:"column:priority;not null;default:4"`
	Status         string      `gorm:"column:status;size:20"`
	RecurrenceRule *string     `gorm:"column:recurrence_rule;size:255"`
	ParentTaskID   *uuid.UUID  `gorm:"column:parent_task_id;type:uuid"`
	IsCompleted    bool        `gorm:"column:is_completed;not null;default:false"`
	CompletedAt    *time.Time  `gorm:"column:completed_at"`
	CreatedAt      time.Time   `gorm:"column:created_at"`
	UpdatedAt      time.Time   `gorm:"column:updated_at"`

	// Relationships
	Category   *Category  `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	ParentTask *TaskItem  `gorm:"foreignKey:ParentTaskID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	ChildTasks []TaskItem `gorm:"foreignKey:ParentTaskID"`
	Notes      []TaskNote `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	TaskTags   []TaskTag  `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (TaskItem) TableName() string { return "tasks" }
