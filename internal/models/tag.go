package models

import "github.com/google/uuid"

type Tag struct {
	ID       uint      `gorm:"column:id;primaryKey"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Name     string    `gorm:"column:name;size:50;not null"`
	ColorHex string    `gorm:"column:color_hex;size:7"`

	// Relationships
	TaskTags []TaskTag `gorm:"foreignKey:TagID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (Tag) TableName() string { return "tags" }

// TaskTag links tasks and tags. Rows are removed when either side is
// deleted.
type TaskTag struct {
	TaskID uuid.UUID `gorm:"column:task_id;type:uuid;primaryKey"`
	TagID  uint      `gorm:"column:tag_id;primaryKey"`
}

func (TaskTag) TableName() string { return "task_tags" }
