package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the internal record behind an external identity. Exactly one row
// exists per Clerk subject; it is created lazily on first authenticated
// request.
type User struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ClerkID          string    `gorm:"column:clerk_id;size:255;uniqueIndex:idx_users_clerk_id;not null"`
	Email            string    `gorm:"column:email;size:255;not null"`
	Nickname         *string   `gorm:"column:nickname;size:100"`
	AvatarURL        *string   `gorm:"column:avatar_url"`
	ExperiencePoints int       `gorm:"column:experience_points;not null;default:0"`
	CurrentRank      string    `gorm:"column:current_rank;size:50"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`

	// Relationships
	Categories []Category `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tags       []Tag      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks      []TaskItem `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }
