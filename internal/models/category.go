package models

import "github.com/google/uuid"

// Category groups tasks for a user. Categories form a tree via ParentID;
// deleting a parent detaches its children instead of cascading.
type Category struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Name      string    `gorm:"column:name;size:100;not null"`
	ColorHex  string    `gorm:"column:color_hex;size:7"`
	ParentID  *uint     `gorm:"column:parent_id"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false"`

	// Relationships
	Parent   *Category  `gorm:"foreignKey:ParentID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Children []Category `gorm:"foreignKey:ParentID"`
	Tasks    []TaskItem `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}

func (Category) TableName() string { return "categories" }
