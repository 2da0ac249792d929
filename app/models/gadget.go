package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle state of a gadget.
type Status string

const (
	StatusAvailable      Status = "Available"
	StatusDeployed       Status = "Deployed"
	StatusDestroyed      Status = "Destroyed"
	StatusDecommissioned Status = "Decommissioned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusDeployed, StatusDestroyed, StatusDecommissioned:
		return true
	}
	return false
}

// Editable reports whether generic field updates are still allowed.
// Only Decommissioned freezes a gadget; Destroyed gadgets remain editable.
func (s Status) Editable() bool {
	return s != StatusDecommissioned
}

// Gadget is never physically deleted; decommissioning is a status change.
// Name carries no unique index: codenames of destroyed gadgets are reusable.
type Gadget struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Status           Status     `gorm:"size:32;not null;default:Available" json:"status"`
	DecommissionedAt *time.Time `json:"decommissionedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (g *Gadget) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
