package auth

import "time"

// Admin is a dashboard operator account. App users live in the store
// package and are read-only here.
type Admin struct {
	ID           uint64     `gorm:"primaryKey"`
	Email        string     `gorm:"uniqueIndex;not null"`
	DisplayName  string     `gorm:"not null;default:''"`
	PasswordHash string     `gorm:"not null"`
	LastLogin    *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time  `gorm:"not null;default:now()"`
}

func (Admin) TableName() string { return "admins" }
