package models

import "time"

// User represents the user model in the database. CurrentStreak is
// maintained by the streak worker, not by any endpoint in this service.
type User struct {
	Base
	Name          string        `gorm:"not null" json:"name"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	CPF           string        `gorm:"uniqueIndex;not null" json:"cpf"`
	Phone         string        `json:"phone"`
	Password      string        `gorm:"not null" json:"-"`
	BirthDate     *time.Time    `json:"birthDate"`
	CurrentStreak int           `gorm:"default:0" json:"currentStreak"`
	Transactions  []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Goals         []Goal        `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}
