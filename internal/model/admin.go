package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is an operator account; its credentials are exchanged for a bearer
// token on login. The password column only ever holds a bcrypt hash.
type Admin struct {
	AdminID    uint         `gorm:"primaryKey" json:"adminID"`
	Username   string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"username" validate:"required"`
	Password   string       `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	AlurBarang []AlurBarang `gorm:"foreignKey:AdminID" json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}

// SetPassword hashes and sets the admin's password.
func (a *Admin) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies the provided password against the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}
