// internal/models/user.go
package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email          string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordDigest string `json:"-" gorm:"size:255;not null"`
}

// NormalizeEmail lowercases and trims an email address. Emails are stored
// normalized so the unique index on users.email is effectively
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordDigest = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordDigest), []byte(password))
}
