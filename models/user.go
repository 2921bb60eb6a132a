package models

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used by HashPassword.
var PasswordCost = bcrypt.DefaultCost

// User is an account that can favorite sneakers.
type User struct {
	UserID   uint   `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Email    string `gorm:"size:50;not null;uniqueIndex" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

// HashPassword stores the bcrypt hash of password.
func (u *User) HashPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
