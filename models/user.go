package models

import "strings"

type User struct {
	Base
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type EmailSubscriber struct {
	Base
	Email string `json:"email" gorm:"uniqueIndex;not null"`
}
