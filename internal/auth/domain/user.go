package domain

import "time"

// UserSource records which OAuth provider a signup originally came from.
type UserSource string

const (
	UserSourceGoogle UserSource = "google"
)

type User struct {
	ID              string     `json:"id" gorm:"type:uuid;primaryKey"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null"`
	FamilyName      string     `json:"familyName" gorm:"not null"`
	GivenName       string     `json:"givenName" gorm:"not null"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	PhoneNumber     *string    `json:"phoneNumber" gorm:"uniqueIndex"`
	ProfilePicture  string     `json:"profilePicture"`
	Source          UserSource `json:"source" gorm:"not null"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
