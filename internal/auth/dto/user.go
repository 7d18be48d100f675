package dto

// UserUpdateRequest is a partial profile update. Nil fields are left
// untouched; a non-nil empty phone number clears it.
type UserUpdateRequest struct {
	Email          *string `json:"email" binding:"omitempty,email"`
	FamilyName     *string `json:"familyName"`
	GivenName      *string `json:"givenName"`
	PhoneNumber    *string `json:"phoneNumber"`
	ProfilePicture *string `json:"profilePicture"`
}
