package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	GenderMale   = "male"
	GenderFemale = "female"
)

// User IDs are issued by the external identity provider, so unlike
// orders and products they are never generated locally.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Photo     string    `bson:"photo" json:"photo"`
	Role      string    `bson:"role" json:"role"`
	Gender    string    `bson:"gender" json:"gender"`
	DOB       time.Time `bson:"dob" json:"dob"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// AgeAt derives the user's age as of the reference day. Age is never
// stored; it is always computed from the date of birth.
func (u User) AgeAt(ref time.Time) int {
	age := ref.Year() - u.DOB.Year()
	if ref.Month() < u.DOB.Month() ||
		(ref.Month() == u.DOB.Month() && ref.Day() < u.DOB.Day()) {
		age--
	}
	return age
}
