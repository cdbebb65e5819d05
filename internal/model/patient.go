package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactInfo is embedded in both patients and physicians.
type ContactInfo struct {
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

type Patient struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	DOB          time.Time          `bson:"dob" json:"dob"`
	Age          int                `bson:"age" json:"age"`
	Gender       string             `bson:"gender" json:"gender"`
	ContactInfo  ContactInfo        `bson:"contactInfo" json:"contact_info"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updated_at"`
}

// AgeAt returns the patient's age at the given instant, decremented by
// one if the birthday has not yet occurred that year. DOB is the source
// of truth; the stored Age field is a cached derivation.
func (p *Patient) AgeAt(now time.Time) int {
	age := now.Year() - p.DOB.Year()
	if now.Month() < p.DOB.Month() ||
		(now.Month() == p.DOB.Month() && now.Day() < p.DOB.Day()) {
		age--
	}
	return age
}

// RefreshAge recomputes the cached Age field from DOB. Called on every
// persistence event so the stored value never drifts.
func (p *Patient) RefreshAge(now time.Time) {
	p.Age = p.AgeAt(now)
}
