package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Specialization string

const (
	SpecializationCardiology      Specialization = "Cardiology"
	SpecializationDermatology     Specialization = "Dermatology"
	SpecializationPediatrics      Specialization = "Pediatrics"
	SpecializationGeneralPractice Specialization = "General Practice"
	SpecializationAdministration  Specialization = "Administration"
)

// ClinicalSpecializations are the categories assignable to generated
// physicians. Administration is reserved for the fixed admin account.
var ClinicalSpecializations = []Specialization{
	SpecializationCardiology,
	SpecializationDermatology,
	SpecializationPediatrics,
	SpecializationGeneralPractice,
}

type PhysicianRole string

const (
	RolePhysician PhysicianRole = "physician"
	RoleAdmin     PhysicianRole = "admin"
)

type Physician struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Specialization Specialization     `bson:"specialization" json:"specialization"`
	Username       string             `bson:"username" json:"username"`
	PasswordHash   string             `bson:"passwordHash" json:"-"`
	Role           PhysicianRole      `bson:"role" json:"role"`
	ContactInfo    ContactInfo        `bson:"contactInfo" json:"contact_info"`
	Schedule       []string           `bson:"schedule" json:"schedule"`
	IsActive       bool               `bson:"isActive" json:"is_active"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}
