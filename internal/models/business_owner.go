package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phlebotomist lives embedded in its owner's document and has no
// collection of its own.
type Phlebotomist struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	HiredDate   time.Time          `bson:"hiredDate" json:"hiredDate"`
}

type BusinessOwner struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName          string             `bson:"firstName" json:"firstName"`
	LastName           string             `bson:"lastName" json:"lastName"`
	CompanyName        string             `bson:"companyName" json:"companyName"`
	CompanyLogoURL     string             `bson:"companyLogoUrl,omitempty" json:"companyLogoUrl,omitempty"`
	CompanyEmail       string             `bson:"companyEmail" json:"companyEmail"`
	CompanyPhoneNumber string             `bson:"companyPhoneNumber" json:"companyPhoneNumber"`
	CompanyAddress     string             `bson:"companyAddress" json:"companyAddress"`
	CompanyPostalCode  string             `bson:"companyPostalCode" json:"companyPostalCode"`
	Email              string             `bson:"email" json:"email"` // personal address the invitation goes to
	OTP                string             `bson:"otp,omitempty" json:"-"`
	Phlebotomists      []Phlebotomist     `bson:"phlebotomists" json:"phlebotomists"`
	InvitedAt          time.Time          `bson:"invitedAt" json:"invitedAt"`
}
