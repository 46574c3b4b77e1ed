package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SuperAdmin is the single privileged identity of the platform.
type SuperAdmin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, hidden from JSON responses
}
