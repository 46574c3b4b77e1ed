package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a plain directory entry created by the super admin.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}
