package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role value that grants administrative capability.
const RoleAdmin = "admin"

// User is a platform account, created on first sign-in.
// Role is the only mutable field and is settable only by an existing admin.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
