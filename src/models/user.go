package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User บัญชีผู้ใช้ระบบ (admin / faculty)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name" json:"name"`
	Password string             `bson:"password" json:"-"` // bcrypt hash
	Role     string             `bson:"role" json:"role"`  // "admin" หรือ "faculty"
}
