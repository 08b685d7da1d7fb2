package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
	RoleBuyer = "BUYER"
)

// User statuses
const (
	UserStatusActive    = "ACTIVE"
	UserStatusSuspended = "SUSPENDED"
)

// User is a document in the "user" collection. The password hash is never
// serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	Email        string             `bson:"email" json:"email"`
	Mobile       string             `bson:"mobile" json:"mobile"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Asha Verma"`
	Email    string `json:"email" binding:"required" example:"asha@example.com"`
	Mobile   string `json:"mobile" binding:"required" example:"9876543210"`
	Password string `json:"password" binding:"required" example:"secret123"`
	Role     string `json:"role" example:"BUYER"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// PublicUser is the externally visible shape of a user
type PublicUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

// LoginResponse carries the public fields plus a bearer token
type LoginResponse struct {
	PublicUser
	Token string `json:"token"`
}

// UserStatusRequest is the admin status-change payload
type UserStatusRequest struct {
	Status string `json:"status" binding:"required" example:"SUSPENDED"`
}
