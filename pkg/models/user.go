package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser is a console account. Permissions holds permission codes.
type AdminUser struct {
	CreatedAt           time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt          time.Time          `bson:"modified_at" json:"modifiedAt"`
	LastLogin           time.Time          `bson:"last_login" json:"lastLogin"`
	Email               string             `bson:"email" json:"email" validate:"required,email"`
	Name                string             `bson:"name" json:"name" validate:"required"`
	PasswordDigest      string             `bson:"password_digest" json:"-"`
	Permissions         []string           `bson:"permissions" json:"permissions"`
	ID                  primitive.ObjectID `bson:"_id" json:"_id"`
	Active              bool               `bson:"active" json:"active"`
	ForceChangePassword bool               `bson:"force_change_password" json:"forceChangePassword"`
	LoginCounts         int                `bson:"login_counts" json:"-"`
}

// Permission is one grantable capability of the console.
type Permission struct {
	Code        string             `bson:"code" json:"code"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
}

type CreateUserRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Name        string   `json:"name" validate:"required"`
	Password    string   `json:"password" validate:"required,min=8"`
	Permissions []string `json:"permissions"`
}

type UpdateUserRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	Active      *bool    `json:"active"`
}

type UserAuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
