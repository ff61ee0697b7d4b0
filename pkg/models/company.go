package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is the business profile shown on documents and invoices.
type Company struct {
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt time.Time          `bson:"modified_at" json:"modifiedAt"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	TaxID      string             `bson:"tax_id" json:"taxId"`
	Phone      string             `bson:"phone" json:"phone"`
	Email      string             `bson:"email" json:"email"`
	LogoURL    string             `bson:"logo_url" json:"logoUrl"`
	Address    AddressInfo        `bson:"address" json:"address"`
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
}

type CompanyRequest struct {
	Name    string      `json:"name" validate:"required"`
	TaxID   string      `json:"taxId"`
	Phone   string      `json:"phone" validate:"omitempty,min=9,max=10,numeric"`
	Email   string      `json:"email" validate:"omitempty,email"`
	Address AddressInfo `json:"address"`
}
