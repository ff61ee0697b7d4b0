package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer carries a delivery address plus an optional tax-invoice address.
// When SameAsAddress is set the tax-invoice address mirrors the main one and
// the stored copy is collapsed server-side.
type Customer struct {
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt        time.Time          `bson:"modified_at" json:"modifiedAt"`
	Name              string             `bson:"name" json:"name" validate:"required"`
	Phone             string             `bson:"phone" json:"phone"`
	Email             string             `bson:"email" json:"email"`
	Address           AddressInfo        `bson:"address" json:"address"`
	TaxInvoiceAddress *AddressInfo       `bson:"tax_invoice_address,omitempty" json:"taxInvoiceAddress,omitempty"`
	SameAsAddress     bool               `bson:"same_as_address" json:"sameAsAddress"`
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	CompanyID         primitive.ObjectID `bson:"company_id" json:"companyId"`
}

type CustomerRequest struct {
	Name              string       `json:"name" validate:"required"`
	Phone             string       `json:"phone" validate:"omitempty,min=9,max=10,numeric"`
	Email             string       `json:"email" validate:"omitempty,email"`
	Address           AddressInfo  `json:"address"`
	TaxInvoiceAddress *AddressInfo `json:"taxInvoiceAddress"`
	SameAsAddress     bool         `json:"sameAsAddress"`
}
