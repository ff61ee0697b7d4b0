package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MasterType enumerates the reference columns backed by master data.
type MasterType string

const (
	MasterMetal     MasterType = "metal"
	MasterStoneName MasterType = "stone_name"
	MasterShape     MasterType = "shape"
	MasterCutting   MasterType = "cutting"
	MasterQuality   MasterType = "quality"
	MasterClarity   MasterType = "clarity"
	MasterItemType  MasterType = "item_type"
)

// ParseMasterType validates a requested master-data type.
func ParseMasterType(t string) (MasterType, bool) {
	switch MasterType(t) {
	case MasterMetal, MasterStoneName, MasterShape, MasterCutting,
		MasterQuality, MasterClarity, MasterItemType:
		return MasterType(t), true
	}
	return "", false
}

// MasterData is one reference/lookup record. Slug is the dedupe key: the
// collection carries a unique index on (type, slug).
type MasterData struct {
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	Type      MasterType         `bson:"type" json:"type" validate:"required"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Slug      string             `bson:"slug" json:"slug"`
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
}

// Option renders a master record as a dropdown entry.
func (m MasterData) Option() SelectOption {
	return SelectOption{Value: m.ID.Hex(), Label: m.Name}
}

// MasterDataRequest is the create body. The master type comes from the
// route path, not the body.
type MasterDataRequest struct {
	Name string `json:"name" validate:"required"`
}

// IsObjectID reports whether v already is a 24-hex master-data id, as opposed
// to free text still pending resolution.
func IsObjectID(v string) bool {
	_, err := primitive.ObjectIDFromHex(v)
	return err == nil
}
