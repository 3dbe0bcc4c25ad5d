package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a private annotation a user keeps on an entity; visible only to its
// owner, stored outside the relational schema.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EntityID  uint64             `bson:"entity_id" json:"entityId"`
	OwnerID   uint64             `bson:"owner_id" json:"ownerId"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
