package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

const contactCollection = "contact_messages"

// ContactRepository archives contact-form submissions in MongoDB.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactCollection)}
}

// Save inserts the message. The generated document ID is written back so
// callers can reference the archived copy.
func (r *ContactRepository) Save(ctx context.Context, msg *domain.ContactMessage) error {
	res, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("archive contact message: %w", err)
	}
	if oid, ok := res.InsertedID.(interface{ Hex() string }); ok {
		msg.ID = oid.Hex()
	}
	return nil
}
