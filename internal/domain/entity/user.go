package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User lives in dwdd-3780.users. Created lazily on first review submission;
// name is the lookup key. No uniqueness constraint is enforced, so two
// concurrent submissions for the same new name can create two user documents.
type User struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Reviews []UserReviewEntry  `json:"reviews" bson:"reviews,omitempty"`
}

// UserReviewEntry mirrors a submitted review inside the owning user document.
// The listing name is a denormalized copy taken at submission time.
type UserReviewEntry struct {
	ID          string    `json:"id" bson:"_id"`
	Date        time.Time `json:"date" bson:"date"`
	ListingID   string    `json:"listing_id" bson:"listing_id"`
	ListingName string    `json:"listing_name" bson:"listing_name"`
	Comments    string    `json:"comments" bson:"comments"`
	Rating      int       `json:"rating" bson:"rating"`
}
