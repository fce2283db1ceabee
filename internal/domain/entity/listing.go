package entity

import (
	"time"
)

// Listing is a rentable-property document from sample_airbnb.listingsAndReviews.
// Only the fields the review flow needs are mapped; the listings page works on
// raw documents instead so every stored field survives the round trip.
// Listing ids in this dataset are plain strings, not ObjectIDs.
type Listing struct {
	ID      string   `json:"id" bson:"_id"`
	Name    string   `json:"name" bson:"name"`
	Reviews []Review `json:"reviews" bson:"reviews,omitempty"`
}

// Review is embedded in a listing's reviews array. Immutable once appended.
type Review struct {
	ID           string    `json:"id" bson:"_id"`
	Date         time.Time `json:"date" bson:"date"`
	ListingID    string    `json:"listing_id" bson:"listing_id"`
	ReviewerID   string    `json:"reviewer_id" bson:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name" bson:"reviewer_name"`
	Comments     string    `json:"comments" bson:"comments"`
	Rating       int       `json:"rating" bson:"rating"`
}
