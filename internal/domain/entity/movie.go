package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie maps the fields of sample_mflix.movies the query service filters and
// displays. Everything else the document carries lands in Extra so the detail
// view can pass it through untouched.
type Movie struct {
	ID     primitive.ObjectID     `json:"id" bson:"_id"`
	Title  string                 `json:"title" bson:"title"`
	Year   int                    `json:"year" bson:"year"`
	Poster string                 `json:"poster" bson:"poster"`
	Rated  string                 `json:"rated" bson:"rated"`
	IMDB   IMDBRating             `json:"imdb" bson:"imdb"`
	Extra  map[string]interface{} `json:"-" bson:",inline"`
}

type IMDBRating struct {
	Rating float64 `json:"rating" bson:"rating"`
	Votes  int     `json:"votes" bson:"votes"`
}
