package bsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func decimal(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func TestNormalizeDecimals(t *testing.T) {
	doc := bson.M{
		"name":  "Ribeira Charming Duplex",
		"price": decimal(t, "80.00"),
		"beds":  int32(5),
		"address": bson.M{
			"location": bson.M{
				"coordinates": bson.A{-8.61308, 41.1413},
			},
		},
		"reviews": bson.A{
			bson.M{"cleaning_fee": decimal(t, "35.00")},
		},
	}

	got := NormalizeDecimals(doc)

	assert.Equal(t, "80.00", got["price"])
	assert.Equal(t, "Ribeira Charming Duplex", got["name"])
	assert.Equal(t, int32(5), got["beds"])

	// Nested decimals convert at any depth; non-decimal values are untouched.
	reviews := got["reviews"].(bson.A)
	assert.Equal(t, "35.00", reviews[0].(bson.M)["cleaning_fee"])
	coords := got["address"].(bson.M)["location"].(bson.M)["coordinates"].(bson.A)
	assert.Equal(t, -8.61308, coords[0])
}

func TestNormalizeDecimalsPlainMapsAndSlices(t *testing.T) {
	doc := bson.M{
		"nested": map[string]interface{}{
			"deposit": decimal(t, "150"),
		},
		"items": []interface{}{decimal(t, "9.99"), "unchanged"},
	}

	got := NormalizeDecimals(doc)

	assert.Equal(t, "150", got["nested"].(map[string]interface{})["deposit"])
	items := got["items"].([]interface{})
	assert.Equal(t, "9.99", items[0])
	assert.Equal(t, "unchanged", items[1])
}

func TestNormalizeDecimalsIdempotent(t *testing.T) {
	doc := bson.M{
		"price": decimal(t, "80.00"),
		"fees": bson.M{
			"cleaning": decimal(t, "35.00"),
			"security": decimal(t, "200.00"),
		},
	}

	expected := bson.M{
		"price": "80.00",
		"fees": bson.M{
			"cleaning": "35.00",
			"security": "200.00",
		},
	}

	once := NormalizeDecimals(doc)
	assert.Equal(t, expected, once)

	twice := NormalizeDecimals(once)
	assert.Equal(t, expected, twice)
}
