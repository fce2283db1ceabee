package bsonutil

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeDecimals walks a document depth-first and replaces every
// Decimal128 value, at any nesting depth, with its canonical string form.
// All other values pass through unchanged. The walk is idempotent:
// normalized documents contain no Decimal128 values anymore.
// Document-store results are acyclic, so plain recursion is enough.
func NormalizeDecimals(doc bson.M) bson.M {
	for key, value := range doc {
		doc[key] = normalizeValue(value)
	}
	return doc
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.Decimal128:
		return v.String()
	case bson.M:
		return NormalizeDecimals(v)
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalizeValue(item)
		}
		return v
	case bson.D:
		for i := range v {
			v[i].Value = normalizeValue(v[i].Value)
		}
		return v
	case bson.A:
		for i := range v {
			v[i] = normalizeValue(v[i])
		}
		return v
	case []interface{}:
		for i := range v {
			v[i] = normalizeValue(v[i])
		}
		return v
	default:
		return value
	}
}
