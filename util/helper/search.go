package helper_util

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchRegex matches searchText as a case-insensitive literal substring.
func SearchRegex(searchText string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(searchText)), Options: "i"}
}

// SearchFilter builds a filter on field; blank search text matches everything.
func SearchFilter(field, searchText string) bson.D {
	if strings.TrimSpace(searchText) == "" {
		return bson.D{}
	}
	return bson.D{{Key: field, Value: SearchRegex(searchText)}}
}
