package mongo

import (
	"github.com/Laisky/errors/v2"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
)

func NotFound(err error) bool {
	return errors.Is(err, mongoLib.ErrNoDocuments)
}

// IsDup reports whether err is a unique-index violation on insert or update.
func IsDup(err error) bool {
	return mongoLib.IsDuplicateKeyError(err)
}
