// Package dao contains all the data access object used in the application.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell-blog/inkwell/library/db/mongo"
)

// Blog dao type
type Blog struct {
	logger glog.Logger
	db     mongo.DB
}

// New create new dao
func New(logger glog.Logger, db mongo.DB) *Blog {
	return &Blog{
		logger: logger,
		db:     db,
	}
}

// GetArticlesCol get articles collection
func (d *Blog) GetArticlesCol() *mongoLib.Collection {
	return d.db.GetCol("articles")
}

// GetAdminsCol get admins collection
func (d *Blog) GetAdminsCol() *mongoLib.Collection {
	return d.db.GetCol("admins")
}

// GetFilesCol get files collection
func (d *Blog) GetFilesCol() *mongoLib.Collection {
	return d.db.GetCol("files")
}

// EnsureIndexes creates the unique indexes that back slug and email
// uniqueness. The indexes are the real safeguard against concurrent
// writers racing past the application-level checks.
func (d *Blog) EnsureIndexes(ctx context.Context) error {
	// unique index for admin email
	{
		if _, err := d.GetAdminsCol().Indexes().CreateOne(ctx, mongoLib.IndexModel{
			Keys: bson.M{
				"email": 1,
			},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return errors.Wrap(err, "create index for email")
		}
	}

	// unique index for article slug
	{
		if _, err := d.GetArticlesCol().Indexes().CreateOne(ctx, mongoLib.IndexModel{
			Keys: bson.M{
				"slug": 1,
			},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return errors.Wrap(err, "create index for slug")
		}
	}

	return nil
}
