package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	mongoSDK "github.com/inkwell-blog/inkwell/library/db/mongo"
)

// filesListLimit caps GET /api/files at the most recent records.
const filesListLimit = 100

// UploadFilename derives a collision-resistant on-disk name from the
// client-supplied one: millisecond timestamp plus a random suffix, keeping
// the original extension.
func UploadFilename(originalName string) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s",
		gutils.Clock.GetUTCNow().UnixMilli(),
		suffix,
		filepath.Ext(originalName),
	)
}

// CreateFile record metadata for an uploaded blob.
func (s *Blog) CreateFile(ctx context.Context, file *model.File) (*model.File, error) {
	now := gutils.Clock.GetUTCNow()
	file.ID = primitive.NewObjectID()
	file.CreatedAt = now
	file.UpdatedAt = now

	if _, err := s.dao.GetFilesCol().InsertOne(ctx, file); err != nil {
		return nil, errors.Wrapf(err, "insert file %q", file.Filename)
	}

	s.logger.Info("recorded upload",
		zap.String("filename", file.Filename),
		zap.String("original", file.OriginalName),
		zap.Int64("size", file.Size),
	)
	return file, nil
}

// ListFiles returns up to the 100 most recent file records.
func (s *Blog) ListFiles(ctx context.Context) (files []*model.File, err error) {
	files = []*model.File{}
	cur, err := s.dao.GetFilesCol().Find(ctx, bson.D{},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(filesListLimit),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find files")
	}
	defer cur.Close(ctx)

	if err = cur.All(ctx, &files); err != nil {
		return nil, errors.Wrap(err, "load files")
	}

	return files, nil
}

// LoadFileByID load one file record by object id.
func (s *Blog) LoadFileByID(ctx context.Context, id primitive.ObjectID) (file *model.File, err error) {
	file = &model.File{}
	if err = s.dao.GetFilesCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(file); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrapf(err, "find file %s", id.Hex())
	}

	return file, nil
}
