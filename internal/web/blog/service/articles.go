package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell-blog/inkwell/internal/web/blog/dto"
	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	mongoSDK "github.com/inkwell-blog/inkwell/library/db/mongo"
)

// slugInsertRetries bounds how often a creation re-runs the slug scan after
// losing an insert race on the unique index.
const slugInsertRetries = 3

// LoadArticles returns every article, newest first, falling back to
// insertion order for equal timestamps.
func (s *Blog) LoadArticles(ctx context.Context) (articles []*model.Article, err error) {
	articles = []*model.Article{}
	cur, err := s.dao.GetArticlesCol().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find articles")
	}
	defer cur.Close(ctx)

	if err = cur.All(ctx, &articles); err != nil {
		return nil, errors.Wrap(err, "load articles")
	}

	return articles, nil
}

// LoadArticleByID load one article by object id.
func (s *Blog) LoadArticleByID(ctx context.Context, id primitive.ObjectID) (article *model.Article, err error) {
	article = &model.Article{}
	if err = s.dao.GetArticlesCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(article); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrapf(err, "find article %s", id.Hex())
	}

	return article, nil
}

// LoadArticleBySlug load one article by slug.
func (s *Blog) LoadArticleBySlug(ctx context.Context, slug string) (article *model.Article, err error) {
	article = &model.Article{}
	if err = s.dao.GetArticlesCol().
		FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).
		Decode(article); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrapf(err, "find article by slug %q", slug)
	}

	return article, nil
}

// CreateArticle insert a new article. A blank title is rejected. CreatedAt
// defaults to now and the slug is assigned from the title when the caller
// omitted it. Losing an insert race on the slug index re-runs the
// assignment instead of failing.
func (s *Blog) CreateArticle(ctx context.Context, input *dto.ArticleInput) (article *model.Article, err error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.WithStack(model.ErrTitleRequired)
	}

	now := gutils.Clock.GetUTCNow()
	article = &model.Article{
		ID:         primitive.NewObjectID(),
		Title:      input.Title,
		Slug:       input.Slug,
		Category:   input.Category,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		PdfURL:     input.PdfURL,
		Author:     input.Author,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.CreatedAt != nil {
		article.CreatedAt = *input.CreatedAt
	}

	autoSlug := article.Slug == ""
	for attempt := 0; ; attempt++ {
		if autoSlug {
			if article.Slug, err = s.assignSlug(ctx, article.Title); err != nil {
				return nil, errors.Wrap(err, "assign slug")
			}
		}

		if _, err = s.dao.GetArticlesCol().InsertOne(ctx, article); err == nil {
			break
		}

		if !mongoSDK.IsDup(err) {
			return nil, errors.Wrap(err, "insert article")
		}
		if !autoSlug {
			return nil, errors.WithStack(model.ErrSlugTaken)
		}
		if attempt >= slugInsertRetries {
			return nil, errors.Wrapf(err, "assign slug for %q", article.Title)
		}

		// lost the race to a concurrent writer, rescan and retry
		s.logger.Debug("slug taken, retry",
			zap.String("slug", article.Slug), zap.Int("attempt", attempt))
	}

	s.logger.Info("created article",
		zap.String("id", article.ID.Hex()),
		zap.String("title", article.Title),
		zap.String("slug", article.Slug),
	)
	return article, nil
}

// UpdateArticle apply a partial update and return the new document.
func (s *Blog) UpdateArticle(ctx context.Context, id primitive.ObjectID,
	patch *dto.ArticleUpdate) (article *model.Article, err error) {
	set := bson.M{
		"updatedAt": gutils.Clock.GetUTCNow(),
	}
	for key, val := range map[string]*string{
		"title":      patch.Title,
		"slug":       patch.Slug,
		"category":   patch.Category,
		"excerpt":    patch.Excerpt,
		"content":    patch.Content,
		"coverImage": patch.CoverImage,
		"pdfUrl":     patch.PdfURL,
		"author":     patch.Author,
	} {
		if val != nil {
			set[key] = *val
		}
	}
	if patch.CreatedAt != nil {
		set["createdAt"] = *patch.CreatedAt
	}

	article = &model.Article{}
	if err = s.dao.GetArticlesCol().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(article); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}
		if mongoSDK.IsDup(err) {
			return nil, errors.WithStack(model.ErrSlugTaken)
		}

		return nil, errors.Wrapf(err, "update article %s", id.Hex())
	}

	s.logger.Info("updated article", zap.String("id", id.Hex()))
	return article, nil
}

// DeleteArticle remove an article. Deleting an id that no longer exists is
// not an error; the operation is idempotent.
func (s *Blog) DeleteArticle(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.dao.GetArticlesCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Wrapf(err, "delete article %s", id.Hex())
	}

	s.logger.Info("deleted article", zap.String("id", id.Hex()))
	return nil
}
