package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	slugStripRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe = regexp.MustCompile(`\s+`)
	slugDashRe  = regexp.MustCompile(`-+`)
)

// slugify normalizes a title into a URL-safe slug base: lowercase, strip
// everything but letters, digits, spaces and hyphens, then collapse
// whitespace runs and repeated hyphens into single hyphens.
//
// An empty result means the title had no usable characters; callers fall
// back to a timestamp base.
func slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugDashRe.ReplaceAllString(s, "-")

	return s
}

// nextFreeSlug picks the base itself when free, otherwise the first
// base-N with the smallest positive N not yet taken.
func nextFreeSlug(base string, taken map[string]struct{}) string {
	slug := base
	for n := 1; ; n++ {
		if _, ok := taken[slug]; !ok {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// assignSlug derives a unique slug for the given title against the slugs
// currently in the store. The scan is read-then-write without a lock, so
// concurrent creations with colliding titles can both pass it; the unique
// index on slug is the backstop and the caller retries on duplicate-key.
func (s *Blog) assignSlug(ctx context.Context, title string) (string, error) {
	base := slugify(title)
	if base == "" {
		base = fmt.Sprintf("article-%d", gutils.Clock.GetUTCNow().UnixMilli())
	}

	pattern := "^" + regexp.QuoteMeta(base) + `(-\d+)?$`
	cur, err := s.dao.GetArticlesCol().Find(ctx,
		bson.D{{Key: "slug", Value: primitive.Regex{Pattern: pattern}}},
		options.Find().SetProjection(bson.D{{Key: "slug", Value: 1}}),
	)
	if err != nil {
		return "", errors.Wrapf(err, "find slugs matching %q", base)
	}
	defer cur.Close(ctx)

	taken := map[string]struct{}{}
	for cur.Next(ctx) {
		var doc struct {
			Slug string `bson:"slug"`
		}
		if err = cur.Decode(&doc); err != nil {
			return "", errors.Wrap(err, "decode slug")
		}
		taken[doc.Slug] = struct{}{}
	}
	if err = cur.Err(); err != nil {
		return "", errors.Wrap(err, "iter slugs")
	}

	return nextFreeSlug(base, taken), nil
}
