package service

import (
	"context"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/internal/web/blog/dto"
	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

// TestCreateArticleTitleRequired ensures an article without a title is
// rejected before any slug is assigned or anything is written.
func TestCreateArticleTitleRequired(t *testing.T) {
	s := &Blog{}

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.CreateArticle(context.Background(), &dto.ArticleInput{
			Title:   title,
			Content: "body",
		})
		require.Error(t, err, "title %q", title)
		require.True(t, errors.Is(err, model.ErrTitleRequired), "title %q", title)
	}
}
