package services

import (
	"testing"

	"testblog/models"
	"testblog/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newArticleServiceForTest() (ArticleService, *fakeArticleRepo) {
	repo := newFakeArticleRepo()
	return NewArticleService(repo, zap.NewNop()), repo
}

func TestCreateArticleWithTags(t *testing.T) {
	svc, repo := newArticleServiceForTest()
	golang := repo.addTag("golang")
	web := repo.addTag("web")

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	require.True(t, svc.CreateArticle(article, []uint{golang.ID, web.ID}))

	assert.NotZero(t, article.ID)
	assert.False(t, article.IsPublished)
	assert.Zero(t, article.ViewCount)
	assert.False(t, article.CreatedDate.IsZero())

	byTag, err := svc.GetArticlesByTag(web.ID)
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, article.ID, byTag[0].ID)
}

func TestCreateArticleUnknownTag(t *testing.T) {
	svc, repo := newArticleServiceForTest()
	golang := repo.addTag("golang")

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	assert.False(t, svc.CreateArticle(article, []uint{golang.ID, 42}))

	// Nothing persisted when any tag id is unknown.
	all, err := svc.GetAllArticles()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateArticleDuplicateTagIDs(t *testing.T) {
	svc, repo := newArticleServiceForTest()
	golang := repo.addTag("golang")

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	require.True(t, svc.CreateArticle(article, []uint{golang.ID, golang.ID}))

	tags, err := repo.GetTagsForArticle(article.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestUpdateArticleReplacesTags(t *testing.T) {
	svc, repo := newArticleServiceForTest()
	golang := repo.addTag("golang")
	web := repo.addTag("web")

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	require.True(t, svc.CreateArticle(article, []uint{golang.ID}))

	article.Title = "First, revised"
	require.True(t, svc.UpdateArticle(article, []uint{web.ID}))
	assert.NotNil(t, article.UpdatedDate)

	tags, err := repo.GetTagsForArticle(article.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "web", tags[0].Name)

	byOld, err := svc.GetArticlesByTag(golang.ID)
	require.NoError(t, err)
	assert.Empty(t, byOld)
}

func TestDeleteArticleRemovesJoins(t *testing.T) {
	svc, repo := newArticleServiceForTest()
	golang := repo.addTag("golang")

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	require.True(t, svc.CreateArticle(article, []uint{golang.ID}))

	require.True(t, svc.DeleteArticle(article.ID))

	_, err := svc.GetArticleByID(article.ID)
	assert.ErrorIs(t, err, repositories.ErrArticleNotFound)

	byTag, err := svc.GetArticlesByTag(golang.ID)
	require.NoError(t, err)
	assert.Empty(t, byTag)
}

func TestDeleteTagKeepsArticles(t *testing.T) {
	svc, repo := newArticleServiceForTest()
	golang := repo.addTag("golang")

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	require.True(t, svc.CreateArticle(article, []uint{golang.ID}))

	repo.deleteTag(golang.ID)

	// The article survives its tag, just without the association.
	got, err := svc.GetArticleByID(article.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestPublishUnpublish(t *testing.T) {
	svc, _ := newArticleServiceForTest()

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	require.True(t, svc.CreateArticle(article, nil))

	published, err := svc.GetPublishedArticles()
	require.NoError(t, err)
	assert.Empty(t, published)

	require.True(t, svc.PublishArticle(article.ID))
	published, err = svc.GetPublishedArticles()
	require.NoError(t, err)
	assert.Len(t, published, 1)

	require.True(t, svc.UnpublishArticle(article.ID))
	published, err = svc.GetPublishedArticles()
	require.NoError(t, err)
	assert.Empty(t, published)

	assert.False(t, svc.PublishArticle(999))
}

func TestIncrementViewCount(t *testing.T) {
	svc, _ := newArticleServiceForTest()

	article := &models.Article{Title: "First", Content: "body", AuthorID: 1}
	require.True(t, svc.CreateArticle(article, nil))

	svc.IncrementViewCount(article.ID)
	svc.IncrementViewCount(article.ID)

	got, err := svc.GetArticleByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)

	// Unknown id is logged and swallowed.
	svc.IncrementViewCount(999)
}
