package services

import (
	"time"

	"testblog/errs"
	"testblog/models"
	"testblog/repositories"

	"go.uber.org/zap"
)

type ArticleService interface {
	GetArticleByID(id uint) (*models.Article, error)
	GetAllArticles() ([]models.Article, error)
	GetPublishedArticles() ([]models.Article, error)
	GetArticlesByAuthor(authorID uint) ([]models.Article, error)
	GetArticlesByTag(tagID uint) ([]models.Article, error)
	CreateArticle(article *models.Article, tagIDs []uint) bool
	UpdateArticle(article *models.Article, tagIDs []uint) bool
	DeleteArticle(id uint) bool
	PublishArticle(id uint) bool
	UnpublishArticle(id uint) bool
	IncrementViewCount(id uint)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	log         *zap.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, log *zap.Logger) ArticleService {
	return &articleService{articleRepo: articleRepo, log: log}
}

func (s *articleService) GetArticleByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	tags, err := s.articleRepo.GetTagsForArticle(id)
	if err != nil {
		return nil, err
	}
	article.Tags = tags
	return article, nil
}

func (s *articleService) GetAllArticles() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

func (s *articleService) GetPublishedArticles() ([]models.Article, error) {
	return s.articleRepo.GetPublished()
}

func (s *articleService) GetArticlesByAuthor(authorID uint) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(authorID)
}

func (s *articleService) GetArticlesByTag(tagID uint) ([]models.Article, error) {
	return s.articleRepo.GetByTag(tagID)
}

func (s *articleService) CreateArticle(article *models.Article, tagIDs []uint) bool {
	article.CreatedDate = time.Now()
	article.ViewCount = 0
	article.IsPublished = false

	if err := s.articleRepo.CreateWithTags(article, dedupeIDs(tagIDs)); err != nil {
		s.log.Error("create article failed",
			zap.String("title", article.Title),
			zap.Error(err),
			zap.Bool("retriable", errs.Retriable(err)))
		return false
	}
	s.log.Info("article created", zap.Uint("article_id", article.ID), zap.String("title", article.Title))
	return true
}

func (s *articleService) UpdateArticle(article *models.Article, tagIDs []uint) bool {
	now := time.Now()
	article.UpdatedDate = &now

	if err := s.articleRepo.UpdateWithTags(article, dedupeIDs(tagIDs)); err != nil {
		s.log.Error("update article failed",
			zap.Uint("article_id", article.ID),
			zap.Error(err),
			zap.Bool("retriable", errs.Retriable(err)))
		return false
	}
	s.log.Info("article updated", zap.Uint("article_id", article.ID))
	return true
}

func (s *articleService) DeleteArticle(id uint) bool {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		return false
	}
	if err := s.articleRepo.Delete(id); err != nil {
		s.log.Error("delete article failed", zap.Uint("article_id", id), zap.Error(err))
		return false
	}
	s.log.Info("article deleted", zap.Uint("article_id", id))
	return true
}

func (s *articleService) PublishArticle(id uint) bool {
	return s.setPublished(id, true)
}

func (s *articleService) UnpublishArticle(id uint) bool {
	return s.setPublished(id, false)
}

func (s *articleService) setPublished(id uint, published bool) bool {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return false
	}
	article.IsPublished = published
	now := time.Now()
	article.UpdatedDate = &now

	if err := s.articleRepo.Update(article); err != nil {
		s.log.Error("publish state change failed",
			zap.Uint("article_id", id),
			zap.Bool("published", published),
			zap.Error(err))
		return false
	}
	return true
}

// IncrementViewCount is fire-and-forget; a lost increment is not worth
// failing a page view over.
func (s *articleService) IncrementViewCount(id uint) {
	if err := s.articleRepo.IncrementViewCount(id); err != nil {
		s.log.Warn("view count not incremented", zap.Uint("article_id", id), zap.Error(err))
	}
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
