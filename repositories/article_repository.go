package repositories

import (
	"errors"

	"testblog/errs"
	"testblog/models"

	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrUnknownTag      = errors.New("unknown tag id")
)

type ArticleRepository interface {
	CreateWithTags(article *models.Article, tagIDs []uint) error
	GetByID(id uint) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetPublished() ([]models.Article, error)
	GetByAuthor(authorID uint) ([]models.Article, error)
	GetByTag(tagID uint) ([]models.Article, error)
	GetTagsForArticle(articleID uint) ([]models.Tag, error)
	Update(article *models.Article) error
	UpdateWithTags(article *models.Article, tagIDs []uint) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
}

type articleRepository struct {
	repository[models.Article]
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{repository[models.Article]{db: db}}
}

// ensureTagsExist rejects join rows that would reference a tag id nobody
// created. Stricter than blindly inserting, so the join table stays free of
// danglers from the start.
func ensureTagsExist(tx *gorm.DB, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(tagIDs)) {
		return ErrUnknownTag
	}
	return nil
}

// CreateWithTags persists the article first to obtain its id, then one join
// row per tag, all inside a single transaction. A failure after the article
// insert rolls everything back instead of leaving a tagless article behind.
func (r *articleRepository) CreateWithTags(article *models.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureTagsExist(tx, tagIDs); err != nil {
			return err
		}
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			join := models.ArticleTag{ArticleID: article.ID, TagID: tagID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, id).Error
	if errs.NotFound(err) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetPublished() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("is_published = ?", true).
		Order("created_date desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_id = ?", authorID).
		Order("created_date desc").
		Find(&articles).Error
	return articles, err
}

// GetByTag resolves the join rows for the tag and then each referenced
// article. Articles that no longer exist are skipped rather than failing
// the whole query.
func (r *articleRepository) GetByTag(tagID uint) ([]models.Article, error) {
	var joins []models.ArticleTag
	if err := r.db.Where("tag_id = ?", tagID).Find(&joins).Error; err != nil {
		return nil, err
	}

	articles := make([]models.Article, 0, len(joins))
	for _, join := range joins {
		var article models.Article
		err := r.db.First(&article, join.ArticleID).Error
		if errs.NotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (r *articleRepository) GetTagsForArticle(articleID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Find(&tags).Error
	return tags, err
}

// UpdateWithTags saves the article fields and replaces the whole join set:
// every existing row for the article is deleted, then the supplied set is
// inserted. Concurrent tag updates on the same article are last-writer-wins.
func (r *articleRepository) UpdateWithTags(article *models.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureTagsExist(tx, tagIDs); err != nil {
			return err
		}
		if err := tx.Save(article).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			join := models.ArticleTag{ArticleID: article.ID, TagID: tagID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the article together with its join rows and comments so
// nothing is left referencing a gone id.
func (r *articleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}

// IncrementViewCount bumps the counter in place; the column only ever grows.
func (r *articleRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
