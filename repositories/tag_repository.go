package repositories

import (
	"errors"

	"testblog/errs"
	"testblog/models"

	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("tag not found")

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	Update(tag *models.Tag) error
	DeleteWithArticleTags(id uint) error
}

type tagRepository struct {
	repository[models.Tag]
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{repository[models.Tag]{db: db}}
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	tag, err := r.getByID(id)
	if errs.NotFound(err) {
		return nil, ErrTagNotFound
	}
	return tag, err
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if errs.NotFound(err) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteWithArticleTags removes the join rows before the tag itself, in one
// transaction, so no article is ever left pointing at a deleted tag.
func (r *tagRepository) DeleteWithArticleTags(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}
