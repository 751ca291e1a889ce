package repositories

import (
	"errors"

	"testblog/errs"
	"testblog/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetByArticle(articleID uint, approvedOnly bool) ([]models.Comment, error)
	GetByUser(userID uint) ([]models.Comment, error)
	GetReplies(parentID uint) ([]models.Comment, error)
	HasReplies(id uint) (bool, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
}

type commentRepository struct {
	repository[models.Comment]
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{repository[models.Comment]{db: db}}
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	comment, err := r.getByID(id)
	if errs.NotFound(err) {
		return nil, ErrCommentNotFound
	}
	return comment, err
}

func (r *commentRepository) GetByArticle(articleID uint, approvedOnly bool) ([]models.Comment, error) {
	query := r.db.Where("article_id = ?", articleID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	var comments []models.Comment
	err := query.Order("created_date asc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) GetByUser(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("user_id = ?", userID).
		Order("created_date desc").
		Find(&comments).Error
	return comments, err
}

// Replies are derived by parent-id lookup; the parent never holds a child
// collection.
func (r *commentRepository) GetReplies(parentID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("parent_comment_id = ?", parentID).
		Order("created_date asc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) HasReplies(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("parent_comment_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *commentRepository) Delete(id uint) error {
	return r.delete(id)
}
