package services

import (
	"time"

	"testblog/models"
	"testblog/repositories"

	"go.uber.org/zap"
)

type CommentService interface {
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByArticle(articleID uint) ([]models.Comment, error)
	GetCommentsByUser(userID uint) ([]models.Comment, error)
	GetReplies(parentID uint) ([]models.Comment, error)
	CreateComment(comment *models.Comment) bool
	UpdateComment(comment *models.Comment) bool
	DeleteComment(id uint) bool
	ApproveComment(id uint) bool
}

type commentService struct {
	commentRepo repositories.CommentRepository
	log         *zap.Logger
}

func NewCommentService(commentRepo repositories.CommentRepository, log *zap.Logger) CommentService {
	return &commentService{commentRepo: commentRepo, log: log}
}

func (s *commentService) GetCommentByID(id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// Readers only see approved comments; moderation endpoints fetch through
// the repository directly.
func (s *commentService) GetCommentsByArticle(articleID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByArticle(articleID, true)
}

func (s *commentService) GetCommentsByUser(userID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByUser(userID)
}

func (s *commentService) GetReplies(parentID uint) ([]models.Comment, error) {
	return s.commentRepo.GetReplies(parentID)
}

// CreateComment stamps defaults and, when replying, checks the parent lives
// on the same article. New comments start unapproved.
func (s *commentService) CreateComment(comment *models.Comment) bool {
	if comment.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(*comment.ParentCommentID)
		if err != nil {
			return false
		}
		if parent.ArticleID != comment.ArticleID {
			return false
		}
	}

	comment.CreatedDate = time.Now()
	comment.IsApproved = false

	if err := s.commentRepo.Create(comment); err != nil {
		s.log.Error("create comment failed",
			zap.Uint("article_id", comment.ArticleID),
			zap.Error(err))
		return false
	}
	return true
}

func (s *commentService) UpdateComment(comment *models.Comment) bool {
	now := time.Now()
	comment.UpdatedDate = &now
	if err := s.commentRepo.Update(comment); err != nil {
		s.log.Error("update comment failed", zap.Uint("comment_id", comment.ID), zap.Error(err))
		return false
	}
	return true
}

// DeleteComment is restricted while replies exist: children are never
// cascade-deleted with their parent.
func (s *commentService) DeleteComment(id uint) bool {
	if _, err := s.commentRepo.GetByID(id); err != nil {
		return false
	}
	hasReplies, err := s.commentRepo.HasReplies(id)
	if err != nil || hasReplies {
		return false
	}
	if err := s.commentRepo.Delete(id); err != nil {
		s.log.Error("delete comment failed", zap.Uint("comment_id", id), zap.Error(err))
		return false
	}
	return true
}

func (s *commentService) ApproveComment(id uint) bool {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return false
	}
	comment.IsApproved = true
	if err := s.commentRepo.Update(comment); err != nil {
		s.log.Error("approve comment failed", zap.Uint("comment_id", id), zap.Error(err))
		return false
	}
	return true
}
