package services

import (
	"errors"
	"strings"

	"testblog/errs"
	"testblog/models"
	"testblog/repositories"

	"go.uber.org/zap"
)

type TagService interface {
	GetTagByID(id uint) (*models.Tag, error)
	GetTagByName(name string) (*models.Tag, error)
	GetAllTags() ([]models.Tag, error)
	GetPopularTags(count int) ([]models.Tag, error)
	CreateTag(tag *models.Tag) bool
	UpdateTag(tag *models.Tag) bool
	DeleteTag(id uint) bool
}

type tagService struct {
	tagRepo repositories.TagRepository
	log     *zap.Logger
}

func NewTagService(tagRepo repositories.TagRepository, log *zap.Logger) TagService {
	return &tagService{tagRepo: tagRepo, log: log}
}

func (s *tagService) GetTagByID(id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}

// GetTagByName is one of the few lookups where a miss is surfaced as a typed
// error rather than swallowed; callers branch on ErrTagNotFound.
func (s *tagService) GetTagByName(name string) (*models.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, repositories.ErrTagNotFound
	}
	return s.tagRepo.GetByName(name)
}

func (s *tagService) GetAllTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetPopularTags(count int) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if count < len(tags) {
		tags = tags[:count]
	}
	return tags, nil
}

func (s *tagService) CreateTag(tag *models.Tag) bool {
	if strings.TrimSpace(tag.Name) == "" {
		return false
	}
	_, err := s.tagRepo.GetByName(tag.Name)
	if err == nil {
		return false
	}
	if !errors.Is(err, repositories.ErrTagNotFound) {
		s.log.Error("tag lookup failed", zap.String("name", tag.Name), zap.Error(err))
		return false
	}

	if err := s.tagRepo.Create(tag); err != nil {
		s.log.Error("create tag failed",
			zap.String("name", tag.Name),
			zap.Error(err),
			zap.Bool("constraint", errs.ConstraintViolation(err)))
		return false
	}
	s.log.Info("tag created", zap.Uint("tag_id", tag.ID), zap.String("name", tag.Name))
	return true
}

func (s *tagService) UpdateTag(tag *models.Tag) bool {
	if err := s.tagRepo.Update(tag); err != nil {
		s.log.Error("update tag failed", zap.Uint("tag_id", tag.ID), zap.Error(err))
		return false
	}
	return true
}

// DeleteTag removes the join rows first, then the tag, so no article keeps a
// reference to an id that is gone.
func (s *tagService) DeleteTag(id uint) bool {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return false
	}
	if err := s.tagRepo.DeleteWithArticleTags(id); err != nil {
		s.log.Error("delete tag failed", zap.Uint("tag_id", id), zap.Error(err))
		return false
	}
	s.log.Info("tag deleted", zap.Uint("tag_id", id), zap.String("name", tag.Name))
	return true
}
