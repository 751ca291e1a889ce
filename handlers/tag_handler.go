package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"testblog/middleware"
	"testblog/models"
	"testblog/repositories"
	"testblog/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService     services.TagService
	articleService services.ArticleService
}

func NewTagHandler(tagService services.TagService, articleService services.ArticleService) *TagHandler {
	return &TagHandler{tagService: tagService, articleService: articleService}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		tags, err := h.tagService.GetPopularTags(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tags"})
			return
		}
		c.JSON(http.StatusOK, tags)
		return
	}

	tags, err := h.tagService.GetAllTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	tag, err := h.tagService.GetTagByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) GetTagArticles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	if _, err := h.tagService.GetTagByID(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tag"})
		return
	}

	articles, err := h.articleService.GetArticlesByTag(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}
	articles = visibleArticles(middleware.GetClaims(c), articles)
	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag := models.Tag{Name: req.Name, Description: req.Description}
	if !h.tagService.CreateTag(&tag) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag already exists"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/tags/%d", tag.ID))
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	var req models.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.GetTagByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}

	tag.Name = req.Name
	tag.Description = req.Description
	if !h.tagService.UpdateTag(tag) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update tag"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	if !h.tagService.DeleteTag(uint(id)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
