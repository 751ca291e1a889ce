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

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := middleware.GetClaims(c)

	if params.TagID > 0 {
		articles, err := h.articleService.GetArticlesByTag(params.TagID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
			return
		}
		articles = visibleArticles(claims, articles)
		c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
		return
	}

	var (
		articles []models.Article
		err      error
	)
	switch params.Scope {
	case "mine":
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		articles, err = h.articleService.GetArticlesByAuthor(claims.UserID)
	case "all":
		if claims == nil || !claims.HasAnyRole(models.RoleAdmin, models.RoleModerator) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		articles, err = h.articleService.GetAllArticles()
	default:
		if params.AuthorID > 0 {
			articles, err = h.articleService.GetArticlesByAuthor(params.AuthorID)
			articles = visibleArticles(claims, articles)
		} else {
			articles, err = h.articleService.GetPublishedArticles()
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

// visibleArticles narrows a listing to what the caller may see: published
// articles, the caller's own, and everything for Admin/Moderator. Drafts
// never leak to anonymous or unrelated readers through a filter.
func visibleArticles(claims *middleware.Claims, articles []models.Article) []models.Article {
	if claims != nil && claims.HasAnyRole(models.RoleAdmin, models.RoleModerator) {
		return articles
	}
	out := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		if article.IsPublished || (claims != nil && article.AuthorID == claims.UserID) {
			out = append(out, article)
		}
	}
	return out
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetArticleByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	h.articleService.IncrementViewCount(article.ID)
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := models.Article{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: claims.UserID,
	}

	if !h.articleService.CreateArticle(&article, req.TagIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create article"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/articles/%d", article.ID))
	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.GetArticleByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	// Ownership is decided against the session's user id, never a
	// client-supplied value.
	if article.AuthorID != claims.UserID && !claims.HasAnyRole(models.RoleAdmin, models.RoleModerator) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Author = nil

	if !h.articleService.UpdateArticle(article, req.TagIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update article"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetArticleByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}

	if article.AuthorID != claims.UserID && !claims.HasAnyRole(models.RoleAdmin, models.RoleModerator) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}

	if !h.articleService.DeleteArticle(article.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete article"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	h.setPublished(c, true)
}

func (h *ArticleHandler) UnpublishArticle(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *ArticleHandler) setPublished(c *gin.Context, published bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var ok bool
	if published {
		ok = h.articleService.PublishArticle(uint(id))
	} else {
		ok = h.articleService.UnpublishArticle(uint(id))
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
