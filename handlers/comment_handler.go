package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"testblog/middleware"
	"testblog/models"
	"testblog/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	articleService services.ArticleService
}

func NewCommentHandler(commentService services.CommentService, articleService services.ArticleService) *CommentHandler {
	return &CommentHandler{commentService: commentService, articleService: articleService}
}

func (h *CommentHandler) GetCommentsByArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	comments, err := h.commentService.GetCommentsByArticle(uint(articleID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	comment, err := h.commentService.GetCommentByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) GetReplies(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	replies, err := h.commentService.GetReplies(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load replies"})
		return
	}
	c.JSON(http.StatusOK, replies)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.articleService.GetArticleByID(req.ArticleID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article not found"})
		return
	}

	comment := models.Comment{
		Content:         req.Content,
		ArticleID:       req.ArticleID,
		UserID:          userID,
		ParentCommentID: req.ParentCommentID,
	}

	if !h.commentService.CreateComment(&comment) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create comment"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/comments/%d", comment.ID))
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.GetCommentByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	if comment.UserID != claims.UserID && !claims.HasAnyRole(models.RoleAdmin, models.RoleModerator) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}

	comment.Content = req.Content
	if !h.commentService.UpdateComment(comment) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update comment"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	comment, err := h.commentService.GetCommentByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	if comment.UserID != claims.UserID && !claims.HasAnyRole(models.RoleAdmin, models.RoleModerator) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}

	// Deletion is refused while replies exist.
	if !h.commentService.DeleteComment(comment.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment has replies"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) ApproveComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	if !h.commentService.ApproveComment(uint(id)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
