package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
	TagIDs  []uint `json:"tag_ids"`
}

type UpdateArticleRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
	TagIDs  []uint `json:"tag_ids"`
}

type CreateTagRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	Description string `json:"description"`
}

type UpdateTagRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	Description string `json:"description"`
}

type CreateCommentRequest struct {
	ArticleID       uint   `json:"article_id" binding:"required"`
	Content         string `json:"content" binding:"required,max=2000"`
	ParentCommentID *uint  `json:"parent_comment_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CreateUserRequest is the admin-facing variant of registration. Validated
// through the helper validator rather than gin binding so field errors come
// back translated.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	IsActive *bool  `json:"is_active"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type ArticleListParams struct {
	Scope    string `form:"scope,default=published"`
	AuthorID uint   `form:"author_id"`
	TagID    uint   `form:"tag_id"`
}
