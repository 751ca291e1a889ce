package models

import "time"

// Comment is a node in a flat parent-id tree. Children are derived by a
// lookup on parent_comment_id, never stored as a collection on the parent.
type Comment struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	Content         string     `json:"content" gorm:"size:2000;not null"`
	CreatedDate     time.Time  `json:"created_date"`
	UpdatedDate     *time.Time `json:"updated_date"`
	ArticleID       uint       `json:"article_id" gorm:"not null;index"`
	UserID          uint       `json:"user_id" gorm:"not null;index"`
	ParentCommentID *uint      `json:"parent_comment_id" gorm:"index"`
	IsApproved      bool       `json:"is_approved"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
