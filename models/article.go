package models

import "time"

type Article struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Title       string     `json:"title" gorm:"not null"`
	Content     string     `json:"content" gorm:"type:text"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date"`
	ViewCount   int        `json:"view_count"`
	IsPublished bool       `json:"is_published"`
	AuthorID    uint       `json:"author_id" gorm:"not null;index"`
	Author      *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`

	// Tags are resolved through the article_tags join table and attached by
	// the service layer.
	Tags []Tag `json:"tags,omitempty" gorm:"-"`
}

// ArticleTag is the join row between articles and tags. Rows are managed
// explicitly by the article repository so deletes can never leave danglers.
type ArticleTag struct {
	ArticleID uint `json:"article_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}
