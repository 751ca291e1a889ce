package models

type Tag struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Description string `json:"description"`
}
