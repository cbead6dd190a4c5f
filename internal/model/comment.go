package model

import "time"

// Comment belongs to exactly one task. Author is optional; an empty author is
// stored as NULL, never as an empty string.
type Comment struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	TaskID    uint      `gorm:"column:task_id;not null;index:idx_comment_task_id" json:"task_id"`
	Content   string    `gorm:"column:content;size:1000;not null" json:"content"`
	Author    *string   `gorm:"column:author;size:120" json:"author"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
