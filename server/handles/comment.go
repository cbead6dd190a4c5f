package handles

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/taskdesk/internal/db"
	"github.com/taskdesk/taskdesk/internal/model"
	"github.com/taskdesk/taskdesk/server/common"
	"gorm.io/gorm"
)

const maxCommentLen = 1000

func fetchComment(c *gin.Context, store *db.Store, taskID uint) (*model.Comment, bool) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return nil, false
	}
	comment, err := store.GetComment(taskID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.ErrorStrResp(c, "Comment not found", 404)
		} else {
			common.ErrorResp(c, err, 500)
		}
		return nil, false
	}
	return comment, true
}

// normalizeAuthor maps empty authors to NULL so the column never holds an
// empty string.
func normalizeAuthor(author string) *string {
	if author == "" {
		return nil
	}
	return &author
}

func ListComments(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := fetchTask(c, store)
		if !ok {
			return
		}
		comments, err := store.ListComments(task.ID)
		if err != nil {
			common.ErrorResp(c, err, 500)
			return
		}
		common.SuccessResp(c, comments)
	}
}

func CreateComment(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := fetchTask(c, store)
		if !ok {
			return
		}
		payload := ParsePayload(c)
		content := strings.TrimSpace(payload.Str("content"))
		if content == "" {
			common.ErrorStrResp(c, "'content' is required", 400)
			return
		}
		if utf8.RuneCountInString(content) > maxCommentLen {
			common.ErrorStrResp(c, "'content' must be <= 1000 characters", 400)
			return
		}
		comment := model.Comment{
			TaskID:  task.ID,
			Content: content,
			Author:  normalizeAuthor(payload.Str("author")),
		}
		if err := store.CreateComment(&comment); err != nil {
			common.ErrorResp(c, err, 500)
			return
		}
		common.CreatedResp(c, comment)
	}
}

func UpdateComment(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := fetchTask(c, store)
		if !ok {
			return
		}
		comment, ok := fetchComment(c, store, task.ID)
		if !ok {
			return
		}
		payload := ParsePayload(c)
		changed := false
		if payload.Has("content") {
			content := strings.TrimSpace(payload.Str("content"))
			if content == "" {
				common.ErrorStrResp(c, "'content' cannot be empty", 400)
				return
			}
			if utf8.RuneCountInString(content) > maxCommentLen {
				common.ErrorStrResp(c, "'content' must be <= 1000 characters", 400)
				return
			}
			if comment.Content != content {
				comment.Content = content
				changed = true
			}
		}
		if payload.Has("author") {
			if author := normalizeAuthor(payload.Str("author")); !optStrEqual(comment.Author, author) {
				comment.Author = author
				changed = true
			}
		}
		if changed {
			if err := store.UpdateComment(comment); err != nil {
				common.ErrorResp(c, err, 500)
				return
			}
		}
		common.SuccessResp(c, comment)
	}
}

func DeleteComment(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := fetchTask(c, store)
		if !ok {
			return
		}
		comment, ok := fetchComment(c, store, task.ID)
		if !ok {
			return
		}
		if err := store.DeleteComment(task.ID, comment.ID); err != nil {
			common.ErrorResp(c, err, 500)
			return
		}
		common.SuccessResp(c, gin.H{"deleted": true})
	}
}
