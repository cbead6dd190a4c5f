package handles

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/taskdesk/internal/db"
	"github.com/taskdesk/taskdesk/internal/model"
	"github.com/taskdesk/taskdesk/server/common"
	"gorm.io/gorm"
)

// fetchTask resolves the task_id path parameter to a task, answering 404 when
// the id does not parse or the task does not exist. The caller must return
// when ok is false.
func fetchTask(c *gin.Context, store *db.Store) (*model.Task, bool) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return nil, false
	}
	task, err := store.GetTask(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.ErrorStrResp(c, "Task not found", 404)
		} else {
			common.ErrorResp(c, err, 500)
		}
		return nil, false
	}
	return task, true
}

func ListTasks(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := store.ListTasks()
		if err != nil {
			common.ErrorResp(c, err, 500)
			return
		}
		common.SuccessResp(c, tasks)
	}
}

func CreateTask(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := ParsePayload(c)
		title := strings.TrimSpace(payload.Str("title"))
		if title == "" {
			common.ErrorStrResp(c, "'title' is required", 400)
			return
		}
		task := model.Task{
			Title:       title,
			Description: payload.OptStr("description"),
		}
		if err := store.CreateTask(&task); err != nil {
			common.ErrorResp(c, err, 500)
			return
		}
		common.CreatedResp(c, task)
	}
}

func GetTask(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := fetchTask(c, store)
		if !ok {
			return
		}
		common.SuccessResp(c, task)
	}
}

func UpdateTask(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := fetchTask(c, store)
		if !ok {
			return
		}
		payload := ParsePayload(c)
		changed := false
		if payload.Has("title") {
			title := strings.TrimSpace(payload.Str("title"))
			if title == "" {
				common.ErrorStrResp(c, "'title' cannot be empty", 400)
				return
			}
			if task.Title != title {
				task.Title = title
				changed = true
			}
		}
		if payload.Has("description") {
			if desc := payload.OptStr("description"); !optStrEqual(task.Description, desc) {
				task.Description = desc
				changed = true
			}
		}
		// a no-op update writes nothing, so updated_at only moves on a
		// real mutation
		if changed {
			if err := store.UpdateTask(task); err != nil {
				common.ErrorResp(c, err, 500)
				return
			}
		}
		common.SuccessResp(c, task)
	}
}

func DeleteTask(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := fetchTask(c, store)
		if !ok {
			return
		}
		if err := store.DeleteTask(task.ID); err != nil {
			common.ErrorResp(c, err, 500)
			return
		}
		common.SuccessResp(c, gin.H{"deleted": true})
	}
}
