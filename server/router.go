package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskdesk/taskdesk/internal/db"
	"github.com/taskdesk/taskdesk/pkg/utils"
	"github.com/taskdesk/taskdesk/server/common"
	"github.com/taskdesk/taskdesk/server/handles"
)

// Init wires middleware and the route table onto the engine. The store is
// passed through to every handler.
func Init(e *gin.Engine, store *db.Store) {
	e.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		utils.Log.Errorf("panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		common.ErrorStrResp(c, "Internal Server Error", http.StatusInternalServerError)
	}))
	e.Use(cors.Default())

	// Wrong-method requests fall through to NoRoute as well, so every
	// unmatched request gets the same generic 404 envelope.
	e.NoRoute(func(c *gin.Context) {
		common.ErrorStrResp(c, "Not found", http.StatusNotFound)
	})

	e.GET("/health", handles.Health)

	api := e.Group("/api")
	tasks := api.Group("/tasks")
	tasks.GET("", handles.ListTasks(store))
	tasks.POST("", handles.CreateTask(store))
	tasks.GET("/:task_id", handles.GetTask(store))
	tasks.PUT("/:task_id", handles.UpdateTask(store))
	tasks.DELETE("/:task_id", handles.DeleteTask(store))

	comments := tasks.Group("/:task_id/comments")
	comments.GET("", handles.ListComments(store))
	comments.POST("", handles.CreateComment(store))
	comments.PUT("/:comment_id", handles.UpdateComment(store))
	comments.DELETE("/:comment_id", handles.DeleteComment(store))
}
