package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdesk/taskdesk/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "test.db")
	g, err := gorm.Open(sqlite.Open(dbFile+"?_fk=1"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	store, err := NewWithDB(g)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func strPtr(s string) *string {
	return &s
}

func TestTaskCRUD(t *testing.T) {
	store := setupStore(t)

	task := &model.Task{Title: "first", Description: strPtr("desc")}
	require.NoError(t, store.CreateTask(task))
	require.NotZero(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())

	got, err := store.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "desc", *got.Description)

	got.Title = "renamed"
	require.NoError(t, store.UpdateTask(got))
	got, err = store.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	require.NoError(t, store.DeleteTask(task.ID))
	_, err = store.GetTask(task.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListTasksOrderedByID(t *testing.T) {
	store := setupStore(t)

	for _, title := range []string{"c", "a", "b"} {
		require.NoError(t, store.CreateTask(&model.Task{Title: title}))
	}
	tasks, err := store.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.True(t, tasks[0].ID < tasks[1].ID && tasks[1].ID < tasks[2].ID)
	assert.Equal(t, "c", tasks[0].Title)
}

func TestListTasksEmpty(t *testing.T) {
	store := setupStore(t)

	tasks, err := store.ListTasks()
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestCommentCRUD(t *testing.T) {
	store := setupStore(t)

	task := &model.Task{Title: "parent"}
	require.NoError(t, store.CreateTask(task))

	comment := &model.Comment{TaskID: task.ID, Content: "hello", Author: strPtr("alice")}
	require.NoError(t, store.CreateComment(comment))
	require.NotZero(t, comment.ID)

	got, err := store.GetComment(task.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)

	got.Author = nil
	require.NoError(t, store.UpdateComment(got))
	got, err = store.GetComment(task.ID, comment.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Author)

	require.NoError(t, store.DeleteComment(task.ID, comment.ID))
	_, err = store.GetComment(task.ID, comment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListCommentsScopedAndOrdered(t *testing.T) {
	store := setupStore(t)

	taskA := &model.Task{Title: "a"}
	taskB := &model.Task{Title: "b"}
	require.NoError(t, store.CreateTask(taskA))
	require.NoError(t, store.CreateTask(taskB))

	require.NoError(t, store.CreateComment(&model.Comment{TaskID: taskA.ID, Content: "one"}))
	require.NoError(t, store.CreateComment(&model.Comment{TaskID: taskB.ID, Content: "other"}))
	require.NoError(t, store.CreateComment(&model.Comment{TaskID: taskA.ID, Content: "two"}))

	comments, err := store.ListComments(taskA.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Content)
	assert.Equal(t, "two", comments[1].Content)
	assert.True(t, comments[0].ID < comments[1].ID)
}

func TestGetCommentWrongTaskNotFound(t *testing.T) {
	store := setupStore(t)

	taskA := &model.Task{Title: "a"}
	taskB := &model.Task{Title: "b"}
	require.NoError(t, store.CreateTask(taskA))
	require.NoError(t, store.CreateTask(taskB))

	comment := &model.Comment{TaskID: taskA.ID, Content: "scoped"}
	require.NoError(t, store.CreateComment(comment))

	_, err := store.GetComment(taskB.ID, comment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteTaskCascadesToComments(t *testing.T) {
	store := setupStore(t)

	task := &model.Task{Title: "doomed"}
	require.NoError(t, store.CreateTask(task))
	comment := &model.Comment{TaskID: task.ID, Content: "goes with it"}
	require.NoError(t, store.CreateComment(comment))

	require.NoError(t, store.DeleteTask(task.ID))

	_, err := store.GetTask(task.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	comments, err := store.ListComments(task.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
