package db

import (
	"github.com/pkg/errors"
	"github.com/taskdesk/taskdesk/internal/model"
	"gorm.io/gorm"
)

func (s *Store) ListTasks() ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := s.db.Order("id ASC").Find(&tasks).Error
	return tasks, errors.WithStack(err)
}

func (s *Store) GetTask(id uint) (*model.Task, error) {
	var task model.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find task %d", id)
	}
	return &task, nil
}

func (s *Store) CreateTask(task *model.Task) error {
	return errors.WithStack(s.db.Create(task).Error)
}

func (s *Store) UpdateTask(task *model.Task) error {
	return errors.WithStack(s.db.Save(task).Error)
}

// DeleteTask removes a task and all of its comments in one transaction. The
// cascade is executed explicitly so it does not depend on the backend
// honoring the foreign key constraint.
func (s *Store) DeleteTask(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(tx.Delete(&model.Task{}, id).Error)
	})
}
