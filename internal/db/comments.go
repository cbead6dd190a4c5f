package db

import (
	"github.com/pkg/errors"
	"github.com/taskdesk/taskdesk/internal/model"
)

func (s *Store) ListComments(taskID uint) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	err := s.db.Where("task_id = ?", taskID).Order("id ASC").Find(&comments).Error
	return comments, errors.WithStack(err)
}

// GetComment looks up a comment scoped to its task, so a valid comment id
// under the wrong task resolves to not found.
func (s *Store) GetComment(taskID, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := s.db.Where("id = ? AND task_id = ?", id, taskID).First(&comment).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find comment %d of task %d", id, taskID)
	}
	return &comment, nil
}

func (s *Store) CreateComment(comment *model.Comment) error {
	return errors.WithStack(s.db.Create(comment).Error)
}

func (s *Store) UpdateComment(comment *model.Comment) error {
	return errors.WithStack(s.db.Save(comment).Error)
}

func (s *Store) DeleteComment(taskID, id uint) error {
	return errors.WithStack(s.db.Where("task_id = ?", taskID).Delete(&model.Comment{}, id).Error)
}
