package mappers

import (
	"encoding/json"
	"fmt"

	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/infrastructure/persistence/models"
)

// TaskMapper handles the conversion between Task/TestTask domain entities
// and persistence models. The sub-lists are JSON columns.
type TaskMapper interface {
	ToModel(t *task.Task) (*models.TaskModel, error)
	ToDomain(model *models.TaskModel) (*task.Task, error)

	TestTaskToModel(t *task.TestTask) (*models.TestTaskModel, error)
	TestTaskToDomain(model *models.TestTaskModel) (*task.TestTask, error)
}

type TaskMapperImpl struct{}

func NewTaskMapper() TaskMapper {
	return &TaskMapperImpl{}
}

func (m *TaskMapperImpl) ToModel(t *task.Task) (*models.TaskModel, error) {
	model := &models.TaskModel{
		ID:             t.ID(),
		Number:         t.Number(),
		Name:           t.Name(),
		Description:    t.Description(),
		CreatorID:      t.CreatorID(),
		Urgency:        t.Urgency().String(),
		Priority:       t.Priority().Int(),
		Status:         t.Status().String(),
		DueDate:        timePtrToMillis(t.DueDate()),
		StartDate:      timePtrToMillis(t.StartDate()),
		CompletionDate: timePtrToMillis(t.CompletionDate()),
		EstimatedHours: t.EstimatedHours(),
		ActualHours:    t.ActualHours(),
		ParentID:       t.ParentID(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}

	var err error
	if ids := t.AssigneeIDs(); len(ids) > 0 {
		if model.AssigneeIDs, err = marshalList(ids, "task assignees"); err != nil {
			return nil, err
		}
	}
	if files := t.Attachments(); len(files) > 0 {
		if model.Attachments, err = marshalList(files, "task attachments"); err != nil {
			return nil, err
		}
	}
	if blockers := t.Blockers(); len(blockers) > 0 {
		if model.Blockers, err = marshalList(blockers, "task blockers"); err != nil {
			return nil, err
		}
	}
	if comments := t.Comments(); len(comments) > 0 {
		if model.Comments, err = marshalList(comments, "task comments"); err != nil {
			return nil, err
		}
	}
	if ids := t.SubtaskIDs(); len(ids) > 0 {
		if model.SubtaskIDs, err = marshalList(ids, "task subtasks"); err != nil {
			return nil, err
		}
	}
	if history := t.History(); len(history) > 0 {
		if model.History, err = marshalList(history, "task history"); err != nil {
			return nil, err
		}
	}

	return model, nil
}

func (m *TaskMapperImpl) ToDomain(model *models.TaskModel) (*task.Task, error) {
	var assigneeIDs []uint
	if model.AssigneeIDs != "" {
		if err := json.Unmarshal([]byte(model.AssigneeIDs), &assigneeIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task assignees (id=%d): %w", model.ID, err)
		}
	}

	var attachments []task.FileRef
	if model.Attachments != "" {
		if err := json.Unmarshal([]byte(model.Attachments), &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task attachments (id=%d): %w", model.ID, err)
		}
	}

	var blockers []task.Blocker
	if model.Blockers != "" {
		if err := json.Unmarshal([]byte(model.Blockers), &blockers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task blockers (id=%d): %w", model.ID, err)
		}
	}

	var comments []task.Comment
	if model.Comments != "" {
		if err := json.Unmarshal([]byte(model.Comments), &comments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task comments (id=%d): %w", model.ID, err)
		}
	}

	var subtaskIDs []uint
	if model.SubtaskIDs != "" {
		if err := json.Unmarshal([]byte(model.SubtaskIDs), &subtaskIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task subtasks (id=%d): %w", model.ID, err)
		}
	}

	var history []task.HistoryEntry
	if model.History != "" {
		if err := json.Unmarshal([]byte(model.History), &history); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task history (id=%d): %w", model.ID, err)
		}
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority on task %d: %w", model.ID, err)
	}

	return task.ReconstructTask(
		model.ID,
		model.Number,
		model.Name,
		model.Description,
		assigneeIDs,
		model.CreatorID,
		vo.Urgency(model.Urgency),
		priority,
		vo.TaskStatus(model.Status),
		millisPtrToTime(model.DueDate),
		millisPtrToTime(model.StartDate),
		millisPtrToTime(model.CompletionDate),
		model.EstimatedHours,
		model.ActualHours,
		attachments,
		blockers,
		comments,
		model.ParentID,
		subtaskIDs,
		history,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TaskMapperImpl) TestTaskToModel(t *task.TestTask) (*models.TestTaskModel, error) {
	model := &models.TestTaskModel{
		ID:          t.ID(),
		Number:      t.Number(),
		Title:       t.Title(),
		Description: t.Description(),
		CreatorID:   t.CreatorID(),
		Urgency:     t.Urgency().String(),
		Priority:    t.Priority().Int(),
		Status:      t.Status().String(),
		DueDate:     timePtrToMillis(t.DueDate()),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	var err error
	if ids := t.AssigneeIDs(); len(ids) > 0 {
		if model.AssigneeIDs, err = marshalList(ids, "test task assignees"); err != nil {
			return nil, err
		}
	}
	if files := t.Attachments(); len(files) > 0 {
		if model.Attachments, err = marshalList(files, "test task attachments"); err != nil {
			return nil, err
		}
	}
	if blockers := t.Blockers(); len(blockers) > 0 {
		if model.Blockers, err = marshalList(blockers, "test task blockers"); err != nil {
			return nil, err
		}
	}
	if comments := t.Comments(); len(comments) > 0 {
		if model.Comments, err = marshalList(comments, "test task comments"); err != nil {
			return nil, err
		}
	}
	if history := t.History(); len(history) > 0 {
		if model.History, err = marshalList(history, "test task history"); err != nil {
			return nil, err
		}
	}

	return model, nil
}

func (m *TaskMapperImpl) TestTaskToDomain(model *models.TestTaskModel) (*task.TestTask, error) {
	var assigneeIDs []uint
	if model.AssigneeIDs != "" {
		if err := json.Unmarshal([]byte(model.AssigneeIDs), &assigneeIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test task assignees (id=%d): %w", model.ID, err)
		}
	}

	var attachments []task.FileRef
	if model.Attachments != "" {
		if err := json.Unmarshal([]byte(model.Attachments), &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test task attachments (id=%d): %w", model.ID, err)
		}
	}

	var blockers []task.Blocker
	if model.Blockers != "" {
		if err := json.Unmarshal([]byte(model.Blockers), &blockers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test task blockers (id=%d): %w", model.ID, err)
		}
	}

	var comments []task.Comment
	if model.Comments != "" {
		if err := json.Unmarshal([]byte(model.Comments), &comments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test task comments (id=%d): %w", model.ID, err)
		}
	}

	var history []task.HistoryEntry
	if model.History != "" {
		if err := json.Unmarshal([]byte(model.History), &history); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test task history (id=%d): %w", model.ID, err)
		}
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority on test task %d: %w", model.ID, err)
	}

	return task.ReconstructTestTask(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		assigneeIDs,
		model.CreatorID,
		vo.Urgency(model.Urgency),
		priority,
		vo.TestTaskStatus(model.Status),
		millisPtrToTime(model.DueDate),
		attachments,
		blockers,
		comments,
		history,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
