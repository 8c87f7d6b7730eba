package usecases

import (
	"context"
	"fmt"
	"time"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type CreateTaskCommand struct {
	Name        string
	Description string
	Urgency     string
	Priority    int
	CreatorID   uint
	CallerRole  string
	ParentID    *uint
	AssigneeIDs []uint
	DueDate     *time.Time
	Attachments []task.FileRef
}

type CreateTaskResult struct {
	TaskID    uint
	Number    string
	Status    string
	CreatedAt time.Time
}

type CreateTaskUseCase struct {
	taskRepo task.TaskRepository
	numbers  task.NumberGenerator
	notifier Notifier
	logger   logger.Interface
}

func NewCreateTaskUseCase(
	taskRepo task.TaskRepository,
	numbers task.NumberGenerator,
	notifier Notifier,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		numbers:  numbers,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	uc.logger.Infow("executing create task use case", "name", cmd.Name, "creator_id", cmd.CreatorID)

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanCreateTask(role) {
		return nil, errors.NewForbiddenError("this role may not create tasks")
	}

	urgency, err := vo.NewUrgency(cmd.Urgency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// A subtask must point at an existing parent.
	if cmd.ParentID != nil {
		if _, err := uc.taskRepo.GetByID(ctx, *cmd.ParentID); err != nil {
			return nil, err
		}
	}

	newTask, err := task.NewTask(cmd.Name, cmd.Description, urgency, priority, cmd.CreatorID, cmd.ParentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate task number", "error", err)
		return nil, errors.NewInternalError("failed to generate task number")
	}
	if err := newTask.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if len(cmd.AssigneeIDs) > 0 {
		newTask.Assign(cmd.AssigneeIDs, cmd.CreatorID)
	}
	if cmd.DueDate != nil {
		newTask.SetDueDate(*cmd.DueDate)
	}
	for _, file := range cmd.Attachments {
		newTask.AddAttachment(file)
	}

	if err := uc.taskRepo.Save(ctx, newTask); err != nil {
		uc.logger.Errorw("failed to save task", "error", err)
		return nil, err
	}

	if len(cmd.AssigneeIDs) > 0 {
		taskID := newTask.ID()
		uc.notifier.NotifyUsers(ctx,
			cmd.AssigneeIDs,
			fmt.Sprintf("You were assigned to task %s", newTask.Number()),
			&taskID,
			notification.ModelTask,
		)
	}

	// Register this task on the parent's subtask list.
	if cmd.ParentID != nil {
		if err := uc.linkToParent(ctx, *cmd.ParentID, newTask.ID(), cmd.CreatorID); err != nil {
			uc.logger.Errorw("failed to link subtask to parent", "error", err, "parent_id", *cmd.ParentID)
		}
	}

	uc.logger.Infow("task created", "task_id", newTask.ID(), "number", newTask.Number())

	return &CreateTaskResult{
		TaskID:    newTask.ID(),
		Number:    newTask.Number(),
		Status:    newTask.Status().String(),
		CreatedAt: newTask.CreatedAt(),
	}, nil
}

func (uc *CreateTaskUseCase) linkToParent(ctx context.Context, parentID, subtaskID, linkedBy uint) error {
	parent, err := uc.taskRepo.GetByID(ctx, parentID)
	if err != nil {
		return err
	}
	if err := parent.LinkSubtask(subtaskID, linkedBy); err != nil {
		return err
	}
	return uc.taskRepo.Update(ctx, parent)
}
