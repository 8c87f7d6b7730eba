package usecases

import (
	"context"
	"fmt"
	"time"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type CreateTestTaskCommand struct {
	Title       string
	Description string
	Urgency     string
	Priority    int
	CreatorID   uint
	CallerRole  string
	AssigneeIDs []uint
	DueDate     *time.Time
	Attachments []task.FileRef
}

type CreateTestTaskResult struct {
	TestTaskID uint
	Number     string
	Status     string
	CreatedAt  time.Time
}

type CreateTestTaskUseCase struct {
	testTaskRepo task.TestTaskRepository
	userRepo     user.UserRepository
	numbers      task.NumberGenerator
	notifier     Notifier
	logger       logger.Interface
}

func NewCreateTestTaskUseCase(
	testTaskRepo task.TestTaskRepository,
	userRepo user.UserRepository,
	numbers task.NumberGenerator,
	notifier Notifier,
	logger logger.Interface,
) *CreateTestTaskUseCase {
	return &CreateTestTaskUseCase{
		testTaskRepo: testTaskRepo,
		userRepo:     userRepo,
		numbers:      numbers,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute creates a test task. Assignees must hold one of the tester roles.
func (uc *CreateTestTaskUseCase) Execute(ctx context.Context, cmd CreateTestTaskCommand) (*CreateTestTaskResult, error) {
	uc.logger.Infow("executing create test task use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanCreateTestTask(role) {
		return nil, errors.NewForbiddenError("this role may not create test tasks")
	}

	urgency, err := vo.NewUrgency(cmd.Urgency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.checkAssignees(ctx, cmd.AssigneeIDs); err != nil {
		return nil, err
	}

	newTask, err := task.NewTestTask(cmd.Title, cmd.Description, urgency, priority, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate test task number", "error", err)
		return nil, errors.NewInternalError("failed to generate test task number")
	}
	if err := newTask.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if len(cmd.AssigneeIDs) > 0 {
		newTask.Assign(cmd.AssigneeIDs, cmd.CreatorID)
	}
	for _, file := range cmd.Attachments {
		newTask.AddAttachment(file)
	}

	if err := uc.testTaskRepo.Save(ctx, newTask); err != nil {
		uc.logger.Errorw("failed to save test task", "error", err)
		return nil, err
	}

	if len(cmd.AssigneeIDs) > 0 {
		taskID := newTask.ID()
		uc.notifier.NotifyUsers(ctx,
			cmd.AssigneeIDs,
			fmt.Sprintf("You were assigned to test task %s", newTask.Number()),
			&taskID,
			notification.ModelTestTask,
		)
	}

	uc.logger.Infow("test task created", "test_task_id", newTask.ID(), "number", newTask.Number())

	return &CreateTestTaskResult{
		TestTaskID: newTask.ID(),
		Number:     newTask.Number(),
		Status:     newTask.Status().String(),
		CreatedAt:  newTask.CreatedAt(),
	}, nil
}

func (uc *CreateTestTaskUseCase) checkAssignees(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(users) != len(ids) {
		return errors.NewValidationError("one or more assignees do not exist")
	}
	for _, u := range users {
		if u.Role() != authorization.RoleTester && u.Role() != authorization.RoleResponsibleTester {
			return errors.NewValidationError(
				fmt.Sprintf("user %d is not a tester", u.ID()))
		}
	}
	return nil
}
