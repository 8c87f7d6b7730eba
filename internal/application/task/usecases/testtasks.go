package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/application/task/dto"
	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type GetTestTaskQuery struct {
	TestTaskID uint
}

type GetTestTaskUseCase struct {
	testTaskRepo task.TestTaskRepository
	logger       logger.Interface
}

func NewGetTestTaskUseCase(testTaskRepo task.TestTaskRepository, logger logger.Interface) *GetTestTaskUseCase {
	return &GetTestTaskUseCase{testTaskRepo: testTaskRepo, logger: logger}
}

func (uc *GetTestTaskUseCase) Execute(ctx context.Context, query GetTestTaskQuery) (*dto.TestTaskDTO, error) {
	if query.TestTaskID == 0 {
		return nil, errors.NewValidationError("test task ID is required")
	}

	t, err := uc.testTaskRepo.GetByID(ctx, query.TestTaskID)
	if err != nil {
		return nil, err
	}
	return dto.FromTestTask(t), nil
}

type ListTestTasksQuery struct {
	Status     string
	AssigneeID uint
	Page       int
	PageSize   int
}

type ListTestTasksResult struct {
	TestTasks []*dto.TestTaskDTO
	Total     int64
}

type ListTestTasksUseCase struct {
	testTaskRepo task.TestTaskRepository
	logger       logger.Interface
}

func NewListTestTasksUseCase(testTaskRepo task.TestTaskRepository, logger logger.Interface) *ListTestTasksUseCase {
	return &ListTestTasksUseCase{testTaskRepo: testTaskRepo, logger: logger}
}

func (uc *ListTestTasksUseCase) Execute(ctx context.Context, query ListTestTasksQuery) (*ListTestTasksResult, error) {
	filter := task.TestTaskFilter{
		AssigneeID: query.AssigneeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTestTaskStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tasks, total, err := uc.testTaskRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list test tasks", "error", err)
		return nil, err
	}

	dtos := make([]*dto.TestTaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = dto.FromTestTask(t)
	}
	return &ListTestTasksResult{TestTasks: dtos, Total: total}, nil
}

type ChangeTestTaskStatusCommand struct {
	TestTaskID uint
	NewStatus  string
	ChangedBy  uint
}

type ChangeTestTaskStatusUseCase struct {
	testTaskRepo task.TestTaskRepository
	userRepo     user.UserRepository
	notifier     Notifier
	logger       logger.Interface
}

func NewChangeTestTaskStatusUseCase(
	testTaskRepo task.TestTaskRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *ChangeTestTaskStatusUseCase {
	return &ChangeTestTaskStatusUseCase{
		testTaskRepo: testTaskRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *ChangeTestTaskStatusUseCase) Execute(ctx context.Context, cmd ChangeTestTaskStatusCommand) error {
	if cmd.TestTaskID == 0 {
		return errors.NewValidationError("test task ID is required")
	}

	status, err := vo.NewTestTaskStatus(cmd.NewStatus)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	t, err := uc.testTaskRepo.GetByID(ctx, cmd.TestTaskID)
	if err != nil {
		return err
	}

	old := t.Status()
	changed, err := t.ChangeStatus(status, cmd.ChangedBy)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if !changed {
		return nil
	}

	if err := uc.testTaskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist test task status change", "error", err, "test_task_id", cmd.TestTaskID)
		return err
	}

	// The responsible testers track every verdict.
	if leads, err := uc.userRepo.ListByRole(ctx, authorization.RoleResponsibleTester); err != nil {
		uc.logger.Errorw("failed to load responsible testers for notification", "error", err)
	} else {
		ids := make([]uint, 0, len(leads))
		for _, l := range leads {
			ids = append(ids, l.ID())
		}
		taskID := t.ID()
		uc.notifier.NotifyUsers(ctx,
			ids,
			fmt.Sprintf("Test task %s moved from %s to %s", t.Number(), old, status),
			&taskID,
			notification.ModelTestTask,
		)
	}

	uc.logger.Infow("test task status changed",
		"test_task_id", cmd.TestTaskID, "from", old.String(), "to", status.String())
	return nil
}

type AssignTestTaskCommand struct {
	TestTaskID  uint
	AssigneeIDs []uint
	AssignedBy  uint
}

type AssignTestTaskUseCase struct {
	testTaskRepo task.TestTaskRepository
	userRepo     user.UserRepository
	notifier     Notifier
	logger       logger.Interface
}

func NewAssignTestTaskUseCase(
	testTaskRepo task.TestTaskRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *AssignTestTaskUseCase {
	return &AssignTestTaskUseCase{
		testTaskRepo: testTaskRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute replaces the assignee list. Test tasks only accept users whose
// role is exactly tester.
func (uc *AssignTestTaskUseCase) Execute(ctx context.Context, cmd AssignTestTaskCommand) error {
	if cmd.TestTaskID == 0 {
		return errors.NewValidationError("test task ID is required")
	}
	if len(cmd.AssigneeIDs) == 0 {
		return errors.NewValidationError("at least one assignee is required")
	}

	users, err := uc.userRepo.GetByIDs(ctx, cmd.AssigneeIDs)
	if err != nil {
		return err
	}
	if len(users) != len(cmd.AssigneeIDs) {
		return errors.NewValidationError("one or more assignees do not exist")
	}
	for _, u := range users {
		if u.Role() != authorization.RoleTester {
			return errors.NewValidationError(fmt.Sprintf("user %d is not a tester", u.ID()))
		}
	}

	t, err := uc.testTaskRepo.GetByID(ctx, cmd.TestTaskID)
	if err != nil {
		return err
	}

	previous := map[uint]bool{}
	for _, id := range t.AssigneeIDs() {
		previous[id] = true
	}

	t.Assign(cmd.AssigneeIDs, cmd.AssignedBy)

	if err := uc.testTaskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist test task assignment", "error", err, "test_task_id", cmd.TestTaskID)
		return err
	}

	var added []uint
	for _, id := range cmd.AssigneeIDs {
		if !previous[id] {
			added = append(added, id)
		}
	}

	taskID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		added,
		fmt.Sprintf("You were assigned to test task %s", t.Number()),
		&taskID,
		notification.ModelTestTask,
	)

	uc.logger.Infow("test task assigned", "test_task_id", cmd.TestTaskID, "assignees", cmd.AssigneeIDs)
	return nil
}

type AddTestTaskCommentCommand struct {
	TestTaskID uint
	AuthorID   uint
	AuthorName string
	Text       string
}

type AddTestTaskCommentUseCase struct {
	testTaskRepo task.TestTaskRepository
	notifier     Notifier
	logger       logger.Interface
}

func NewAddTestTaskCommentUseCase(
	testTaskRepo task.TestTaskRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddTestTaskCommentUseCase {
	return &AddTestTaskCommentUseCase{
		testTaskRepo: testTaskRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *AddTestTaskCommentUseCase) Execute(ctx context.Context, cmd AddTestTaskCommentCommand) error {
	if cmd.TestTaskID == 0 {
		return errors.NewValidationError("test task ID is required")
	}

	t, err := uc.testTaskRepo.GetByID(ctx, cmd.TestTaskID)
	if err != nil {
		return err
	}

	taskID := t.ID()
	resolved := uc.notifier.ResolveMentions(ctx, cmd.Text)

	mentions := make([]task.Mention, len(resolved))
	for i, m := range resolved {
		mentions[i] = task.Mention{UserID: m.UserID, Token: m.Token}
	}

	comment := task.Comment{
		AuthorID:   cmd.AuthorID,
		AuthorName: cmd.AuthorName,
		Text:       cmd.Text,
		Mentions:   mentions,
	}
	if err := t.AddComment(comment); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.testTaskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist test task comment", "error", err, "test_task_id", cmd.TestTaskID)
		return err
	}

	// Mention notifications go out only after the comment is saved.
	uc.notifier.NotifyMentioned(ctx, resolved, cmd.AuthorName, "test task", &taskID, notification.ModelTestTask)

	uc.logger.Infow("test task comment added", "test_task_id", cmd.TestTaskID, "mentions", len(mentions))
	return nil
}

type ReportTestTaskBlockerCommand struct {
	TestTaskID uint
	Reason     string
	CreatedBy  uint
}

type ReportTestTaskBlockerUseCase struct {
	testTaskRepo task.TestTaskRepository
	userRepo     user.UserRepository
	notifier     Notifier
	logger       logger.Interface
}

func NewReportTestTaskBlockerUseCase(
	testTaskRepo task.TestTaskRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *ReportTestTaskBlockerUseCase {
	return &ReportTestTaskBlockerUseCase{
		testTaskRepo: testTaskRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *ReportTestTaskBlockerUseCase) Execute(ctx context.Context, cmd ReportTestTaskBlockerCommand) error {
	if cmd.TestTaskID == 0 {
		return errors.NewValidationError("test task ID is required")
	}

	t, err := uc.testTaskRepo.GetByID(ctx, cmd.TestTaskID)
	if err != nil {
		return err
	}

	blocker := task.Blocker{Reason: cmd.Reason, CreatedBy: cmd.CreatedBy}
	if err := t.ReportBlocker(blocker); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.testTaskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist test task blocker", "error", err, "test_task_id", cmd.TestTaskID)
		return err
	}

	if leads, err := uc.userRepo.ListByRole(ctx, authorization.RoleResponsibleTester); err != nil {
		uc.logger.Errorw("failed to load responsible testers for notification", "error", err)
	} else {
		ids := make([]uint, 0, len(leads))
		for _, l := range leads {
			ids = append(ids, l.ID())
		}
		taskID := t.ID()
		uc.notifier.NotifyUsers(ctx,
			ids,
			fmt.Sprintf("Test task %s is blocked: %s", t.Number(), cmd.Reason),
			&taskID,
			notification.ModelTestTask,
		)
	}

	uc.logger.Infow("test task blocker reported", "test_task_id", cmd.TestTaskID)
	return nil
}

type ResolveTestTaskBlockerCommand struct {
	TestTaskID   uint
	BlockerIndex int
	Resolution   string
	ResolvedBy   uint
}

type ResolveTestTaskBlockerUseCase struct {
	testTaskRepo task.TestTaskRepository
	logger       logger.Interface
}

func NewResolveTestTaskBlockerUseCase(testTaskRepo task.TestTaskRepository, logger logger.Interface) *ResolveTestTaskBlockerUseCase {
	return &ResolveTestTaskBlockerUseCase{testTaskRepo: testTaskRepo, logger: logger}
}

func (uc *ResolveTestTaskBlockerUseCase) Execute(ctx context.Context, cmd ResolveTestTaskBlockerCommand) error {
	if cmd.TestTaskID == 0 {
		return errors.NewValidationError("test task ID is required")
	}

	t, err := uc.testTaskRepo.GetByID(ctx, cmd.TestTaskID)
	if err != nil {
		return err
	}

	if err := t.ResolveBlocker(cmd.BlockerIndex, cmd.Resolution, cmd.ResolvedBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.testTaskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist blocker resolution", "error", err, "test_task_id", cmd.TestTaskID)
		return err
	}

	uc.logger.Infow("test task blocker resolved", "test_task_id", cmd.TestTaskID, "index", cmd.BlockerIndex)
	return nil
}
