package usecases

import (
	"context"

	nusecases "deskflow/internal/application/notification/usecases"
	"deskflow/internal/application/task/dto"
	"deskflow/internal/domain/notification"
)

// Notifier is the slice of the notification facade the task use cases
// depend on.
type Notifier interface {
	NotifyUsers(ctx context.Context, userIDs []uint, message string, relatedID *uint, relatedModel notification.RelatedModel)
	ResolveMentions(ctx context.Context, text string) []nusecases.ResolvedMention
	NotifyMentioned(ctx context.Context, resolved []nusecases.ResolvedMention, authorName, entityType string, relatedID *uint, relatedModel notification.RelatedModel)
}

type CreateTaskExecutor interface {
	Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error)
}

type GetTaskExecutor interface {
	Execute(ctx context.Context, query GetTaskQuery) (*dto.TaskDTO, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error)
}

type ChangeTaskStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTaskStatusCommand) error
}

type AssignTaskExecutor interface {
	Execute(ctx context.Context, cmd AssignTaskCommand) error
}

type AddTaskCommentExecutor interface {
	Execute(ctx context.Context, cmd AddTaskCommentCommand) error
}

type ReportTaskBlockerExecutor interface {
	Execute(ctx context.Context, cmd ReportTaskBlockerCommand) error
}

type ResolveTaskBlockerExecutor interface {
	Execute(ctx context.Context, cmd ResolveTaskBlockerCommand) error
}

type LinkSubtaskExecutor interface {
	Execute(ctx context.Context, cmd LinkSubtaskCommand) error
}

type CreateTestTaskExecutor interface {
	Execute(ctx context.Context, cmd CreateTestTaskCommand) (*CreateTestTaskResult, error)
}

type GetTestTaskExecutor interface {
	Execute(ctx context.Context, query GetTestTaskQuery) (*dto.TestTaskDTO, error)
}

type ListTestTasksExecutor interface {
	Execute(ctx context.Context, query ListTestTasksQuery) (*ListTestTasksResult, error)
}

type ChangeTestTaskStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTestTaskStatusCommand) error
}

type AssignTestTaskExecutor interface {
	Execute(ctx context.Context, cmd AssignTestTaskCommand) error
}

type AddTestTaskCommentExecutor interface {
	Execute(ctx context.Context, cmd AddTestTaskCommentCommand) error
}

type ReportTestTaskBlockerExecutor interface {
	Execute(ctx context.Context, cmd ReportTestTaskBlockerCommand) error
}

type ResolveTestTaskBlockerExecutor interface {
	Execute(ctx context.Context, cmd ResolveTestTaskBlockerCommand) error
}
