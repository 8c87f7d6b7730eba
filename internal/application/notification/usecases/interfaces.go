package usecases

import (
	"context"
)

type CreateNotificationsExecutor interface {
	Execute(ctx context.Context, cmd CreateNotificationsCommand) error
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) error
}

type MarkAllReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllReadCommand) error
}

type UnreadCountExecutor interface {
	Execute(ctx context.Context, query UnreadCountQuery) (int64, error)
}

type ProcessMentionsExecutor interface {
	Resolve(ctx context.Context, text string) ([]ResolvedMention, error)
	Execute(ctx context.Context, cmd ProcessMentionsCommand) error
}
