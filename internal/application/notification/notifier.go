// Package notification wires the notification use cases into a facade the
// other contexts call. Delivery is best effort: a failed notification write
// is logged and swallowed so it never fails the triggering operation.
package notification

import (
	"context"

	"deskflow/internal/application/notification/usecases"
	"deskflow/internal/domain/notification"
	"deskflow/internal/shared/logger"
)

type Notifier struct {
	createNotifications usecases.CreateNotificationsExecutor
	processMentions     usecases.ProcessMentionsExecutor
	logger              logger.Interface
}

func NewNotifier(
	createNotifications usecases.CreateNotificationsExecutor,
	processMentions usecases.ProcessMentionsExecutor,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		createNotifications: createNotifications,
		processMentions:     processMentions,
		logger:              logger,
	}
}

// NotifyUsers delivers the message to every recipient, logging failures
// instead of returning them.
func (n *Notifier) NotifyUsers(ctx context.Context, userIDs []uint, message string, relatedID *uint, relatedModel notification.RelatedModel) {
	if err := n.createNotifications.Execute(ctx, usecases.CreateNotificationsCommand{
		UserIDs:      userIDs,
		Message:      message,
		RelatedID:    relatedID,
		RelatedModel: relatedModel,
	}); err != nil {
		n.logger.Errorw("notification delivery failed",
			"error", err, "message", message, "recipients", len(userIDs))
	}
}

// ResolveMentions matches @mentions in text to registered users without
// notifying anyone. Resolution errors are logged and an empty result
// returned.
func (n *Notifier) ResolveMentions(ctx context.Context, text string) []usecases.ResolvedMention {
	resolved, err := n.processMentions.Resolve(ctx, text)
	if err != nil {
		n.logger.Errorw("mention resolution failed", "error", err)
		return nil
	}
	return resolved
}

// NotifyMentioned notifies previously resolved mentions. Callers invoke it
// after the mentioning entity has been persisted, so a failed write never
// leaves notifications for content that does not exist.
func (n *Notifier) NotifyMentioned(ctx context.Context, resolved []usecases.ResolvedMention, authorName, entityType string, relatedID *uint, relatedModel notification.RelatedModel) {
	if len(resolved) == 0 {
		return
	}
	if err := n.processMentions.Execute(ctx, usecases.ProcessMentionsCommand{
		Mentions:     resolved,
		AuthorName:   authorName,
		EntityType:   entityType,
		RelatedID:    relatedID,
		RelatedModel: relatedModel,
	}); err != nil {
		n.logger.Errorw("mention notification failed", "error", err, "entity_type", entityType)
	}
}
