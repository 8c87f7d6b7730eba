package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/logger"
)

// ResolvedMention is an @token matched to a registered user.
type ResolvedMention struct {
	UserID uint
	Token  string
}

type ProcessMentionsCommand struct {
	Mentions     []ResolvedMention
	AuthorName   string
	EntityType   string
	RelatedID    *uint
	RelatedModel notification.RelatedModel
}

type ProcessMentionsUseCase struct {
	userRepo            user.UserRepository
	createNotifications CreateNotificationsExecutor
	logger              logger.Interface
}

func NewProcessMentionsUseCase(
	userRepo user.UserRepository,
	createNotifications CreateNotificationsExecutor,
	logger logger.Interface,
) *ProcessMentionsUseCase {
	return &ProcessMentionsUseCase{
		userRepo:            userRepo,
		createNotifications: createNotifications,
		logger:              logger,
	}
}

// Resolve extracts @tokens from the text and matches them against
// registered users. Matching is case sensitive on the user's first and
// last name concatenated without spaces. Unmatched tokens are skipped
// silently. Resolution sends nothing; callers notify via Execute once
// the mentioning entity has been persisted.
func (uc *ProcessMentionsUseCase) Resolve(ctx context.Context, text string) ([]ResolvedMention, error) {
	tokens := notification.ExtractMentions(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	users, _, err := uc.userRepo.ListAll(ctx, 0, 0)
	if err != nil {
		uc.logger.Errorw("failed to load users for mention resolution", "error", err)
		return nil, err
	}

	byKey := make(map[string]*user.User, len(users))
	for _, u := range users {
		byKey[u.MentionKey()] = u
	}

	var resolved []ResolvedMention
	for _, token := range tokens {
		if u, ok := byKey[token]; ok {
			resolved = append(resolved, ResolvedMention{UserID: u.ID(), Token: token})
		}
	}
	return resolved, nil
}

// Execute notifies previously resolved mentions. A user mentioned several
// times in the same text is notified once.
func (uc *ProcessMentionsUseCase) Execute(ctx context.Context, cmd ProcessMentionsCommand) error {
	var recipients []uint
	seen := map[uint]bool{}
	for _, m := range cmd.Mentions {
		if !seen[m.UserID] {
			seen[m.UserID] = true
			recipients = append(recipients, m.UserID)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	message := fmt.Sprintf("%s mentioned you in a %s", cmd.AuthorName, cmd.EntityType)
	if err := uc.createNotifications.Execute(ctx, CreateNotificationsCommand{
		UserIDs:      recipients,
		Message:      message,
		RelatedID:    cmd.RelatedID,
		RelatedModel: cmd.RelatedModel,
	}); err != nil {
		uc.logger.Errorw("failed to notify mentioned users", "error", err)
		return err
	}
	return nil
}
