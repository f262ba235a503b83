package services

import (
	"context"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

// ApprovalNotifier is told when a user gains access, so their client can
// re-resolve its screen without polling.
type ApprovalNotifier interface {
	NotifyApproved(userID string)
}

// ApprovalService manages the registered-student approval queue.
type ApprovalService struct {
	users    store.UserRepository
	notifier ApprovalNotifier
}

func NewApprovalService(users store.UserRepository, notifier ApprovalNotifier) *ApprovalService {
	return &ApprovalService{users: users, notifier: notifier}
}

// ListPending returns users still waiting for approval, in store order.
func (s *ApprovalService) ListPending(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Approve flips the user's approval flag. On a store fault nothing changes
// locally: the user stays listed as pending, which is the safe default.
func (s *ApprovalService) Approve(ctx context.Context, userID string) error {
	if err := s.users.SetApproved(ctx, userID, true); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyApproved(userID)
	}
	return nil
}
