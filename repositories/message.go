//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"

	"slingshot/domain"
)

// IMessageRepository is the durable store for chat messages. Both variants
// (relational and in-memory) implement the same contract:
//   - Append validates content and role, assigns a monotonic identity and a
//     server timestamp, and never notifies the realtime channel.
//   - List returns the owner's messages ordered by creation time ascending,
//     optionally filtered to one project.
//   - Remove is idempotent: deleting an unknown id is a silent success.
type IMessageRepository interface {
	Append(ctx context.Context, content string, role domain.Role, userID string, projectID *int64) (domain.Message, error)
	List(ctx context.Context, userID string, projectID *int64) ([]domain.Message, error)
	Remove(ctx context.Context, id int64) error
}
