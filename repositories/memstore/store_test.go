package memstore

import (
	"context"
	"testing"

	"slingshot/domain"
	"slingshot/errors"

	"github.com/stretchr/testify/require"
)

func Test_Append_Assigns_Monotonic_Ids(t *testing.T) {
	req := require.New(t)
	repo := New().Messages()
	ctx := context.Background()

	first, err := repo.Append(ctx, "one", domain.RoleUser, "user-1", nil)
	req.NoError(err)
	second, err := repo.Append(ctx, "two", domain.RoleAssistant, "user-1", nil)
	req.NoError(err)

	req.Equal(int64(1), first.ID)
	req.Equal(int64(2), second.ID)
	req.False(first.CreatedAt.IsZero())
}

func Test_Append_Rejects_Invalid_Input_Without_Writing(t *testing.T) {
	req := require.New(t)
	repo := New().Messages()
	ctx := context.Background()

	_, err := repo.Append(ctx, "", domain.RoleUser, "user-1", nil)
	req.ErrorIs(err, errors.ErrEmptyContent)

	_, err = repo.Append(ctx, "hello", domain.Role("robot"), "user-1", nil)
	req.ErrorIs(err, errors.ErrInvalidRole)

	messages, err := repo.List(ctx, "user-1", nil)
	req.NoError(err)
	req.Empty(messages)
}

func Test_List_Orders_And_Filters(t *testing.T) {
	req := require.New(t)
	repo := New().Messages()
	ctx := context.Background()

	projectID := int64(7)
	_, err := repo.Append(ctx, "scoped", domain.RoleUser, "user-1", &projectID)
	req.NoError(err)
	_, err = repo.Append(ctx, "unscoped", domain.RoleUser, "user-1", nil)
	req.NoError(err)
	_, err = repo.Append(ctx, "theirs", domain.RoleUser, "user-2", nil)
	req.NoError(err)

	all, err := repo.List(ctx, "user-1", nil)
	req.NoError(err)
	req.Len(all, 2)
	// Creation order is preserved; equal timestamps fall back to id order.
	req.Equal("scoped", all[0].Content)
	req.Equal("unscoped", all[1].Content)

	scoped, err := repo.List(ctx, "user-1", &projectID)
	req.NoError(err)
	req.Len(scoped, 1)
	req.Equal("scoped", scoped[0].Content)
}

func Test_Remove_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repo := New().Messages()
	ctx := context.Background()

	msg, err := repo.Append(ctx, "doomed", domain.RoleUser, "user-1", nil)
	req.NoError(err)

	req.NoError(repo.Remove(ctx, msg.ID))
	req.NoError(repo.Remove(ctx, msg.ID))
	req.NoError(repo.Remove(ctx, 404))
}

func Test_User_Contract(t *testing.T) {
	req := require.New(t)
	repo := New().Users()
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.User{ID: "uuid-1", Email: "alice@example.com"})
	req.NoError(err)

	_, err = repo.Create(ctx, domain.User{ID: "uuid-2", Email: "alice@example.com"})
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	req.NoError(err)
	req.Equal("uuid-1", user.ID)

	_, err = repo.Get(ctx, "ghost")
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = repo.Upsert(ctx, domain.User{ID: "uuid-1", Email: "alice@example.com", FirstName: "Alice"})
	req.NoError(err)
	user, err = repo.Get(ctx, "uuid-1")
	req.NoError(err)
	req.Equal("Alice", user.FirstName)
}

func Test_Project_Contract(t *testing.T) {
	req := require.New(t)
	repo := New().Projects()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Project{Name: "Port the gateway", OwnerID: "user-1"})
	req.NoError(err)
	req.Equal(domain.ProjectActive, created.Status)

	progress := 40
	updated, err := repo.Update(ctx, created.ID, domain.ProjectPatch{Progress: &progress})
	req.NoError(err)
	req.Equal(40, updated.Progress)
	req.Equal("Port the gateway", updated.Name)

	_, err = repo.Update(ctx, 404, domain.ProjectPatch{Progress: &progress})
	req.ErrorIs(err, errors.ErrNotFound)

	req.NoError(repo.Delete(ctx, created.ID))
	req.NoError(repo.Delete(ctx, created.ID))
}

func Test_Agent_Contract(t *testing.T) {
	req := require.New(t)
	repo := New().Agents()
	ctx := context.Background()

	projectID := int64(3)
	_, err := repo.Create(ctx, domain.Agent{Name: "Reviewer", Type: domain.AgentCodeReview, ProjectID: &projectID})
	req.NoError(err)
	unscoped, err := repo.Create(ctx, domain.Agent{Name: "Documenter", Type: domain.AgentDocumentation})
	req.NoError(err)
	req.Equal(domain.AgentIdle, unscoped.Status)

	all, err := repo.List(ctx, nil)
	req.NoError(err)
	req.Len(all, 2)

	scoped, err := repo.List(ctx, &projectID)
	req.NoError(err)
	req.Len(scoped, 1)
	req.Equal("Reviewer", scoped[0].Name)

	status := domain.AgentRunning
	updated, err := repo.Update(ctx, scoped[0].ID, domain.AgentPatch{Status: &status})
	req.NoError(err)
	req.Equal(domain.AgentRunning, updated.Status)

	_, err = repo.Update(ctx, 404, domain.AgentPatch{Status: &status})
	req.ErrorIs(err, errors.ErrNotFound)
}
