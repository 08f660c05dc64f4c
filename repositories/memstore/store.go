// Package memstore is the in-memory storage fallback. It mirrors the
// relational variant's contracts, including the idempotent delete policy, so
// the two can be swapped by configuration alone.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"slingshot/domain"
	"slingshot/errors"
)

type Store struct {
	mu sync.RWMutex

	users    map[string]domain.User
	projects map[int64]domain.Project
	messages map[int64]domain.Message
	agents   map[int64]domain.Agent

	nextProjectID int64
	nextMessageID int64
	nextAgentID   int64
}

func New() *Store {
	return &Store{
		users:         make(map[string]domain.User),
		projects:      make(map[int64]domain.Project),
		messages:      make(map[int64]domain.Message),
		agents:        make(map[int64]domain.Agent),
		nextProjectID: 1,
		nextMessageID: 1,
		nextAgentID:   1,
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{store: s} }
func (s *Store) Projects() *ProjectRepository { return &ProjectRepository{store: s} }
func (s *Store) Messages() *MessageRepository { return &MessageRepository{store: s} }
func (s *Store) Agents() *AgentRepository     { return &AgentRepository{store: s} }

type MessageRepository struct {
	store *Store
}

func (r *MessageRepository) Append(ctx context.Context, content string, role domain.Role, userID string, projectID *int64) (domain.Message, error) {
	if err := domain.ValidateMessage(content, role); err != nil {
		return domain.Message{}, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := domain.Message{
		ID:        s.nextMessageID,
		Content:   content,
		Role:      role,
		UserID:    userID,
		ProjectID: projectID,
		CreatedAt: time.Now().UTC(),
	}
	s.nextMessageID++
	s.messages[msg.ID] = msg
	return msg, nil
}

func (r *MessageRepository) List(ctx context.Context, userID string, projectID *int64) ([]domain.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Message
	for _, m := range s.messages {
		if m.UserID != userID {
			continue
		}
		if projectID != nil && (m.ProjectID == nil || *m.ProjectID != *projectID) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MessageRepository) Remove(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, id)
	return nil
}

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.User{}, errors.ErrUserAlreadyExists
		}
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.users[user.ID]; ok {
		existing.Email = user.Email
		existing.FirstName = user.FirstName
		existing.LastName = user.LastName
		existing.ProfileImageURL = user.ProfileImageURL
		existing.UpdatedAt = now
		s.users[user.ID] = existing
		return existing, nil
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return domain.User{}, errors.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, errors.ErrNotFound
}

type ProjectRepository struct {
	store *Store
}

func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Project
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (domain.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return domain.Project{}, errors.ErrNotFound
	}
	return project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if project.Status == "" {
		project.Status = domain.ProjectActive
	}
	now := time.Now().UTC()
	project.ID = s.nextProjectID
	project.CreatedAt = now
	project.UpdatedAt = now
	s.nextProjectID++
	s.projects[project.ID] = project
	return project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return domain.Project{}, errors.ErrNotFound
	}
	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.Progress != nil {
		project.Progress = *patch.Progress
	}
	project.UpdatedAt = time.Now().UTC()
	s.projects[id] = project
	return project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
	return nil
}

type AgentRepository struct {
	store *Store
}

func (r *AgentRepository) List(ctx context.Context, projectID *int64) ([]domain.Agent, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Agent
	for _, a := range s.agents {
		if projectID != nil && (a.ProjectID == nil || *a.ProjectID != *projectID) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *AgentRepository) Create(ctx context.Context, agent domain.Agent) (domain.Agent, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if agent.Status == "" {
		agent.Status = domain.AgentIdle
	}
	now := time.Now().UTC()
	agent.ID = s.nextAgentID
	agent.CreatedAt = now
	agent.UpdatedAt = now
	s.nextAgentID++
	s.agents[agent.ID] = agent
	return agent, nil
}

func (r *AgentRepository) Update(ctx context.Context, id int64, patch domain.AgentPatch) (domain.Agent, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	agent, ok := s.agents[id]
	if !ok {
		return domain.Agent{}, errors.ErrNotFound
	}
	if patch.Name != nil {
		agent.Name = *patch.Name
	}
	if patch.Type != nil {
		agent.Type = *patch.Type
	}
	if patch.Status != nil {
		agent.Status = *patch.Status
	}
	if patch.Description != nil {
		agent.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		agent.ProjectID = patch.ProjectID
	}
	agent.UpdatedAt = time.Now().UTC()
	s.agents[id] = agent
	return agent, nil
}

func (r *AgentRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.agents, id)
	return nil
}
