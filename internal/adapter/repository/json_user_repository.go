package repository

import (
	"context"
	"sync"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type jsonUserRepository struct {
	mu    sync.RWMutex
	file  jsonFile
	users []*entity.User
	byID  map[int]*entity.User
}

func NewJSONUserRepository(dataDir string) (repository.UserRepository, error) {
	r := &jsonUserRepository{
		file: newJSONFile(dataDir, "users.json"),
		byID: make(map[int]*entity.User),
	}
	if err := r.file.load(&r.users); err != nil {
		return nil, errors.Internal("Failed to load users collection", err)
	}
	for _, u := range r.users {
		r.byID[u.ID] = u
	}
	return r, nil
}

func cloneUser(u *entity.User) *entity.User {
	out := *u
	out.Products = append([]int(nil), u.Products...)
	out.Reviews = append([]int(nil), u.Reviews...)
	return &out
}

func (r *jsonUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *jsonUserRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("User not found!", nil)
	}
	return cloneUser(u), nil
}

func (r *jsonUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *jsonUserRepository) GetByMail(ctx context.Context, mail string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Mail == mail {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *jsonUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, u := range r.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	user.ID = maxID + 1

	if user.Products == nil {
		user.Products = []int{}
	}
	if user.Reviews == nil {
		user.Reviews = []int{}
	}

	stored := cloneUser(user)
	r.users = append(r.users, stored)
	r.byID[stored.ID] = stored

	if err := r.file.save(r.users); err != nil {
		return errors.Internal("Failed to save users collection", err)
	}
	return nil
}

func (r *jsonUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return errors.NotFound("User not found!", nil)
	}
	*existing = *cloneUser(user)

	if err := r.file.save(r.users); err != nil {
		return errors.Internal("Failed to save users collection", err)
	}
	return nil
}
