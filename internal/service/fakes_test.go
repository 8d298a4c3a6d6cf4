package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gameshop-be/internal/cache"
	"gameshop-be/internal/entities"
	"gameshop-be/internal/repository"
)

// fakeUserRepo is an in-memory repository.UserRepository enforcing email
// uniqueness like the real table does.
type fakeUserRepo struct {
	users  map[int64]*entities.User
	nextID int64

	lastUpdateFields map[string]string
	failAll          bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entities.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, name, email, passwordHash, role string, profileImage *string) (*entities.User, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	for _, u := range f.users {
		if u.Email == email {
			return nil, repository.ErrEmailTaken
		}
	}
	user := &entities.User{
		ID:           f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		ProfileImage: profileImage,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	f.nextID++
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdatePartial(ctx context.Context, id int64, fields map[string]string) error {
	if f.failAll {
		return errors.New("db down")
	}
	f.lastUpdateFields = fields
	if len(fields) == 0 {
		return nil
	}
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	if v, ok := fields[repository.FieldName]; ok {
		u.Name = v
	}
	if v, ok := fields[repository.FieldEmail]; ok {
		u.Email = v
	}
	if v, ok := fields[repository.FieldProfileImage]; ok {
		img := v
		u.ProfileImage = &img
	}
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entities.User, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	users := make([]entities.User, 0, len(f.users))
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	if f.failAll {
		return 0, errors.New("db down")
	}
	count := 0
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// fakeCache is an in-memory cache.Cache; expiry is not simulated here, the
// session package covers that.
type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.entries[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.Set(ctx, key, string(data), expiration)
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}
