package service_test

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/security"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error) {
	args := m.Called(ctx, exec, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	args := m.Called(ctx, exec, username, email)
	return args.Bool(0), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID, token string) error {
	return m.Called(ctx, exec, userID, token).Error(0)
}

func (m *MockSessionRepository) GetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) (string, error) {
	args := m.Called(ctx, exec, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) ClearActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) error {
	return m.Called(ctx, exec, userID).Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokensPair(userID string) (*model.TokensPair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokensPair), args.Error(1)
}

func (m *MockJWTService) ParseAccessToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}

func (m *MockJWTService) ParseRefreshToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, localPath, folder string) (*model.MediaAsset, error) {
	args := m.Called(ctx, localPath, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaAsset), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error) {
	args := m.Called(ctx, exec, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.VideoWithOwner, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) FindRaw(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Video, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error) {
	args := m.Called(ctx, exec, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) ListFeed(ctx context.Context, exec sqlx.ExtContext, params model.FeedParams) (*model.VideoFeed, error) {
	args := m.Called(ctx, exec, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoFeed), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetVideo(ctx context.Context, video *model.VideoWithOwner) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockCacheRepository) GetVideo(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoWithOwner), args.Error(1)
}

func (m *MockCacheRepository) DeleteVideo(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// memoryStore : пользователи и сессии в памяти для сценариев ротации
type memoryStore struct {
	mu       sync.Mutex
	users    map[string]*model.User
	sessions map[string]string
}

func newMemoryStore(users ...*model.User) *memoryStore {
	store := &memoryStore{
		users:    make(map[string]*model.User),
		sessions: make(map[string]string),
	}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (s *memoryStore) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return user, nil
}

func (s *memoryStore) FindByUUID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("пользователь", id)
	}
	projected := *user
	projected.PasswordHash = ""
	projected.RefreshToken = nil
	return &projected, nil
}

func (s *memoryStore) FindByLogin(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if (username != "" && user.Username == username) || (email != "" && user.Email == email) {
			found := *user
			return &found, nil
		}
	}
	return nil, apperror.NotFound("пользователь", username+email)
}

func (s *memoryStore) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStore) SetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return apperror.NotFound("пользователь", userID)
	}
	s.sessions[userID] = token
	return nil
}

func (s *memoryStore) GetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return "", apperror.NotFound("пользователь", userID)
	}
	return s.sessions[userID], nil
}

func (s *memoryStore) ClearActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

func (s *memoryStore) session(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

// barrierSessionStore : оба конкурентных refresh читают сессию до того, как кто-то из них запишет новую
type barrierSessionStore struct {
	*memoryStore
	reads *sync.WaitGroup
}

func (b *barrierSessionStore) GetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) (string, error) {
	token, err := b.memoryStore.GetActiveRefreshToken(ctx, exec, userID)
	b.reads.Done()
	b.reads.Wait()
	return token, err
}
