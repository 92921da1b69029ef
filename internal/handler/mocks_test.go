package handler_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"videotube-server/internal/model"
)

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Login(ctx context.Context, username, email, password string) (*model.LoginResult, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *MockAuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokensPair), args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, input *model.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetCurrentUser(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) ListVideos(ctx context.Context, params model.FeedParams) (*model.VideoFeed, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoFeed), args.Error(1)
}

func (m *MockVideoService) PublishVideo(ctx context.Context, owner *model.User, input *model.PublishVideoInput) (*model.Video, error) {
	args := m.Called(ctx, owner, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoService) GetVideoByID(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoWithOwner), args.Error(1)
}

func (m *MockVideoService) UpdateVideo(ctx context.Context, actor *model.User, id string, input *model.UpdateVideoInput) (*model.Video, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(context.Context) error { return s.err }

func (s stubPinger) Ping(context.Context) error { return s.err }

var errDown = errors.New("connection refused")
