package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/interviewprep/practice-service/internal/cache"
	"github.com/interviewprep/practice-service/internal/models"
	"github.com/interviewprep/practice-service/internal/repositories"
)

// MockSessionRepository is a mock implementation of PracticeSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*models.PracticeSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*models.PracticeSession)
	return session, args.Error(1)
}

func (m *MockSessionRepository) GetByGroup(ctx context.Context, groupID string) ([]*models.PracticeSession, error) {
	args := m.Called(ctx, groupID)
	sessions, _ := args.Get(0).([]*models.PracticeSession)
	return sessions, args.Error(1)
}

func (m *MockSessionRepository) GetByUser(ctx context.Context, userID string, filters repositories.SessionFilters) ([]*models.PracticeSession, int64, error) {
	args := m.Called(ctx, userID, filters)
	sessions, _ := args.Get(0).([]*models.PracticeSession)
	return sessions, args.Get(1).(int64), args.Error(2)
}

func (m *MockSessionRepository) List(ctx context.Context, filters repositories.SessionFilters) ([]*models.PracticeSession, int64, error) {
	args := m.Called(ctx, filters)
	sessions, _ := args.Get(0).([]*models.PracticeSession)
	return sessions, args.Get(1).(int64), args.Error(2)
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]*models.Profile)
	return profiles, args.Error(1)
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]*models.InterviewQuestion, error) {
	args := m.Called(ctx)
	questions, _ := args.Get(0).([]*models.InterviewQuestion)
	return questions, args.Error(1)
}

// mockRepository bundles the mocks behind repositories.Repository
type mockRepository struct {
	sessions  *MockSessionRepository
	profiles  *MockProfileRepository
	questions *MockQuestionRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		sessions:  new(MockSessionRepository),
		profiles:  new(MockProfileRepository),
		questions: new(MockQuestionRepository),
	}
}

func (r *mockRepository) Session() repositories.PracticeSessionRepository { return r.sessions }
func (r *mockRepository) Profile() repositories.ProfileRepository         { return r.profiles }
func (r *mockRepository) Question() repositories.QuestionRepository       { return r.questions }

// memoryCache stores JSON in a map, like Redis would
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
