package service

import (
	"context"
	"time"

	"balanceai/internal/repository"
	"balanceai/internal/repository/models"

	"github.com/stretchr/testify/mock"
)

// fakeTxManager runs the function directly, without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateResponse(ctx context.Context, resp *models.QuizResponse) (int64, error) {
	args := m.Called(ctx, resp)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepository) GetResponseByID(ctx context.Context, id int64) (*models.QuizResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizResponse), args.Error(1)
}

func (m *MockQuizRepository) ListResponses(ctx context.Context, userID *int64, limit, offset int) ([]models.QuizResponse, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizResponse), args.Error(1)
}

func (m *MockQuizRepository) UpdateResponse(ctx context.Context, resp *models.QuizResponse) error {
	args := m.Called(ctx, resp)
	return args.Error(0)
}

func (m *MockQuizRepository) DeleteResponse(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizRepository) CreateResult(ctx context.Context, result *models.QuizResult) (int64, error) {
	args := m.Called(ctx, result)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepository) GetResultByID(ctx context.Context, id int64) (*models.QuizResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizResult), args.Error(1)
}

func (m *MockQuizRepository) GetLatestResultByUserID(ctx context.Context, userID int64) (*models.QuizResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizResult), args.Error(1)
}

func (m *MockQuizRepository) ListResults(ctx context.Context, userID *int64, limit, offset int) ([]models.QuizResult, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizResult), args.Error(1)
}

func (m *MockQuizRepository) UpdateResult(ctx context.Context, result *models.QuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockQuizRepository) DeleteResult(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockTrackingRepository ---
type MockTrackingRepository struct {
	mock.Mock
}

func (m *MockTrackingRepository) CreateMetric(ctx context.Context, metric *models.UserMetric) (int64, error) {
	args := m.Called(ctx, metric)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrackingRepository) GetMetricByID(ctx context.Context, id int64) (*models.UserMetric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserMetric), args.Error(1)
}

func (m *MockTrackingRepository) ListMetrics(ctx context.Context, userID *int64, metricType *string, limit, offset int) ([]models.UserMetric, error) {
	args := m.Called(ctx, userID, metricType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserMetric), args.Error(1)
}

func (m *MockTrackingRepository) ListAllMetricsByUserID(ctx context.Context, userID int64) ([]models.UserMetric, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserMetric), args.Error(1)
}

func (m *MockTrackingRepository) UpdateMetric(ctx context.Context, metric *models.UserMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *MockTrackingRepository) DeleteMetric(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingRepository) CreateBadge(ctx context.Context, badge *models.Badge) (int64, error) {
	args := m.Called(ctx, badge)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrackingRepository) GetBadgeByID(ctx context.Context, id int64) (*models.Badge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Badge), args.Error(1)
}

func (m *MockTrackingRepository) ListBadges(ctx context.Context, userID *int64, limit, offset int) ([]models.Badge, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Badge), args.Error(1)
}

func (m *MockTrackingRepository) ListAllBadgesByUserID(ctx context.Context, userID int64) ([]models.Badge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Badge), args.Error(1)
}

func (m *MockTrackingRepository) CountBadgesByUserID(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockTrackingRepository) UpdateBadge(ctx context.Context, badge *models.Badge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}

func (m *MockTrackingRepository) DeleteBadge(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingRepository) CreateStreak(ctx context.Context, streak *models.UserStreak) (int64, error) {
	args := m.Called(ctx, streak)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrackingRepository) GetStreakByID(ctx context.Context, id int64) (*models.UserStreak, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStreak), args.Error(1)
}

func (m *MockTrackingRepository) GetStreakByUserID(ctx context.Context, userID int64) (*models.UserStreak, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStreak), args.Error(1)
}

func (m *MockTrackingRepository) ListStreaks(ctx context.Context, userID *int64, limit, offset int) ([]models.UserStreak, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserStreak), args.Error(1)
}

func (m *MockTrackingRepository) UpdateStreak(ctx context.Context, streak *models.UserStreak) error {
	args := m.Called(ctx, streak)
	return args.Error(0)
}

func (m *MockTrackingRepository) DeleteStreak(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingRepository) CreateTask(ctx context.Context, task *models.DailyTask) (int64, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrackingRepository) GetTaskByID(ctx context.Context, id int64) (*models.DailyTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyTask), args.Error(1)
}

func (m *MockTrackingRepository) ListTasks(ctx context.Context, userID *int64, limit, offset int) ([]models.DailyTask, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyTask), args.Error(1)
}

func (m *MockTrackingRepository) ListAllTasksByUserID(ctx context.Context, userID int64) ([]models.DailyTask, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyTask), args.Error(1)
}

func (m *MockTrackingRepository) UpdateTask(ctx context.Context, task *models.DailyTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTrackingRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockCommunityRepository ---
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) CreatePost(ctx context.Context, post *models.CommunityPost) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommunityRepository) GetPostByID(ctx context.Context, id int64) (*models.CommunityPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityPost), args.Error(1)
}

func (m *MockCommunityRepository) ListPosts(ctx context.Context, limit, offset int) ([]models.CommunityPost, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommunityPost), args.Error(1)
}

func (m *MockCommunityRepository) ListFeed(ctx context.Context, filters repository.FeedFilters, limit, offset int) ([]models.CommunityPost, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommunityPost), args.Error(1)
}

func (m *MockCommunityRepository) CountFeed(ctx context.Context, filters repository.FeedFilters) (int, error) {
	args := m.Called(ctx, filters)
	return args.Int(0), args.Error(1)
}

func (m *MockCommunityRepository) UpdatePost(ctx context.Context, post *models.CommunityPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockCommunityRepository) DeletePost(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) DeletePostChildren(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockCommunityRepository) AdjustPostCounters(ctx context.Context, postID int64, likesDelta, commentsDelta int, updatedAt string) error {
	args := m.Called(ctx, postID, likesDelta, commentsDelta, updatedAt)
	return args.Error(0)
}

func (m *MockCommunityRepository) CreateLike(ctx context.Context, like *models.PostLike) (int64, error) {
	args := m.Called(ctx, like)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommunityRepository) GetLikeByID(ctx context.Context, id int64) (*models.PostLike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostLike), args.Error(1)
}

func (m *MockCommunityRepository) GetLikeByPostAndUser(ctx context.Context, postID, userID int64) (*models.PostLike, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostLike), args.Error(1)
}

func (m *MockCommunityRepository) ListLikes(ctx context.Context, postID, userID *int64, limit, offset int) ([]models.PostLike, error) {
	args := m.Called(ctx, postID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostLike), args.Error(1)
}

func (m *MockCommunityRepository) UpdateLike(ctx context.Context, like *models.PostLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockCommunityRepository) DeleteLike(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) CreateComment(ctx context.Context, comment *models.PostComment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommunityRepository) GetCommentByID(ctx context.Context, id int64) (*models.PostComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostComment), args.Error(1)
}

func (m *MockCommunityRepository) ListComments(ctx context.Context, postID, userID *int64, limit, offset int) ([]models.PostComment, error) {
	args := m.Called(ctx, postID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostComment), args.Error(1)
}

func (m *MockCommunityRepository) UpdateComment(ctx context.Context, comment *models.PostComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommunityRepository) DeleteComment(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockWellnessRepository ---
type MockWellnessRepository struct {
	mock.Mock
}

func (m *MockWellnessRepository) CreateGoal(ctx context.Context, goal *models.WellnessGoal) (int64, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWellnessRepository) GetGoalByID(ctx context.Context, id int64) (*models.WellnessGoal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WellnessGoal), args.Error(1)
}

func (m *MockWellnessRepository) ListGoals(ctx context.Context, userID *int64, limit, offset int) ([]models.WellnessGoal, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessGoal), args.Error(1)
}

func (m *MockWellnessRepository) ListAllGoalsByUserID(ctx context.Context, userID int64) ([]models.WellnessGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessGoal), args.Error(1)
}

func (m *MockWellnessRepository) UpdateGoal(ctx context.Context, goal *models.WellnessGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockWellnessRepository) DeleteGoal(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWellnessRepository) CreatePlan(ctx context.Context, plan *models.WellnessPlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWellnessRepository) GetPlanByID(ctx context.Context, id int64) (*models.WellnessPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WellnessPlan), args.Error(1)
}

func (m *MockWellnessRepository) GetLatestPlanByUserID(ctx context.Context, userID int64) (*models.WellnessPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WellnessPlan), args.Error(1)
}

func (m *MockWellnessRepository) ListPlans(ctx context.Context, userID *int64, limit, offset int) ([]models.WellnessPlan, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessPlan), args.Error(1)
}

func (m *MockWellnessRepository) UpdatePlan(ctx context.Context, plan *models.WellnessPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockWellnessRepository) DeletePlan(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockFamilyRepository ---
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) CreateMember(ctx context.Context, member *models.FamilyMember) (int64, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFamilyRepository) GetMemberByID(ctx context.Context, id int64) (*models.FamilyMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyMember), args.Error(1)
}

func (m *MockFamilyRepository) ListMembers(ctx context.Context, groupID *string, userID *int64, limit, offset int) ([]models.FamilyMember, error) {
	args := m.Called(ctx, groupID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FamilyMember), args.Error(1)
}

func (m *MockFamilyRepository) ListMembersByGroupID(ctx context.Context, groupID string) ([]models.FamilyMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FamilyMember), args.Error(1)
}

func (m *MockFamilyRepository) UpdateMember(ctx context.Context, member *models.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockFamilyRepository) DeleteMember(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockSettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) CreateSettings(ctx context.Context, settings *models.UserSettings) (int64, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettingsRepository) GetSettingsByID(ctx context.Context, id int64) (*models.UserSettings, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) GetSettingsByUserID(ctx context.Context, userID int64) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) ListSettings(ctx context.Context, userID *int64, limit, offset int) ([]models.UserSettings, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings *models.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) DeleteSettings(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
