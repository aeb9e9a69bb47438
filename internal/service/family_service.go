package service

import (
	"context"
	"fmt"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/repository"
	"balanceai/internal/repository/models"
	"balanceai/internal/util"
	"balanceai/internal/validation"

	"golang.org/x/sync/errgroup"
)

// unknownMemberName is shown when a membership references a missing user.
const unknownMemberName = "Unknown User"

// FamilyService defines the interface for family group sharing.
type FamilyService interface {
	CreateMember(ctx context.Context, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	GetMember(ctx context.Context, id int64) (*dto.FamilyMemberResponse, error)
	ListMembers(ctx context.Context, groupID *string, userID *int64, limit, offset int) ([]dto.FamilyMemberResponse, error)
	UpdateMember(ctx context.Context, id int64, req *dto.UpdateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	DeleteMember(ctx context.Context, id int64) error

	GetGroupMembers(ctx context.Context, groupID string) (*dto.FamilyGroupResponse, error)
}

type familyServiceImpl struct {
	familyRepo   repository.FamilyRepository
	userRepo     repository.UserRepository
	trackingRepo repository.TrackingRepository
	quizRepo     repository.QuizRepository
	validator    *validation.Validator
}

// NewFamilyService creates a new instance of FamilyService.
func NewFamilyService(
	familyRepo repository.FamilyRepository,
	userRepo repository.UserRepository,
	trackingRepo repository.TrackingRepository,
	quizRepo repository.QuizRepository,
	validator *validation.Validator,
) FamilyService {
	return &familyServiceImpl{
		familyRepo:   familyRepo,
		userRepo:     userRepo,
		trackingRepo: trackingRepo,
		quizRepo:     quizRepo,
		validator:    validator,
	}
}

func (s *familyServiceImpl) CreateMember(ctx context.Context, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	if errs := s.validator.ValidateCreateFamilyMember(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	member := &models.FamilyMember{
		FamilyGroupID: req.FamilyGroupID,
		UserID:        req.UserID,
		JoinedAt:      util.NowRFC3339(),
	}

	id, err := s.familyRepo.CreateMember(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("failed to create family member: %w", err)
	}
	member.ID = id

	out := dto.NewFamilyMemberResponse(member)
	return &out, nil
}

func (s *familyServiceImpl) GetMember(ctx context.Context, id int64) (*dto.FamilyMemberResponse, error) {
	member, err := s.familyRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get family member: %w", err)
	}
	if member == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "family member not found")
	}

	out := dto.NewFamilyMemberResponse(member)
	return &out, nil
}

func (s *familyServiceImpl) ListMembers(ctx context.Context, groupID *string, userID *int64, limit, offset int) ([]dto.FamilyMemberResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.familyRepo.ListMembers(ctx, groupID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}

	return dto.NewFamilyMemberResponses(rows), nil
}

func (s *familyServiceImpl) UpdateMember(ctx context.Context, id int64, req *dto.UpdateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	member, err := s.familyRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get family member: %w", err)
	}
	if member == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "family member not found")
	}

	if req.FamilyGroupID == nil {
		out := dto.NewFamilyMemberResponse(member)
		return &out, nil
	}

	member.FamilyGroupID = *req.FamilyGroupID

	if err := s.familyRepo.UpdateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update family member: %w", err)
	}

	out := dto.NewFamilyMemberResponse(member)
	return &out, nil
}

func (s *familyServiceImpl) DeleteMember(ctx context.Context, id int64) error {
	deleted, err := s.familyRepo.DeleteMember(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete family member: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "family member not found")
	}
	return nil
}

// GetGroupMembers returns all memberships of a group, each joined with the
// member's profile, streak summary, badge count, and latest quiz result.
// The per-member reads run concurrently. A membership whose user row is
// gone still shows, with a placeholder name.
func (s *familyServiceImpl) GetGroupMembers(ctx context.Context, groupID string) (*dto.FamilyGroupResponse, error) {
	if groupID == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("groupId")}
	}

	members, err := s.familyRepo.ListMembersByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}

	out := make([]dto.FamilyGroupMemberResponse, len(members))
	g, gCtx := errgroup.WithContext(ctx)
	for i := range members {
		g.Go(func() error {
			entry, err := s.buildGroupMember(gCtx, &members[i])
			if err != nil {
				return err
			}
			out[i] = *entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.FamilyGroupResponse{
		GroupID: groupID,
		Members: out,
	}, nil
}

func (s *familyServiceImpl) buildGroupMember(ctx context.Context, m *models.FamilyMember) (*dto.FamilyGroupMemberResponse, error) {
	entry := &dto.FamilyGroupMemberResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Name:     unknownMemberName,
		JoinedAt: m.JoinedAt,
	}

	user, err := s.userRepo.GetUserByID(ctx, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		entry.Name = user.Name
		entry.Email = user.Email
		if user.AvatarURL.Valid {
			avatar := user.AvatarURL.String
			entry.AvatarURL = &avatar
		}
	}

	streak, err := s.trackingRepo.GetStreakByUserID(ctx, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	if streak != nil {
		st := dto.NewUserStreakResponse(streak)
		entry.Streak = &st
	}

	entry.BadgeCount, err = s.trackingRepo.CountBadgesByUserID(ctx, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count badges: %w", err)
	}

	result, err := s.quizRepo.GetLatestResultByUserID(ctx, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz result: %w", err)
	}
	if result != nil {
		r := dto.NewQuizResultResponse(result)
		entry.LatestResult = &r
	}

	return entry, nil
}
