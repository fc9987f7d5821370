package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"sharenotes-be/internal/dto"
	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/pkg/apperror"
	"sharenotes-be/internal/repository/specification"
	"sharenotes-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetById(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserDTO, error)
	UpdateName(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Friends(ctx context.Context, userId uuid.UUID) (*dto.FriendListResponse, error)
	SearchUsers(ctx context.Context, req *dto.SearchUsersRequest) ([]dto.UserDTO, error)
	SearchFriends(ctx context.Context, req *dto.SearchUsersRequest) ([]dto.UserDTO, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (s *userService) GetById(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	u := toUserDTO(user)
	return &u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: strings.ToLower(strings.TrimSpace(email))})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	u := toUserDTO(user)
	return &u, nil
}

// UpdateName edits the profile name. Blank fields keep the stored value.
func (s *userService) UpdateName(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if v := strings.TrimSpace(req.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		user.LastName = v
	}
	user.UpdatedAt = s.now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	u := toUserDTO(user)
	return &u, nil
}

// Delete removes the account and everything hanging off it: notes, shares,
// requests in either direction and both sides of every friendship, all in
// one transaction.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ShareRepository().DeleteAllForUser(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().DeleteAllByUserId(ctx, id); err != nil {
		return err
	}
	if err := uow.RequestRepository().DeleteAllForUser(ctx, id); err != nil {
		return err
	}
	if err := uow.FriendshipRepository().DeleteAllForUser(ctx, id); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

// Friends returns the user's friend list ordered by last name, then first.
func (s *userService) Friends(ctx context.Context, userId uuid.UUID) (*dto.FriendListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	friends, err := s.loadFriends(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	resp := &dto.FriendListResponse{Friends: make([]dto.UserDTO, 0, len(friends))}
	for _, f := range friends {
		resp.Friends = append(resp.Friends, toUserDTO(f))
	}
	return resp, nil
}

func (s *userService) SearchUsers(ctx context.Context, req *dto.SearchUsersRequest) ([]dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.NotID{ID: req.UserId},
		specification.OrderBy{Field: "last_name"},
	}
	if term := strings.TrimSpace(req.Query); term != "" {
		specs = append(specs, specification.NameOrEmailContains{Term: term})
	}

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, toUserDTO(u))
	}
	return result, nil
}

// SearchFriends filters the friend list by name or email. A blank query
// returns the whole list.
func (s *userService) SearchFriends(ctx context.Context, req *dto.SearchUsersRequest) ([]dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	friends, err := s.loadFriends(ctx, uow, req.UserId)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(req.Query))
	result := make([]dto.UserDTO, 0, len(friends))
	for _, f := range friends {
		if term != "" && !matchesUser(f, term) {
			continue
		}
		result = append(result, toUserDTO(f))
	}
	return result, nil
}

func (s *userService) loadFriends(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]*entity.User, error) {
	ids, err := uow.FriendshipRepository().FriendIDs(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	friends, err := uow.UserRepository().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	sort.Slice(friends, func(i, j int) bool {
		if friends[i].LastName != friends[j].LastName {
			return friends[i].LastName < friends[j].LastName
		}
		return friends[i].FirstName < friends[j].FirstName
	})
	return friends, nil
}

func matchesUser(u *entity.User, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), lowerTerm) ||
		strings.Contains(strings.ToLower(u.LastName), lowerTerm) ||
		strings.Contains(strings.ToLower(u.Email), lowerTerm)
}
