package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sharenotes-be/internal/dto"
	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/pkg/apperror"
	"sharenotes-be/internal/repository/specification"
	"sharenotes-be/internal/repository/unitofwork"
	"sharenotes-be/pkg/events"
)

type IRequestService interface {
	Send(ctx context.Context, req *dto.SendRequestRequest) (*dto.RequestDTO, error)
	Accept(ctx context.Context, userId, requestId uuid.UUID) error
	Decline(ctx context.Context, userId, requestId uuid.UUID) error
	Delete(ctx context.Context, userId, requestId uuid.UUID) error
	SentRequests(ctx context.Context, userId uuid.UUID) ([]dto.RequestWithUserDTO, error)
	ReceivedRequests(ctx context.Context, userId uuid.UUID) ([]dto.RequestWithUserDTO, error)
	RemoveFriend(ctx context.Context, userId, friendId uuid.UUID) error
}

type requestService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	now        func() time.Time
}

func NewRequestService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IRequestService {
	return &requestService{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Send creates a pending request from sender to the user behind the given
// email. A pending or accepted request in either direction blocks it; a
// declined one does not, so a declined sender may try again.
func (s *requestService) Send(ctx context.Context, req *dto.SendRequestRequest) (*dto.RequestDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	receiver, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: strings.ToLower(strings.TrimSpace(req.ReceiverEmail))})
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperror.NotFound("user not found")
	}
	if receiver.Id == req.SenderId {
		return nil, apperror.InvalidArgument("cannot send a friend request to yourself")
	}

	alreadyFriends, err := uow.FriendshipRepository().Exists(ctx, req.SenderId, receiver.Id)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, apperror.InvalidArgument("users are already friends")
	}

	if err := s.checkRequests(ctx, uow, req.SenderId, receiver.Id); err != nil {
		return nil, err
	}

	request := &entity.Request{
		Id:         uuid.New(),
		SenderId:   req.SenderId,
		ReceiverId: receiver.Id,
		Status:     entity.RequestStatusPending,
		SentAt:     s.now(),
	}

	if err := uow.RequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.NewFriendRequestSent(request.Id, request.SenderId, request.ReceiverId, s.now()))

	r := toRequestDTO(request)
	return &r, nil
}

// checkRequests blocks a new request while one is pending or accepted
// between the pair, in either direction. Declined requests are history,
// not a block.
func (s *requestService) checkRequests(ctx context.Context, uow unitofwork.UnitOfWork, senderId, receiverId uuid.UUID) error {
	existing, err := uow.RequestRepository().FindAll(ctx, specification.BetweenUsers{A: senderId, B: receiverId})
	if err != nil {
		return err
	}

	for _, r := range existing {
		switch r.Status {
		case entity.RequestStatusPending:
			return apperror.InvalidArgument("there is already a request created")
		case entity.RequestStatusAccepted:
			return apperror.InvalidArgument("cannot send another request")
		}
	}
	return nil
}

// Accept moves a pending request to accepted and writes both directions of
// the friendship in the same transaction, so the lists can never disagree.
func (s *requestService) Accept(ctx context.Context, userId, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := s.findForReceiver(ctx, uow, userId, requestId)
	if err != nil {
		return err
	}

	if err := request.Accept(); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return err
	}
	if err := s.addToFriendList(ctx, uow, request.SenderId, request.ReceiverId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.NewFriendRequestAccepted(request.Id, request.SenderId, request.ReceiverId, s.now()))
	return nil
}

// addToFriendList inserts the mutual pair of friendship rows.
func (s *requestService) addToFriendList(ctx context.Context, uow unitofwork.UnitOfWork, a, b uuid.UUID) error {
	if a == b {
		return apperror.InvalidArgument("cannot befriend yourself")
	}

	exists, err := uow.FriendshipRepository().Exists(ctx, a, b)
	if err != nil {
		return err
	}
	if exists {
		return apperror.InvalidArgument("users are already friends")
	}

	now := s.now()
	pair := []*entity.Friendship{
		{Id: uuid.New(), UserId: a, FriendId: b, CreatedAt: now},
		{Id: uuid.New(), UserId: b, FriendId: a, CreatedAt: now},
	}
	for _, f := range pair {
		if err := uow.FriendshipRepository().Create(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// Decline marks a pending request declined. The row is kept so the inbox
// shows the outcome, and it no longer blocks a new request.
func (s *requestService) Decline(ctx context.Context, userId, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := s.findForReceiver(ctx, uow, userId, requestId)
	if err != nil {
		return err
	}

	if err := request.Decline(); err != nil {
		return err
	}

	return uow.RequestRepository().Update(ctx, request)
}

// Delete cancels a pending request. Only the sender may cancel, and only
// while the request is still pending.
func (s *requestService) Delete(ctx context.Context, userId, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NotFound("request not found")
	}
	if request.SenderId != userId {
		return apperror.NotFound("request not found")
	}
	if request.Status != entity.RequestStatusPending {
		return apperror.InvalidArgument("cannot delete a non-pending request")
	}

	return uow.RequestRepository().Delete(ctx, requestId)
}

func (s *requestService) SentRequests(ctx context.Context, userId uuid.UUID) ([]dto.RequestWithUserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RequestRepository().FindAll(ctx,
		specification.BySender{SenderID: userId},
		specification.ByStatus{Status: entity.RequestStatusPending},
		specification.OrderBy{Field: "sent_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return s.withCounterparts(ctx, uow, requests, func(r *entity.Request) uuid.UUID { return r.ReceiverId })
}

func (s *requestService) ReceivedRequests(ctx context.Context, userId uuid.UUID) ([]dto.RequestWithUserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RequestRepository().FindAll(ctx,
		specification.ByReceiver{ReceiverID: userId},
		specification.ByStatus{Status: entity.RequestStatusPending},
		specification.OrderBy{Field: "sent_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return s.withCounterparts(ctx, uow, requests, func(r *entity.Request) uuid.UUID { return r.SenderId })
}

func (s *requestService) withCounterparts(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	requests []*entity.Request,
	counterpart func(*entity.Request) uuid.UUID,
) ([]dto.RequestWithUserDTO, error) {
	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, counterpart(r))
	}

	users := map[uuid.UUID]*entity.User{}
	if len(ids) > 0 {
		found, err := uow.UserRepository().FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			users[u.Id] = u
		}
	}

	result := make([]dto.RequestWithUserDTO, 0, len(requests))
	for _, r := range requests {
		item := dto.RequestWithUserDTO{RequestDTO: toRequestDTO(r)}
		if u, ok := users[counterpart(r)]; ok {
			item.User = toUserDTO(u)
		}
		result = append(result, item)
	}
	return result, nil
}

// RemoveFriend deletes both directions of the friendship and purges the
// request history between the pair, so either side can send a fresh
// request afterwards. All of it runs in one transaction.
func (s *requestService) RemoveFriend(ctx context.Context, userId, friendId uuid.UUID) error {
	if userId == friendId {
		return apperror.InvalidArgument("cannot unfriend yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.FriendshipRepository().Exists(ctx, userId, friendId)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("friend not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FriendshipRepository().Delete(ctx, userId, friendId); err != nil {
		return err
	}
	if err := uow.FriendshipRepository().Delete(ctx, friendId, userId); err != nil {
		return err
	}
	if err := uow.RequestRepository().DeleteBetweenUsers(ctx, userId, friendId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *requestService) findForReceiver(ctx context.Context, uow unitofwork.UnitOfWork, userId, requestId uuid.UUID) (*entity.Request, error) {
	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil || request.ReceiverId != userId {
		return nil, apperror.NotFound("request not found")
	}
	return request, nil
}

func toRequestDTO(r *entity.Request) dto.RequestDTO {
	return dto.RequestDTO{
		Id:         r.Id,
		SenderId:   r.SenderId,
		ReceiverId: r.ReceiverId,
		Status:     string(r.Status),
		SentAt:     r.SentAt,
	}
}
