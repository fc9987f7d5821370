package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sharenotes-be/internal/dto"
	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/pkg/apperror"
)

var testClock = func() time.Time {
	return time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)
}

func newRequestServiceForTest() (*requestService, *fakeUnitOfWork, *recordingPublisher) {
	uow := newFakeUnitOfWork()
	pub := &recordingPublisher{}
	svc := NewRequestService(&fakeFactory{uow: uow}, pub).(*requestService)
	svc.now = testClock
	return svc, uow, pub
}

func TestSendRequest(t *testing.T) {
	svc, uow, pub := newRequestServiceForTest()
	senderId, receiverId := uuid.New(), uuid.New()

	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: receiverId, Email: "bob@example.com"}, nil)
	uow.friendships.On("Exists", mock.Anything, senderId, receiverId).Return(false, nil)
	uow.requests.On("FindAll", mock.Anything, mock.Anything).Return(nil, nil)
	uow.requests.On("Create", mock.Anything, mock.AnythingOfType("*entity.Request")).Return(nil)

	res, err := svc.Send(context.Background(), &dto.SendRequestRequest{SenderId: senderId, ReceiverEmail: "Bob@Example.com"})

	assert.NoError(t, err)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, senderId, res.SenderId)
	assert.Equal(t, receiverId, res.ReceiverId)
	assert.Equal(t, testClock(), res.SentAt)
	assert.Len(t, pub.published, 1)
	assert.Equal(t, "FRIEND_REQUEST_SENT", pub.published[0].EventType())
}

func TestSendRequestToSelf(t *testing.T) {
	svc, uow, pub := newRequestServiceForTest()
	userId := uuid.New()

	// The email resolves to the sender themselves.
	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: userId, Email: "me@example.com"}, nil)

	_, err := svc.Send(context.Background(), &dto.SendRequestRequest{SenderId: userId, ReceiverEmail: "me@example.com"})

	assert.True(t, apperror.IsInvalidArgument(err))
	assert.Empty(t, pub.published)
}

func TestSendRequestReceiverNotFound(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()

	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Send(context.Background(), &dto.SendRequestRequest{SenderId: uuid.New(), ReceiverEmail: "ghost@example.com"})

	assert.True(t, apperror.IsNotFound(err))
}

func TestSendRequestBlockedByPending(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	senderId, receiverId := uuid.New(), uuid.New()

	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: receiverId, Email: "bob@example.com"}, nil)
	uow.friendships.On("Exists", mock.Anything, senderId, receiverId).Return(false, nil)
	// The pending request points the other way, it still blocks.
	uow.requests.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Request{
		{Id: uuid.New(), SenderId: receiverId, ReceiverId: senderId, Status: entity.RequestStatusPending},
	}, nil)

	_, err := svc.Send(context.Background(), &dto.SendRequestRequest{SenderId: senderId, ReceiverEmail: "bob@example.com"})

	assert.True(t, apperror.IsInvalidArgument(err))
	assert.EqualError(t, err, "there is already a request created")
	uow.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendRequestBlockedByAccepted(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	senderId, receiverId := uuid.New(), uuid.New()

	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: receiverId, Email: "bob@example.com"}, nil)
	uow.friendships.On("Exists", mock.Anything, senderId, receiverId).Return(false, nil)
	uow.requests.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Request{
		{Id: uuid.New(), SenderId: senderId, ReceiverId: receiverId, Status: entity.RequestStatusAccepted},
	}, nil)

	_, err := svc.Send(context.Background(), &dto.SendRequestRequest{SenderId: senderId, ReceiverEmail: "bob@example.com"})

	assert.True(t, apperror.IsInvalidArgument(err))
	assert.EqualError(t, err, "cannot send another request")
}

func TestSendRequestAfterDecline(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	senderId, receiverId := uuid.New(), uuid.New()

	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: receiverId, Email: "bob@example.com"}, nil)
	uow.friendships.On("Exists", mock.Anything, senderId, receiverId).Return(false, nil)
	// A declined request is history, not a block.
	uow.requests.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Request{
		{Id: uuid.New(), SenderId: senderId, ReceiverId: receiverId, Status: entity.RequestStatusDeclined},
	}, nil)
	uow.requests.On("Create", mock.Anything, mock.AnythingOfType("*entity.Request")).Return(nil)

	res, err := svc.Send(context.Background(), &dto.SendRequestRequest{SenderId: senderId, ReceiverEmail: "bob@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, "pending", res.Status)
}

func TestSendRequestAlreadyFriends(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	senderId, receiverId := uuid.New(), uuid.New()

	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: receiverId, Email: "bob@example.com"}, nil)
	uow.friendships.On("Exists", mock.Anything, senderId, receiverId).Return(true, nil)

	_, err := svc.Send(context.Background(), &dto.SendRequestRequest{SenderId: senderId, ReceiverEmail: "bob@example.com"})

	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestAcceptRequest(t *testing.T) {
	svc, uow, pub := newRequestServiceForTest()
	senderId, receiverId, requestId := uuid.New(), uuid.New(), uuid.New()

	uow.requests.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Request{
		Id: requestId, SenderId: senderId, ReceiverId: receiverId, Status: entity.RequestStatusPending,
	}, nil)
	uow.requests.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Request) bool {
		return r.Status == entity.RequestStatusAccepted
	})).Return(nil)
	uow.friendships.On("Exists", mock.Anything, senderId, receiverId).Return(false, nil)
	uow.friendships.On("Create", mock.Anything, mock.AnythingOfType("*entity.Friendship")).Return(nil)

	err := svc.Accept(context.Background(), receiverId, requestId)

	assert.NoError(t, err)
	// The status flip and both friendship rows share one transaction.
	assert.Equal(t, 1, uow.begun)
	assert.Equal(t, 1, uow.committed)
	assert.Equal(t, 0, uow.rolledBack)
	uow.friendships.AssertNumberOfCalls(t, "Create", 2)

	created := make(map[uuid.UUID]uuid.UUID)
	for _, call := range uow.friendships.Calls {
		if call.Method == "Create" {
			f := call.Arguments.Get(1).(*entity.Friendship)
			created[f.UserId] = f.FriendId
		}
	}
	assert.Equal(t, receiverId, created[senderId])
	assert.Equal(t, senderId, created[receiverId])

	assert.Len(t, pub.published, 1)
	assert.Equal(t, "FRIEND_REQUEST_ACCEPTED", pub.published[0].EventType())
}

func TestAcceptRequestTwice(t *testing.T) {
	svc, uow, pub := newRequestServiceForTest()
	senderId, receiverId, requestId := uuid.New(), uuid.New(), uuid.New()

	uow.requests.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Request{
		Id: requestId, SenderId: senderId, ReceiverId: receiverId, Status: entity.RequestStatusAccepted,
	}, nil)

	err := svc.Accept(context.Background(), receiverId, requestId)

	assert.True(t, apperror.IsInvalidArgument(err))
	assert.Equal(t, 0, uow.begun)
	assert.Empty(t, pub.published)
}

func TestAcceptRequestNotReceiver(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	requestId := uuid.New()

	uow.requests.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Request{
		Id: requestId, SenderId: uuid.New(), ReceiverId: uuid.New(), Status: entity.RequestStatusPending,
	}, nil)

	err := svc.Accept(context.Background(), uuid.New(), requestId)

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeclineRequest(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	receiverId, requestId := uuid.New(), uuid.New()

	uow.requests.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Request{
		Id: requestId, SenderId: uuid.New(), ReceiverId: receiverId, Status: entity.RequestStatusPending,
	}, nil)
	uow.requests.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Request) bool {
		return r.Status == entity.RequestStatusDeclined
	})).Return(nil)

	err := svc.Decline(context.Background(), receiverId, requestId)

	assert.NoError(t, err)
	// Decline keeps the row, it never writes friendships.
	uow.friendships.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteRequest(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	senderId, requestId := uuid.New(), uuid.New()

	uow.requests.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Request{
		Id: requestId, SenderId: senderId, ReceiverId: uuid.New(), Status: entity.RequestStatusPending,
	}, nil)
	uow.requests.On("Delete", mock.Anything, requestId).Return(nil)

	err := svc.Delete(context.Background(), senderId, requestId)

	assert.NoError(t, err)
}

func TestDeleteRequestNotSender(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	requestId := uuid.New()

	uow.requests.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Request{
		Id: requestId, SenderId: uuid.New(), ReceiverId: uuid.New(), Status: entity.RequestStatusPending,
	}, nil)

	err := svc.Delete(context.Background(), uuid.New(), requestId)

	assert.True(t, apperror.IsNotFound(err))
	uow.requests.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteRequestNonPending(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	senderId, requestId := uuid.New(), uuid.New()

	uow.requests.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Request{
		Id: requestId, SenderId: senderId, ReceiverId: uuid.New(), Status: entity.RequestStatusAccepted,
	}, nil)

	err := svc.Delete(context.Background(), senderId, requestId)

	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestReceivedRequests(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	receiverId, senderId := uuid.New(), uuid.New()

	uow.requests.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*entity.Request{
		{Id: uuid.New(), SenderId: senderId, ReceiverId: receiverId, Status: entity.RequestStatusPending, SentAt: testClock()},
	}, nil)
	uow.users.On("FindByIDs", mock.Anything, []uuid.UUID{senderId}).Return([]*entity.User{
		{Id: senderId, Email: "sender@example.com", FirstName: "Sam", LastName: "Sender"},
	}, nil)

	res, err := svc.ReceivedRequests(context.Background(), receiverId)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, senderId, res[0].User.Id)
	assert.Equal(t, "Sam", res[0].User.FirstName)
}

func TestSentRequests(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	senderId, receiverId := uuid.New(), uuid.New()

	uow.requests.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*entity.Request{
		{Id: uuid.New(), SenderId: senderId, ReceiverId: receiverId, Status: entity.RequestStatusPending, SentAt: testClock()},
	}, nil)
	uow.users.On("FindByIDs", mock.Anything, []uuid.UUID{receiverId}).Return([]*entity.User{
		{Id: receiverId, Email: "bob@example.com", FirstName: "Bob", LastName: "Receiver"},
	}, nil)

	res, err := svc.SentRequests(context.Background(), senderId)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, receiverId, res[0].User.Id)
	assert.Equal(t, "pending", res[0].Status)
}

func TestRemoveFriend(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	userId, friendId := uuid.New(), uuid.New()

	uow.friendships.On("Exists", mock.Anything, userId, friendId).Return(true, nil)
	uow.friendships.On("Delete", mock.Anything, userId, friendId).Return(nil)
	uow.friendships.On("Delete", mock.Anything, friendId, userId).Return(nil)
	uow.requests.On("DeleteBetweenUsers", mock.Anything, userId, friendId).Return(nil)

	err := svc.RemoveFriend(context.Background(), userId, friendId)

	assert.NoError(t, err)
	// Both directions and the request history go in one transaction.
	assert.Equal(t, 1, uow.begun)
	assert.Equal(t, 1, uow.committed)
	uow.friendships.AssertNumberOfCalls(t, "Delete", 2)
	uow.requests.AssertCalled(t, "DeleteBetweenUsers", mock.Anything, userId, friendId)
}

func TestRemoveFriendNotFriends(t *testing.T) {
	svc, uow, _ := newRequestServiceForTest()
	userId, friendId := uuid.New(), uuid.New()

	uow.friendships.On("Exists", mock.Anything, userId, friendId).Return(false, nil)

	err := svc.RemoveFriend(context.Background(), userId, friendId)

	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, 0, uow.begun)
}
