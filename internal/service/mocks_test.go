package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/repository/contract"
	"sharenotes-be/internal/repository/specification"
	"sharenotes-be/internal/repository/unitofwork"
	"sharenotes-be/pkg/events"
)

// Repository mocks. Specifications are gorm-bound and opaque to the mocks,
// so expectations match them with mock.Anything via specsToArgs.

func specsToArgs(specs []specification.Specification) []interface{} {
	args := make([]interface{}, len(specs))
	for i, s := range specs {
		args[i] = s
	}
	return args
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	return args.Get(0).(int64), args.Error(1)
}

type mockFriendshipRepository struct {
	mock.Mock
}

func (m *mockFriendshipRepository) Create(ctx context.Context, friendship *entity.Friendship) error {
	return m.Called(ctx, friendship).Error(0)
}

func (m *mockFriendshipRepository) Delete(ctx context.Context, userId, friendId uuid.UUID) error {
	return m.Called(ctx, userId, friendId).Error(0)
}

func (m *mockFriendshipRepository) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return m.Called(ctx, userId).Error(0)
}

func (m *mockFriendshipRepository) Exists(ctx context.Context, userId, friendId uuid.UUID) (bool, error) {
	args := m.Called(ctx, userId, friendId)
	return args.Bool(0), args.Error(1)
}

func (m *mockFriendshipRepository) FriendIDs(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userId)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNoteRepository) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return m.Called(ctx, userId).Error(0)
}

func (m *mockNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	note, _ := args.Get(0).(*entity.Note)
	return note, args.Error(1)
}

func (m *mockNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	notes, _ := args.Get(0).([]*entity.Note)
	return notes, args.Error(1)
}

func (m *mockNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	return args.Get(0).(int64), args.Error(1)
}

type mockRequestRepository struct {
	mock.Mock
}

func (m *mockRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockRequestRepository) Update(ctx context.Context, request *entity.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRequestRepository) DeleteBetweenUsers(ctx context.Context, a, b uuid.UUID) error {
	return m.Called(ctx, a, b).Error(0)
}

func (m *mockRequestRepository) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return m.Called(ctx, userId).Error(0)
}

func (m *mockRequestRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Request, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	request, _ := args.Get(0).(*entity.Request)
	return request, args.Error(1)
}

func (m *mockRequestRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Request, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	requests, _ := args.Get(0).([]*entity.Request)
	return requests, args.Error(1)
}

type mockShareRepository struct {
	mock.Mock
}

func (m *mockShareRepository) Create(ctx context.Context, share *entity.Share) error {
	return m.Called(ctx, share).Error(0)
}

func (m *mockShareRepository) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return m.Called(ctx, userId).Error(0)
}

func (m *mockShareRepository) DeleteAllForNote(ctx context.Context, noteId uuid.UUID) error {
	return m.Called(ctx, noteId).Error(0)
}

func (m *mockShareRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Share, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	share, _ := args.Get(0).(*entity.Share)
	return share, args.Error(1)
}

func (m *mockShareRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Share, error) {
	args := m.Called(append([]interface{}{ctx}, specsToArgs(specs)...)...)
	shares, _ := args.Get(0).([]*entity.Share)
	return shares, args.Error(1)
}

// fakeUnitOfWork hands out the mocks and records transaction activity.
type fakeUnitOfWork struct {
	users       *mockUserRepository
	friendships *mockFriendshipRepository
	notes       *mockNoteRepository
	requests    *mockRequestRepository
	shares      *mockShareRepository

	begun      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:       &mockUserRepository{},
		friendships: &mockFriendshipRepository{},
		notes:       &mockNoteRepository{},
		requests:    &mockRequestRepository{},
		shares:      &mockShareRepository{},
	}
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error {
	f.begun++
	return nil
}

func (f *fakeUnitOfWork) Commit() error {
	f.committed++
	return nil
}

func (f *fakeUnitOfWork) Rollback() error {
	if f.committed == 0 {
		f.rolledBack++
	}
	return nil
}

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository             { return f.users }
func (f *fakeUnitOfWork) FriendshipRepository() contract.FriendshipRepository { return f.friendships }
func (f *fakeUnitOfWork) NoteRepository() contract.NoteRepository             { return f.notes }
func (f *fakeUnitOfWork) RequestRepository() contract.RequestRepository       { return f.requests }
func (f *fakeUnitOfWork) ShareRepository() contract.ShareRepository           { return f.shares }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// recordingPublisher captures published events in order.
type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) {
	p.published = append(p.published, event)
}
