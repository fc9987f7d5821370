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

type IShareService interface {
	ShareNote(ctx context.Context, req *dto.ShareNoteRequest) (*dto.ShareDTO, error)
	ListSent(ctx context.Context, req *dto.ListSharesRequest) ([]dto.ShareDTO, error)
	ListReceived(ctx context.Context, req *dto.ListSharesRequest) ([]dto.ShareWithNoteDTO, error)
	GetById(ctx context.Context, userId, shareId uuid.UUID) (*dto.ShareWithNoteDTO, error)
}

type shareService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	now        func() time.Time
}

func NewShareService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IShareService {
	return &shareService{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// ShareNote appends a ledger entry sending the note to the user behind the
// given email. The note stays owned by the sender; the entry is a reference,
// never a copy.
func (s *shareService) ShareNote(ctx context.Context, req *dto.ShareNoteRequest) (*dto.ShareDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserId != req.SenderId {
		return nil, apperror.NotFound("note not found")
	}

	receiver, err := s.resolveByEmail(ctx, uow, req.ReceiverEmail)
	if err != nil {
		return nil, err
	}
	if receiver.Id == req.SenderId {
		return nil, apperror.InvalidArgument("cannot share a note with yourself")
	}

	share := &entity.Share{
		Id:         uuid.New(),
		SenderId:   req.SenderId,
		ReceiverId: receiver.Id,
		NoteId:     req.NoteId,
		SentAt:     s.now(),
	}

	if err := uow.ShareRepository().Create(ctx, share); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.NewNoteShared(share.Id, share.SenderId, share.ReceiverId, share.NoteId, s.now()))

	dtoShare := toShareDTO(share)
	return &dtoShare, nil
}

// ListSent returns outgoing shares, newest first, optionally narrowed to
// one receiver by email.
func (s *shareService) ListSent(ctx context.Context, req *dto.ListSharesRequest) ([]dto.ShareDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.SharedBy{SenderID: req.UserId},
		specification.OrderBy{Field: "sent_at", Desc: true},
	}
	if strings.TrimSpace(req.Email) != "" {
		receiver, err := s.resolveByEmail(ctx, uow, req.Email)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.SharedWith{ReceiverID: receiver.Id})
	}

	shares, err := uow.ShareRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ShareDTO, 0, len(shares))
	for _, sh := range shares {
		result = append(result, toShareDTO(sh))
	}
	return result, nil
}

// ListReceived returns incoming shares with the shared note attached,
// newest first, optionally narrowed to one sender by email. Entries whose
// note was deleted after sharing are skipped.
func (s *shareService) ListReceived(ctx context.Context, req *dto.ListSharesRequest) ([]dto.ShareWithNoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.SharedWith{ReceiverID: req.UserId},
		specification.OrderBy{Field: "sent_at", Desc: true},
	}
	if strings.TrimSpace(req.Email) != "" {
		sender, err := s.resolveByEmail(ctx, uow, req.Email)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.SharedBy{SenderID: sender.Id})
	}

	shares, err := uow.ShareRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ShareWithNoteDTO, 0, len(shares))
	for _, sh := range shares {
		note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: sh.NoteId})
		if err != nil {
			return nil, err
		}
		if note == nil {
			continue
		}
		result = append(result, dto.ShareWithNoteDTO{
			ShareDTO: toShareDTO(sh),
			Note:     toNoteDTO(note),
		})
	}
	return result, nil
}

// GetById resolves one share for either party of the exchange.
func (s *shareService) GetById(ctx context.Context, userId, shareId uuid.UUID) (*dto.ShareWithNoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	share, err := uow.ShareRepository().FindOne(ctx, specification.ByID{ID: shareId})
	if err != nil {
		return nil, err
	}
	if share == nil || (share.SenderId != userId && share.ReceiverId != userId) {
		return nil, apperror.NotFound("share not found")
	}

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: share.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note not found")
	}

	return &dto.ShareWithNoteDTO{
		ShareDTO: toShareDTO(share),
		Note:     toNoteDTO(note),
	}, nil
}

func (s *shareService) resolveByEmail(ctx context.Context, uow unitofwork.UnitOfWork, email string) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: strings.ToLower(strings.TrimSpace(email))})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func toShareDTO(sh *entity.Share) dto.ShareDTO {
	return dto.ShareDTO{
		Id:         sh.Id,
		SenderId:   sh.SenderId,
		ReceiverId: sh.ReceiverId,
		NoteId:     sh.NoteId,
		SentAt:     sh.SentAt,
	}
}
