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
	"sharenotes-be/pkg/export"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteDTO, error)
	Delete(ctx context.Context, userId, noteId uuid.UUID) error
	GetById(ctx context.Context, userId, noteId uuid.UUID) (*dto.NoteDTO, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]dto.NoteDTO, error)
	FilterByTitle(ctx context.Context, req *dto.FilterNotesRequest) ([]dto.NoteDTO, error)
	LatestNotes(ctx context.Context, userId uuid.UUID, limit int) ([]dto.NoteDTO, error)
	Download(ctx context.Context, userId uuid.UUID, req *dto.DownloadNoteRequest) (*dto.DownloadNoteResponse, error)
}

type noteService struct {
	uowFactory  unitofwork.RepositoryFactory
	renderCache *export.RenderCache
	now         func() time.Time
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, renderCache *export.RenderCache) INoteService {
	return &noteService{
		uowFactory:  uowFactory,
		renderCache: renderCache,
		now:         time.Now,
	}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	if !entity.ValidGrade(req.Grade) {
		return nil, apperror.InvalidArgument("grade must be between %d and %d", entity.GradeMin, entity.GradeMax)
	}

	date, err := parseNoteDate(req.Date)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := &entity.Note{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Title:     strings.TrimSpace(req.Title),
		Text:      req.Text,
		Date:      date,
		Grade:     req.Grade,
		CreatedAt: s.now(),
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

// Update applies a partial edit. Nil fields, and blank title, text or
// date, keep the stored value; grade zero is a real grade, only a nil
// pointer means unchanged.
func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Text != nil && strings.TrimSpace(*req.Text) != "" {
		note.Text = *req.Text
	}
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		date, err := parseNoteDate(*req.Date)
		if err != nil {
			return nil, err
		}
		note.Date = date
	}
	if req.Grade != nil {
		if !entity.ValidGrade(*req.Grade) {
			return nil, apperror.InvalidArgument("grade must be between %d and %d", entity.GradeMin, entity.GradeMax)
		}
		note.Grade = *req.Grade
	}

	now := s.now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	n := toNoteDTO(note)
	return &n, nil
}

// Delete removes the note and the share ledger entries pointing at it,
// in one transaction.
func (s *noteService) Delete(ctx context.Context, userId, noteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, noteId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ShareRepository().DeleteAllForNote(ctx, noteId); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, noteId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *noteService) GetById(ctx context.Context, userId, noteId uuid.UUID) (*dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, noteId)
	if err != nil {
		return nil, err
	}

	n := toNoteDTO(note)
	return &n, nil
}

func (s *noteService) ListByUser(ctx context.Context, userId uuid.UUID) ([]dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toNoteDTOs(notes), nil
}

// FilterByTitle narrows the list to titles containing the term. A blank
// term falls back to the full list.
func (s *noteService) FilterByTitle(ctx context.Context, req *dto.FilterNotesRequest) ([]dto.NoteDTO, error) {
	term := strings.TrimSpace(req.Title)
	if term == "" {
		return s.ListByUser(ctx, req.UserId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: req.UserId},
		specification.TitleContains{Term: term},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toNoteDTOs(notes), nil
}

// LatestNotes returns the most recently created notes, newest first.
func (s *noteService) LatestNotes(ctx context.Context, userId uuid.UUID, limit int) ([]dto.NoteDTO, error) {
	if limit <= 0 {
		limit = 5
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}
	return toNoteDTOs(notes), nil
}

// Download renders the note in the requested format. The payload and its
// metadata come from the same render, so the declared length always
// matches the bytes sent.
func (s *noteService) Download(ctx context.Context, userId uuid.UUID, req *dto.DownloadNoteRequest) (*dto.DownloadNoteResponse, error) {
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, req.NoteId)
	if err != nil {
		return nil, err
	}

	if meta, payload, ok := s.renderCache.Get(note, format); ok {
		return downloadResponse(meta, payload), nil
	}

	payload, err := export.Render(note, format)
	if err != nil {
		return nil, err
	}

	meta := &export.Metadata{
		ContentType: format.ContentType(),
		Filename:    export.Filename(note, format),
		Length:      len(payload),
	}
	s.renderCache.Put(note, format, meta, payload)

	return downloadResponse(meta, payload), nil
}

func downloadResponse(meta *export.Metadata, payload []byte) *dto.DownloadNoteResponse {
	return &dto.DownloadNoteResponse{
		ContentType: meta.ContentType,
		Filename:    meta.Filename,
		Length:      meta.Length,
		Payload:     payload,
	}
}

func (s *noteService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserId != userId {
		return nil, apperror.NotFound("note not found")
	}
	return note, nil
}

func parseNoteDate(value string) (time.Time, error) {
	date, err := time.Parse(export.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperror.InvalidArgument("date must be in %s format", export.DateLayout)
	}
	return date, nil
}

func toNoteDTO(n *entity.Note) dto.NoteDTO {
	return dto.NoteDTO{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Text:      n.Text,
		Date:      n.Date.Format(export.DateLayout),
		Grade:     n.Grade,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteDTOs(notes []*entity.Note) []dto.NoteDTO {
	result := make([]dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		result = append(result, toNoteDTO(n))
	}
	return result
}
