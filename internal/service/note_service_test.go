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
	"sharenotes-be/pkg/export"
)

func newNoteServiceForTest() (*noteService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	svc := NewNoteService(&fakeFactory{uow: uow}, export.NewRenderCache(time.Minute)).(*noteService)
	svc.now = testClock
	return svc, uow
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func storedNote(userId uuid.UUID) *entity.Note {
	date, _ := time.Parse(export.DateLayout, "2024-05-05")
	return &entity.Note{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     "A title",
		Text:      "Some text",
		Date:      date,
		Grade:     9,
		CreatedAt: testClock().Add(-time.Hour),
	}
}

func TestCreateNote(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()

	var created *entity.Note
	uow.notes.On("Create", mock.Anything, mock.AnythingOfType("*entity.Note")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Note) }).
		Return(nil)

	res, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		UserId: userId,
		Title:  "A title",
		Text:   "Some text",
		Date:   "2024-05-05",
		Grade:  9,
	})

	assert.NoError(t, err)
	assert.Equal(t, created.Id, res.Id)
	assert.Equal(t, userId, created.UserId)
	assert.Equal(t, "2024-05-05", created.Date.Format(export.DateLayout))
	assert.Equal(t, testClock(), created.CreatedAt)
	assert.Nil(t, created.UpdatedAt)
}

func TestCreateNoteGradeBounds(t *testing.T) {
	svc, uow := newNoteServiceForTest()

	for _, grade := range []int{entity.GradeMin, entity.GradeMax} {
		uow.notes.On("Create", mock.Anything, mock.Anything).Return(nil)
		_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
			UserId: uuid.New(), Title: "t", Date: "2024-05-05", Grade: grade,
		})
		assert.NoError(t, err, "grade %d", grade)
	}

	for _, grade := range []int{entity.GradeMin - 1, entity.GradeMax + 1} {
		_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
			UserId: uuid.New(), Title: "t", Date: "2024-05-05", Grade: grade,
		})
		assert.True(t, apperror.IsInvalidArgument(err), "grade %d", grade)
	}
}

func TestCreateNoteBadDate(t *testing.T) {
	svc, _ := newNoteServiceForTest()

	_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		UserId: uuid.New(), Title: "t", Date: "05-05-2024", Grade: 5,
	})

	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestUpdateNotePartial(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()
	note := storedNote(userId)

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)
	uow.notes.On("Update", mock.Anything, mock.AnythingOfType("*entity.Note")).Return(nil)

	// Only the grade changes; zero is a legitimate value.
	res, err := svc.Update(context.Background(), userId, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Grade: intPtr(0),
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Grade)
	assert.Equal(t, "A title", res.Title)
	assert.Equal(t, "Some text", res.Text)
	assert.Equal(t, "2024-05-05", res.Date)
	assert.NotNil(t, res.UpdatedAt)
	assert.Equal(t, testClock(), *res.UpdatedAt)
}

func TestUpdateNoteBlankFieldsKeepValues(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()
	note := storedNote(userId)

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)
	uow.notes.On("Update", mock.Anything, mock.AnythingOfType("*entity.Note")).Return(nil)

	res, err := svc.Update(context.Background(), userId, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Title: strPtr("  "),
		Date:  strPtr(""),
		Text:  strPtr("New text"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "A title", res.Title)
	assert.Equal(t, "2024-05-05", res.Date)
	assert.Equal(t, "New text", res.Text)
}

func TestUpdateNoteBlankTextKeepsValue(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()
	note := storedNote(userId)

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)
	uow.notes.On("Update", mock.Anything, mock.AnythingOfType("*entity.Note")).Return(nil)

	// Whitespace-only text is no change, not a clear-to-empty.
	res, err := svc.Update(context.Background(), userId, &dto.UpdateNoteRequest{
		Id:   note.Id,
		Text: strPtr("   "),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Some text", res.Text)
}

func TestUpdateNoteInvalidGrade(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()
	note := storedNote(userId)

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)

	_, err := svc.Update(context.Background(), userId, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Grade: intPtr(entity.GradeMax + 1),
	})

	assert.True(t, apperror.IsInvalidArgument(err))
	uow.notes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateNoteNotOwned(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	note := storedNote(uuid.New())

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateNoteRequest{Id: note.Id})

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteNoteCascadesShares(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()
	note := storedNote(userId)

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)
	uow.shares.On("DeleteAllForNote", mock.Anything, note.Id).Return(nil)
	uow.notes.On("Delete", mock.Anything, note.Id).Return(nil)

	err := svc.Delete(context.Background(), userId, note.Id)

	assert.NoError(t, err)
	assert.Equal(t, 1, uow.begun)
	assert.Equal(t, 1, uow.committed)
	uow.shares.AssertCalled(t, "DeleteAllForNote", mock.Anything, note.Id)
}

func TestFilterByTitleBlankFallsBack(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()

	// Blank filter takes the plain list path with two specs.
	uow.notes.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*entity.Note{storedNote(userId)}, nil)

	res, err := svc.FilterByTitle(context.Background(), &dto.FilterNotesRequest{UserId: userId, Title: "   "})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestFilterByTitleWithTerm(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()

	uow.notes.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*entity.Note{storedNote(userId)}, nil)

	res, err := svc.FilterByTitle(context.Background(), &dto.FilterNotesRequest{UserId: userId, Title: "title"})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestDownloadNoteText(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	userId := uuid.New()
	note := storedNote(userId)

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)

	res, err := svc.Download(context.Background(), userId, &dto.DownloadNoteRequest{NoteId: note.Id, Format: "txt"})

	assert.NoError(t, err)
	assert.Equal(t, "text/plain", res.ContentType)
	assert.Equal(t, "note_A title_2024-05-05.txt", res.Filename)
	assert.Equal(t, "Title: A title 2024-05-05\n\nContent: \nSome text\n\nGrade: 9", string(res.Payload))
	assert.Equal(t, len(res.Payload), res.Length)

	// Second download of the unchanged note is served from the cache.
	again, err := svc.Download(context.Background(), userId, &dto.DownloadNoteRequest{NoteId: note.Id, Format: "txt"})
	assert.NoError(t, err)
	assert.Equal(t, res.Payload, again.Payload)
	assert.Equal(t, res.Length, again.Length)
}

func TestDownloadNoteUnsupportedFormat(t *testing.T) {
	svc, uow := newNoteServiceForTest()

	_, err := svc.Download(context.Background(), uuid.New(), &dto.DownloadNoteRequest{NoteId: uuid.New(), Format: "html"})

	assert.True(t, apperror.IsUnsupportedFormat(err))
	uow.notes.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestDownloadNoteNotOwned(t *testing.T) {
	svc, uow := newNoteServiceForTest()
	note := storedNote(uuid.New())

	uow.notes.On("FindOne", mock.Anything, mock.Anything).Return(note, nil)

	_, err := svc.Download(context.Background(), uuid.New(), &dto.DownloadNoteRequest{NoteId: note.Id, Format: "pdf"})

	assert.True(t, apperror.IsNotFound(err))
}
