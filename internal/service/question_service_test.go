package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"qa-live-be/internal/dto"
	"qa-live-be/internal/entity"
	"qa-live-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newQuestionServiceForTest() (IQuestionService, *fakeUowFactory, *fakePublisher) {
	factory := newFakeUowFactory()
	publisher := &fakePublisher{}
	resolver := NewUserResolverService(factory)
	svc := NewQuestionService(factory, resolver, publisher, nopLogger{})
	return svc, factory, publisher
}

func questionRow(text string, date time.Time) *entity.ThreadRow {
	return &entity.ThreadRow{
		QuestionId:   uuid.New(),
		AskingUserId: uuid.New(),
		AskedBy:      "Asker",
		QuestionText: text,
		QuestionDate: date,
	}
}

func withAnswer(row *entity.ThreadRow, text string, date time.Time) *entity.ThreadRow {
	answered := *row
	answerId := uuid.New()
	answererId := uuid.New()
	answeredBy := "Hosty"
	answered.AnswerId = &answerId
	answered.AnsweringUserId = &answererId
	answered.AnsweredBy = &answeredBy
	answered.AnswerText = &text
	answered.AnswerDate = &date
	return &answered
}

func TestCreateQuestionValidation(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()

	tests := []struct {
		name    string
		req     dto.CreateQuestionRequest
		wantMsg string
	}{
		{
			name:    "missing asker name",
			req:     dto.CreateQuestionRequest{Text: "Why?"},
			wantMsg: "Name of Asking User is Missing",
		},
		{
			name:    "missing question text",
			req:     dto.CreateQuestionRequest{AskedByName: "Asker"},
			wantMsg: "Question is Missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), uuid.New(), &tt.req)
			var valErr *apperror.ValidationError
			assert.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.wantMsg, valErr.Message)
		})
	}
}

func TestCreateQuestionSucceedsWithoutSessionCheck(t *testing.T) {
	svc, factory, publisher := newQuestionServiceForTest()

	qaId := uuid.New()
	res, err := svc.Create(context.Background(), qaId, &dto.CreateQuestionRequest{
		AskedByName: "Asker",
		Text:        "What is the roadmap?",
	})

	assert.NoError(t, err)
	assert.Equal(t, qaId, res.Details.QaId)
	assert.Equal(t, "What is the roadmap?", res.Details.Text)
	assert.Equal(t, "Asker", res.User.Name)

	assert.Len(t, factory.uow.questions.created, 1)
	asker, _ := factory.uow.users.FindOne(context.Background(), byName("Asker"))
	assert.NotNil(t, asker)
	assert.False(t, asker.IsHost)

	published := publisher.published()
	assert.Len(t, published, 1)
	assert.Equal(t, "question.asked", published[0].EventType())
}

func TestCreateQuestionStorageFailure(t *testing.T) {
	svc, factory, _ := newQuestionServiceForTest()
	factory.uow.questions.createErr = errors.New("connection reset")

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateQuestionRequest{
		AskedByName: "Asker",
		Text:        "Why?",
	})

	var stoErr *apperror.StorageError
	assert.True(t, errors.As(err, &stoErr))
	assert.Equal(t, "Unable to Create Question", stoErr.Message)
}

func TestListEmptySessionIsNotFound(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()

	_, err := svc.List(context.Background(), uuid.New(), FilterAll)
	var nfErr *apperror.NotFoundError
	assert.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "No Questions or Answers For This QA", nfErr.Message)
}

func TestListFilters(t *testing.T) {
	svc, factory, _ := newQuestionServiceForTest()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	q1 := questionRow("first", base)
	q2 := questionRow("second", base.Add(time.Minute))
	q3 := questionRow("third", base.Add(2*time.Minute))

	// Newest question first, the way the join orders them. q1 and q3 are
	// answered, q2 is not.
	factory.uow.questions.rows = []*entity.ThreadRow{
		withAnswer(q3, "answer three", base.Add(3*time.Minute)),
		q2,
		withAnswer(q1, "answer one", base.Add(time.Minute)),
	}

	t.Run("all", func(t *testing.T) {
		entries, err := svc.List(context.Background(), uuid.New(), FilterAll)
		assert.NoError(t, err)
		assert.Len(t, entries, 3)
		assert.Equal(t, "third", entries[0].Question.Details.Text)
		assert.Equal(t, "second", entries[1].Question.Details.Text)
		assert.Equal(t, "first", entries[2].Question.Details.Text)
	})

	t.Run("answered only", func(t *testing.T) {
		entries, err := svc.List(context.Background(), uuid.New(), FilterAnswered)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "third", entries[0].Question.Details.Text)
		assert.Equal(t, "first", entries[1].Question.Details.Text)
		for _, entry := range entries {
			assert.True(t, entry.HasAnswer)
			assert.NotNil(t, entry.Answer.Details.Id)
		}
	})

	t.Run("unanswered only", func(t *testing.T) {
		entries, err := svc.List(context.Background(), uuid.New(), FilterUnanswered)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "second", entries[0].Question.Details.Text)
		assert.False(t, entries[0].HasAnswer)
		assert.Nil(t, entries[0].Answer.Details.Id)
		assert.Nil(t, entries[0].Answer.User.Id)
	})
}

func TestListFilteredToNothingIsStillSuccess(t *testing.T) {
	svc, factory, _ := newQuestionServiceForTest()

	// One unanswered question; asking for answered ones yields an empty
	// list, not a miss.
	factory.uow.questions.rows = []*entity.ThreadRow{
		questionRow("only", time.Now()),
	}

	entries, err := svc.List(context.Background(), uuid.New(), FilterAnswered)
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestListFansOutMultipleAnswers(t *testing.T) {
	svc, factory, _ := newQuestionServiceForTest()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	q := questionRow("popular", base)
	factory.uow.questions.rows = []*entity.ThreadRow{
		withAnswer(q, "take one", base.Add(time.Minute)),
		withAnswer(q, "take two", base.Add(2*time.Minute)),
	}

	entries, err := svc.List(context.Background(), uuid.New(), FilterAll)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, entries[0].Question.Details.Id, entries[1].Question.Details.Id)
	assert.Equal(t, "take one", *entries[0].Answer.Details.Text)
	assert.Equal(t, "take two", *entries[1].Answer.Details.Text)
}

func TestListWireDatesAreEpochMillis(t *testing.T) {
	svc, factory, _ := newQuestionServiceForTest()

	asked := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	answered := asked.Add(time.Minute)
	factory.uow.questions.rows = []*entity.ThreadRow{
		withAnswer(questionRow("when", asked), "now", answered),
	}

	entries, err := svc.List(context.Background(), uuid.New(), FilterAll)
	assert.NoError(t, err)
	assert.Equal(t, asked.UnixMilli(), entries[0].Question.Details.DateCreated)
	assert.Equal(t, answered.UnixMilli(), *entries[0].Answer.Details.DateCreated)
}

func TestListStorageFailure(t *testing.T) {
	svc, factory, _ := newQuestionServiceForTest()
	factory.uow.questions.findErr = errors.New("connection reset")

	_, err := svc.List(context.Background(), uuid.New(), FilterAll)
	var stoErr *apperror.StorageError
	assert.True(t, errors.As(err, &stoErr))
	assert.Equal(t, "Unable to Retrieve QA", stoErr.Message)
}
