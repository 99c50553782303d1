package service

import (
	"context"
	"time"

	"qa-live-be/internal/dto"
	"qa-live-be/internal/entity"
	"qa-live-be/internal/pkg/apperror"
	"qa-live-be/internal/pkg/logger"
	"qa-live-be/internal/repository/unitofwork"
	"qa-live-be/pkg/events"

	"github.com/google/uuid"
)

// AnswerFilter partitions the thread by answer state.
type AnswerFilter int

const (
	FilterAll AnswerFilter = iota
	FilterAnswered
	FilterUnanswered
)

type IQuestionService interface {
	Create(ctx context.Context, qaId uuid.UUID, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	List(ctx context.Context, qaId uuid.UUID, filter AnswerFilter) ([]*dto.ThreadEntry, error)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   IUserResolverService
	publisher  IPublisherService
	sysLogger  logger.ILogger
}

func NewQuestionService(
	uowFactory unitofwork.RepositoryFactory,
	resolver IUserResolverService,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IQuestionService {
	return &questionService{
		uowFactory: uowFactory,
		resolver:   resolver,
		publisher:  publisher,
		sysLogger:  sysLogger,
	}
}

func (s *questionService) Create(ctx context.Context, qaId uuid.UUID, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if req.AskedByName == "" {
		return nil, apperror.NewValidation("Name of Asking User is Missing")
	}
	if req.Text == "" {
		return nil, apperror.NewValidation("Question is Missing")
	}

	asker, err := s.resolver.Resolve(ctx, req.AskedByName, false)
	if err != nil {
		s.sysLogger.Error("question", "Failed to resolve asking user", map[string]interface{}{
			"asked_by_name": req.AskedByName,
			"error":         err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Create Question", err)
	}

	// No existence check on qaId; the session may not exist and the insert
	// still goes through.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	question := entity.Question{
		Id:          uuid.New(),
		QaId:        qaId,
		UserId:      asker.Id,
		Text:        req.Text,
		DateCreated: time.Now(),
	}
	if err := uow.QuestionRepository().Create(ctx, &question); err != nil {
		s.sysLogger.Error("question", "Failed to insert question", map[string]interface{}{
			"qa_id": qaId.String(),
			"error": err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Create Question", err)
	}

	if err := s.publisher.Publish(ctx, events.QuestionAsked{
		QuestionId: question.Id,
		QaId:       qaId,
		UserId:     asker.Id,
		OccurredAt: time.Now(),
	}); err != nil {
		s.sysLogger.Warn("question", "Failed to publish question.asked", map[string]interface{}{
			"question_id": question.Id.String(),
			"error":       err.Error(),
		})
	}

	return &dto.CreateQuestionResponse{
		User: dto.UserRef{Id: asker.Id, Name: asker.Name},
		Details: dto.CreateQuestionDetails{
			Id:   question.Id,
			QaId: qaId,
			Text: question.Text,
		},
	}, nil
}

func (s *questionService) List(ctx context.Context, qaId uuid.UUID, filter AnswerFilter) ([]*dto.ThreadEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.QuestionRepository().FindThread(ctx, qaId)
	if err != nil {
		s.sysLogger.Error("question", "Failed to fetch question thread", map[string]interface{}{
			"qa_id": qaId.String(),
			"error": err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Retrieve QA", err)
	}

	// An empty join is a soft miss; a thread that the filter empties out is
	// a normal success with no entries.
	if len(rows) == 0 {
		return nil, apperror.NewNotFound("No Questions or Answers For This QA")
	}

	entries := make([]*dto.ThreadEntry, 0, len(rows))
	for _, row := range rows {
		switch filter {
		case FilterAnswered:
			if !row.HasAnswer() {
				continue
			}
		case FilterUnanswered:
			if row.HasAnswer() {
				continue
			}
		}
		entries = append(entries, threadEntryFromRow(row))
	}

	return entries, nil
}

func threadEntryFromRow(row *entity.ThreadRow) *dto.ThreadEntry {
	entry := &dto.ThreadEntry{
		Question: dto.ThreadQuestion{
			User: dto.UserRef{Id: row.AskingUserId, Name: row.AskedBy},
			Details: dto.ThreadQuestionDetails{
				Id:          row.QuestionId,
				Text:        row.QuestionText,
				DateCreated: row.QuestionDate.UnixMilli(),
			},
		},
		HasAnswer: row.HasAnswer(),
	}

	if row.HasAnswer() {
		var answerDate *int64
		if row.AnswerDate != nil {
			millis := row.AnswerDate.UnixMilli()
			answerDate = &millis
		}
		entry.Answer = dto.ThreadAnswer{
			User: dto.NullableUserRef{Id: row.AnsweringUserId, Name: row.AnsweredBy},
			Details: dto.ThreadAnswerDetails{
				Id:          row.AnswerId,
				Text:        row.AnswerText,
				ImageURL:    row.AnswerImageURL,
				DateCreated: answerDate,
			},
		}
	}

	return entry
}
