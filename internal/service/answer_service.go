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

type IAnswerService interface {
	Create(ctx context.Context, questionId uuid.UUID, req *dto.CreateAnswerRequest) (*dto.CreateAnswerResponse, error)
}

type answerService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   IUserResolverService
	publisher  IPublisherService
	sysLogger  logger.ILogger
}

func NewAnswerService(
	uowFactory unitofwork.RepositoryFactory,
	resolver IUserResolverService,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IAnswerService {
	return &answerService{
		uowFactory: uowFactory,
		resolver:   resolver,
		publisher:  publisher,
		sysLogger:  sysLogger,
	}
}

func (s *answerService) Create(ctx context.Context, questionId uuid.UUID, req *dto.CreateAnswerRequest) (*dto.CreateAnswerResponse, error) {
	if req.AnsweredBy == "" {
		return nil, apperror.NewValidation("Name of Answering User is Missing")
	}

	text := normalize(req.Text)
	imageURL := normalize(req.ImageURL)
	if text == nil && imageURL == nil {
		return nil, apperror.NewValidation("Answer is Missing Text and URL of Image.  Please Include at Least One.")
	}

	answerer, err := s.resolver.Resolve(ctx, req.AnsweredBy, false)
	if err != nil {
		s.sysLogger.Error("answer", "Failed to resolve answering user", map[string]interface{}{
			"answered_by": req.AnsweredBy,
			"error":       err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Create Answer", err)
	}

	// Nothing prevents a second answer on the same question; the thread
	// query fans out over all of them.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	answer := entity.Answer{
		Id:              uuid.New(),
		QuestionId:      questionId,
		AnsweringUserId: answerer.Id,
		Text:            text,
		ImageURL:        imageURL,
		DateCreated:     time.Now(),
	}
	if err := uow.AnswerRepository().Create(ctx, &answer); err != nil {
		s.sysLogger.Error("answer", "Failed to insert answer", map[string]interface{}{
			"question_id": questionId.String(),
			"error":       err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Create Answer", err)
	}

	if err := s.publisher.Publish(ctx, events.AnswerPosted{
		AnswerId:   answer.Id,
		QuestionId: questionId,
		UserId:     answerer.Id,
		HasText:    text != nil,
		HasImage:   imageURL != nil,
		OccurredAt: time.Now(),
	}); err != nil {
		s.sysLogger.Warn("answer", "Failed to publish answer.posted", map[string]interface{}{
			"answer_id": answer.Id.String(),
			"error":     err.Error(),
		})
	}

	return &dto.CreateAnswerResponse{
		User: dto.UserRef{Id: answerer.Id, Name: answerer.Name},
		Details: dto.CreateAnswerDetails{
			AnswerId:   answer.Id,
			QuestionId: questionId,
			Text:       text,
			ImageURL:   imageURL,
		},
	}, nil
}

// normalize maps absent and empty strings to nil, the way the answers table
// stores them.
func normalize(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
