package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"qa-live-be/internal/dto"
	"qa-live-be/internal/entity"
	"qa-live-be/internal/pkg/apperror"
	"qa-live-be/internal/pkg/logger"
	"qa-live-be/internal/repository/unitofwork"
	"qa-live-be/pkg/cache"
	"qa-live-be/pkg/events"

	"github.com/google/uuid"
)

const defaultQAName = "Latest QA Session"

type IQAService interface {
	Create(ctx context.Context, req *dto.CreateQARequest) (*dto.CreateQAResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowQAResponse, error)
}

type qaService struct {
	uowFactory  unitofwork.RepositoryFactory
	resolver    IUserResolverService
	publisher   IPublisherService
	detailCache *cache.Store
	sysLogger   logger.ILogger
}

func NewQAService(
	uowFactory unitofwork.RepositoryFactory,
	resolver IUserResolverService,
	publisher IPublisherService,
	detailCache *cache.Store,
	sysLogger logger.ILogger,
) IQAService {
	return &qaService{
		uowFactory:  uowFactory,
		resolver:    resolver,
		publisher:   publisher,
		detailCache: detailCache,
		sysLogger:   sysLogger,
	}
}

func (s *qaService) Create(ctx context.Context, req *dto.CreateQARequest) (*dto.CreateQAResponse, error) {
	if req.HostName == "" {
		return nil, apperror.NewValidation("Name of Host is Missing")
	}

	startDate, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, apperror.NewValidation("Start Time is Missing")
	}
	endDate, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, apperror.NewValidation("End Time is Missing")
	}
	if !endDate.After(startDate) {
		return nil, apperror.NewValidation("QA Must End After It Begins.  Cmon.")
	}

	qaName := req.QaName
	if qaName == "" {
		qaName = defaultQAName
	}

	// A first-seen host name is fine; creating a QA is what makes a host.
	host, err := s.resolver.Resolve(ctx, req.HostName, true)
	if err != nil {
		s.sysLogger.Error("qa", "Failed to resolve host user", map[string]interface{}{
			"host_name": req.HostName,
			"error":     err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Create QA", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	qa := entity.QA{
		Id:        uuid.New(),
		HostId:    host.Id,
		Name:      qaName,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: time.Now(),
	}
	if err := uow.QARepository().Create(ctx, &qa); err != nil {
		s.sysLogger.Error("qa", "Failed to insert QA", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Create QA", err)
	}

	if err := s.publisher.Publish(ctx, events.QACreated{
		QaId:       qa.Id,
		HostId:     host.Id,
		Name:       qa.Name,
		OccurredAt: time.Now(),
	}); err != nil {
		s.sysLogger.Warn("qa", "Failed to publish qa.created", map[string]interface{}{
			"qa_id": qa.Id.String(),
			"error": err.Error(),
		})
	}

	return &dto.CreateQAResponse{
		User: dto.UserRef{Id: host.Id, Name: host.Name},
		Details: dto.CreateQADetails{
			Id:        qa.Id,
			QaName:    qa.Name,
			StartDate: qa.StartDate.UnixMilli(),
			EndDate:   qa.EndDate.UnixMilli(),
		},
	}, nil
}

func (s *qaService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowQAResponse, error) {
	cacheKey := fmt.Sprintf("qa:detail:%s", id)
	if raw, found := s.detailCache.Get(ctx, cacheKey); found {
		var cached dto.ShowQAResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	detail, err := uow.QARepository().FindDetail(ctx, id)
	if err != nil {
		s.sysLogger.Error("qa", "Failed to fetch QA detail", map[string]interface{}{
			"qa_id": id.String(),
			"error": err.Error(),
		})
		return nil, apperror.NewStorage("Unable to Retrieve QA", err)
	}
	if detail == nil {
		return nil, apperror.NewNotFound("No Matching QA ID in Our Records")
	}

	res := &dto.ShowQAResponse{
		User: dto.UserRef{Id: detail.HostId, Name: detail.HostName},
		Details: dto.ShowQADetails{
			Id:        detail.Id,
			Name:      detail.Name,
			StartDate: detail.StartDate.UnixMilli(),
			EndDate:   detail.EndDate.UnixMilli(),
		},
	}

	if raw, err := json.Marshal(res); err == nil {
		s.detailCache.Set(ctx, cacheKey, raw)
	}

	return res, nil
}
