package service

import (
	"context"
	"fmt"
	"time"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/repository/specification"
	"qa-live-be/internal/repository/unitofwork"
	"qa-live-be/pkg/database"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IUserResolverService interface {
	// Resolve returns the user for the given display name, creating it on
	// first use. isHost only takes effect at creation; resolving an existing
	// name returns the stored row unchanged.
	Resolve(ctx context.Context, name string, isHost bool) (*entity.User, error)
}

type userResolverService struct {
	uowFactory unitofwork.RepositoryFactory
	byName     *gocache.Cache
}

func NewUserResolverService(uowFactory unitofwork.RepositoryFactory) IUserResolverService {
	return &userResolverService{
		uowFactory: uowFactory,
		// Users are never updated or deleted, so cached rows only ever go
		// stale by expiring.
		byName: gocache.New(1*time.Hour, 10*time.Minute),
	}
}

func (s *userResolverService) Resolve(ctx context.Context, name string, isHost bool) (*entity.User, error) {
	if x, found := s.byName.Get(name); found {
		return x.(*entity.User), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByName{Name: name})
	if err != nil {
		return nil, err
	}

	if user == nil {
		candidate := &entity.User{
			Id:        uuid.New(),
			Name:      name,
			IsHost:    isHost,
			CreatedAt: time.Now(),
		}
		err := repo.Create(ctx, candidate)
		switch {
		case err == nil:
			user = candidate
		case database.IsUniqueViolation(err):
			// Lost the create race; the winner's row is authoritative.
			user, err = repo.FindOne(ctx, specification.ByName{Name: name})
			if err != nil {
				return nil, err
			}
			if user == nil {
				return nil, fmt.Errorf("user %q missing after duplicate-key insert", name)
			}
		default:
			return nil, err
		}
	}

	s.byName.Set(name, user, gocache.DefaultExpiration)
	return user, nil
}
