package service

import (
	"context"
	"sync"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/repository/contract"
	"qa-live-be/internal/repository/specification"
	"qa-live-be/internal/repository/unitofwork"
	"qa-live-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func byName(name string) specification.Specification {
	return specification.ByName{Name: name}
}

// fakeUserRepo enforces name uniqueness the same way the users table does:
// Create fails with a duplicate-key error when the name is taken.
type fakeUserRepo struct {
	mu     sync.Mutex
	byName map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[user.Name]; exists {
		return gorm.ErrDuplicatedKey
	}
	copied := *user
	r.byName[user.Name] = &copied
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byName, ok := spec.(specification.ByName); ok {
			if user, found := r.byName[byName.Name]; found {
				copied := *user
				return &copied, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byName)), nil
}

type fakeQARepo struct {
	mu      sync.Mutex
	created []*entity.QA
	details map[uuid.UUID]*entity.QADetail

	createErr error
	findErr   error
}

func newFakeQARepo() *fakeQARepo {
	return &fakeQARepo{details: make(map[uuid.UUID]*entity.QADetail)}
}

func (r *fakeQARepo) Create(ctx context.Context, qa *entity.QA) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *qa
	r.created = append(r.created, &copied)
	return nil
}

func (r *fakeQARepo) FindDetail(ctx context.Context, id uuid.UUID) (*entity.QADetail, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	detail, found := r.details[id]
	if !found {
		return nil, nil
	}
	copied := *detail
	return &copied, nil
}

type fakeQuestionRepo struct {
	mu      sync.Mutex
	created []*entity.Question
	rows    []*entity.ThreadRow

	createErr error
	findErr   error
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *question
	r.created = append(r.created, &copied)
	return nil
}

func (r *fakeQuestionRepo) FindThread(ctx context.Context, qaId uuid.UUID) ([]*entity.ThreadRow, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.rows, nil
}

type fakeAnswerRepo struct {
	mu      sync.Mutex
	created []*entity.Answer

	createErr error
}

func (r *fakeAnswerRepo) Create(ctx context.Context, answer *entity.Answer) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *answer
	r.created = append(r.created, &copied)
	return nil
}

type fakeActivityLogRepo struct {
	mu   sync.Mutex
	logs []*entity.ActivityLog
}

func (r *fakeActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *log
	r.logs = append(r.logs, &copied)
	return nil
}

func (r *fakeActivityLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.ActivityLog(nil), r.logs...), nil
}

// fakeUow hands out the same repo instances on every call so tests can seed
// and inspect them directly.
type fakeUow struct {
	users       *fakeUserRepo
	qas         *fakeQARepo
	questions   *fakeQuestionRepo
	answers     *fakeAnswerRepo
	activityLog *fakeActivityLogRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		users:       newFakeUserRepo(),
		qas:         newFakeQARepo(),
		questions:   &fakeQuestionRepo{},
		answers:     &fakeAnswerRepo{},
		activityLog: &fakeActivityLogRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeUow) QARepository() contract.QARepository                   { return u.qas }
func (u *fakeUow) QuestionRepository() contract.QuestionRepository       { return u.questions }
func (u *fakeUow) AnswerRepository() contract.AnswerRepository           { return u.answers }
func (u *fakeUow) ActivityLogRepository() contract.ActivityLogRepository { return u.activityLog }

type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: newFakeUow()}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
