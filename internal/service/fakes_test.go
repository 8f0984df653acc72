package service

import (
	"context"
	"errors"
	"sync"

	"datecourse/internal/model"
	"datecourse/internal/repository"
)

type fakeCourses struct {
	mu         sync.Mutex
	byID       map[string]model.Course
	replaceErr error
	replaced   []model.Course
}

func newFakeCourses(cs ...model.Course) *fakeCourses {
	f := &fakeCourses{byID: map[string]model.Course{}}
	for _, c := range cs {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCourses) GetByID(_ context.Context, id string) (*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCourses) ListByUser(_ context.Context, userID string) ([]model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Course{}
	for _, c := range f.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourses) Replace(_ context.Context, c *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.byID[c.ID] = *c
	f.replaced = append(f.replaced, *c)
	return nil
}

type fakeHistory struct {
	mu      sync.Mutex
	records []model.CourseEditHistory
	err     error
}

func (f *fakeHistory) Create(_ context.Context, h *model.CourseEditHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	h.ID = "h" + string(rune('0'+len(f.records)+1))
	f.records = append(f.records, *h)
	return nil
}

func (f *fakeHistory) ListByCourse(_ context.Context, courseID string) ([]model.CourseEditHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.CourseEditHistory{}
	for _, r := range f.records {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type published struct {
	key string
	v   any
}

type fakePublisher struct {
	events []published
	err    error
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	f.events = append(f.events, published{key: key, v: v})
	return f.err
}

type fakeUsers struct {
	byID      map[string]model.User
	created   int
	createErr error
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created++
	id := "new-user"
	cp := *u
	cp.ID = id
	f.byID[id] = cp
	return id, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) GetByTelegramID(_ context.Context, tid int64) (*model.User, error) {
	for _, u := range f.byID {
		if u.TelegramID != nil && *u.TelegramID == tid {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

var errStorage = errors.New("storage down")
