// Package enrollment holds the session's enrolled-course set. One store is
// created per session and shared by every view that reads or mutates
// enrollment; it never leaves the process and is dropped at session end.
package enrollment

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mira-academy/catalog/internal/models"
)

// Store is a keyed set of enrolled courses, keyed by course number. It is
// safe for concurrent use. Consumers observe changes through Subscribe;
// each logical change notifies exactly once, no-ops never notify.
type Store struct {
	mu        sync.RWMutex
	byNumber  map[string]models.Course
	order     []string
	listeners map[int]func()
	nextSub   int
	logger    *zap.Logger
}

// NewStore constructs an empty store.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		byNumber:  make(map[string]models.Course),
		listeners: make(map[int]func()),
		logger:    logger,
	}
}

// Enroll inserts the course under its course number. Courses without a
// number cannot be enrolled and are ignored. Re-enrolling an existing number
// is a no-op: the first stored record wins.
func (s *Store) Enroll(course models.Course) {
	number := course.CourseNumber.String()
	if number == "" {
		return
	}

	s.mu.Lock()
	if _, ok := s.byNumber[number]; ok {
		s.mu.Unlock()
		return
	}
	s.byNumber[number] = course
	s.order = append(s.order, number)
	count := len(s.order)
	s.mu.Unlock()

	s.logger.Debug("course enrolled", zap.String("course_number", number), zap.Int("count", count))
	s.notify()
}

// Drop removes the course stored under number. Empty or unknown numbers are
// ignored.
func (s *Store) Drop(number string) {
	if number == "" {
		return
	}

	s.mu.Lock()
	if _, ok := s.byNumber[number]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.byNumber, number)
	for i, n := range s.order {
		if n == number {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	count := len(s.order)
	s.mu.Unlock()

	s.logger.Debug("course dropped", zap.String("course_number", number), zap.Int("count", count))
	s.notify()
}

// IsEnrolled reports whether number is present. Always false for the empty
// key.
func (s *Store) IsEnrolled(number string) bool {
	if number == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byNumber[number]
	return ok
}

// Enrolled returns a copy of the stored courses in enrollment order. The
// order is stable across calls while the set is unchanged.
func (s *Store) Enrolled() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, 0, len(s.order))
	for _, number := range s.order {
		out = append(out, s.byNumber[number])
	}
	return out
}

// Count returns the number of enrolled courses.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Subscribe registers fn to run after every committed change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// notify runs outside the write lock so listeners may query the store.
func (s *Store) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
