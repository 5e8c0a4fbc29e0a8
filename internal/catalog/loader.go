// Package catalog loads the course list from the remote source. A Loader is
// single-shot: activating one issues exactly one request, and reloading means
// activating a fresh one.
package catalog

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/mira-academy/catalog/internal/models"
)

// Loader owns one fetch of the full course list. Its observable state is a
// snapshot of loading / error / courses. Tearing the loader down cancels the
// in-flight request and suppresses any late result: a closed loader never
// mutates its state again.
type Loader struct {
	mu      sync.Mutex
	loading bool
	err     error
	courses []models.Course
	closed  bool

	cancel context.CancelFunc
	done   chan struct{}

	client *http.Client
	url    string
	logger *zap.Logger
}

// Activate starts the fetch and returns immediately. ctx bounds the whole
// activation; Close cancels it early.
func Activate(ctx context.Context, client *http.Client, url string, logger *zap.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	l := &Loader{
		loading: true,
		cancel:  cancel,
		done:    make(chan struct{}),
		client:  client,
		url:     url,
		logger:  logger,
	}
	go l.fetch(fetchCtx)
	return l
}

func (l *Loader) fetch(ctx context.Context) {
	defer close(l.done)

	courses, err := fetchCourses(ctx, l.client, l.url)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || ctx.Err() != nil {
		// Torn down mid-flight: the result, success or failure, must not
		// become visible.
		l.logger.Debug("course fetch cancelled", zap.String("url", l.url))
		return
	}

	l.loading = false
	if err != nil {
		l.err = err
		l.courses = nil
		l.logger.Warn("course fetch failed", zap.String("url", l.url), zap.Error(err))
		return
	}
	l.courses = courses
	l.logger.Info("courses loaded", zap.String("url", l.url), zap.Int("count", len(courses)))
}

// Snapshot returns the course list, whether the fetch is still outstanding,
// and the terminal error if one occurred.
func (l *Loader) Snapshot() ([]models.Course, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.courses, l.loading, l.err
}

// Done closes once the fetch has settled (committed, failed or been
// suppressed).
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Close tears the activation down. It cancels any in-flight request, waits
// for the fetch goroutine to exit and is safe to call more than once.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	<-l.done
}
