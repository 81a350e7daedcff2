package storage

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Lazy hands out one shared Store, opening it on the first Get.
type Lazy struct {
	dsn   string
	open  func(ctx context.Context, dsn string) (*Store, error)
	group singleflight.Group

	mu    sync.RWMutex
	store *Store
}

func NewLazy(dsn string) *Lazy {
	return &Lazy{dsn: dsn, open: Open}
}

// Get returns the shared Store, opening it if this is the first call.
// The open itself is detached from any caller's cancellation, so one
// cancelled caller cannot fail the others waiting on the same open; each
// caller stops waiting when its own ctx is done.
func (l *Lazy) Get(ctx context.Context) (*Store, error) {
	if s := l.cached(); s != nil {
		return s, nil
	}

	openCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(l.dsn, func() (any, error) {
		if s := l.cached(); s != nil {
			return s, nil
		}
		s, err := l.open(openCtx, l.dsn)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.store = s
		l.mu.Unlock()
		return s, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Store), nil
	}
}

func (l *Lazy) cached() *Store {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store
}

// Close closes the shared Store if it was opened. A later Get reopens it.
func (l *Lazy) Close() error {
	l.mu.Lock()
	s := l.store
	l.store = nil
	l.mu.Unlock()

	if s == nil {
		return nil
	}
	return s.Close()
}
