//go:build unit

package shared_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/infra/cartstore"
	"jersey-storefront/internal/pkg/clock"
	"jersey-storefront/internal/usecase/shared"
	"jersey-storefront/tests/common/builder"
	"jersey-storefront/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyFactory wraps the memory backend with a switchable save failure.
type flakyFactory struct {
	backend *cartstore.MemoryBackend
	mu      sync.Mutex
	down    bool
}

func (f *flakyFactory) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *flakyFactory) ForSession(sessionID string) cart.Store {
	return flakyStore{Store: f.backend.ForSession(sessionID), factory: f}
}

type flakyStore struct {
	cart.Store
	factory *flakyFactory
}

func (s flakyStore) Save(ctx context.Context, lines []cart.Line) error {
	s.factory.mu.Lock()
	down := s.factory.down
	s.factory.mu.Unlock()
	if down {
		return errors.New("redis down")
	}
	return s.Store.Save(ctx, lines)
}

func newSessions(ttl time.Duration) (*shared.CartSessions, *flakyFactory, *clock.FixedClock) {
	factory := &flakyFactory{backend: cartstore.NewMemoryBackend()}
	clk := clock.NewFixedClock(builder.Now)
	return shared.NewCartSessions(factory, clk, ttl, testutil.DiscardLogger()), factory, clk
}

func TestCartSessions_Serialization(t *testing.T) {
	t.Run("same session is serialized", func(t *testing.T) {
		sessions, _, _ := newSessions(time.Hour)
		counter := 0

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, release := sessions.Acquire("s1")
				defer release()
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
		assert.Equal(t, 0, sessions.Pending())
	})

	t.Run("different sessions do not block each other", func(t *testing.T) {
		sessions, _, _ := newSessions(time.Hour)
		_, releaseA := sessions.Acquire("a")
		defer releaseA()

		done := make(chan struct{})
		go func() {
			_, release := sessions.Acquire("b")
			release()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("acquire on another session blocked")
		}
	})
}

func TestCartSessions_UnsavedCarts(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().WithID(7).MustBuild()

	add := func(t *testing.T, sessions *shared.CartSessions) error {
		t.Helper()
		c, release := sessions.Acquire("s1")
		defer release()
		_, err := c.AddStock(ctx, product, cart.SizeM, 1)
		return err
	}
	count := func(sessions *shared.CartSessions) int {
		c, release := sessions.Acquire("s1")
		defer release()
		return c.Count(ctx)
	}

	t.Run("a saved cart is reloaded from the store", func(t *testing.T) {
		sessions, factory, _ := newSessions(time.Hour)
		require.NoError(t, add(t, sessions))
		assert.Equal(t, 0, sessions.Pending())

		require.NoError(t, factory.backend.ForSession("s1").Save(ctx, nil))

		assert.Equal(t, 0, count(sessions))
	})

	t.Run("unsaved lines survive across requests and are saved after recovery", func(t *testing.T) {
		sessions, factory, _ := newSessions(time.Hour)
		factory.setDown(true)

		require.Error(t, add(t, sessions))
		require.Error(t, add(t, sessions))
		assert.Equal(t, 2, count(sessions))
		assert.Equal(t, 1, sessions.Pending())

		factory.setDown(false)
		c, release := sessions.Acquire("s1")
		require.NoError(t, c.Flush(ctx))
		release()

		assert.Equal(t, 0, sessions.Pending())
		stored, err := factory.backend.ForSession("s1").Load(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, 2, stored[0].Quantity)
	})

	t.Run("idle unsaved carts are evicted", func(t *testing.T) {
		sessions, factory, clk := newSessions(time.Hour)
		factory.setDown(true)
		require.Error(t, add(t, sessions))
		require.Equal(t, 1, sessions.Pending())

		clk.Advance(2 * time.Hour)

		assert.Equal(t, 0, count(sessions))
	})
}
