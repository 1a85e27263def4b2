package refresh

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rashed-commits/uae-market-intel/models"
	"github.com/rashed-commits/uae-market-intel/store"
)

var testFallback = []models.Signal{
	{ID: 900, Title: "seed one", Summary: "s", Sector: "Fintech", Platform: "Reddit", Priority: models.PriorityHigh},
	{ID: 901, Title: "seed two", Summary: "s", Sector: "Retail", Platform: "News", Priority: models.PriorityLow},
}

func newController(s *store.Store, f Fetcher) *Controller {
	return NewController(s, f, testFallback, time.Minute, zerolog.Nop())
}

func TestHTTPFetcher(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    int
		wantErr bool
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"signals":[{"id":1,"title":"a","summary":"b"}],"count":1}`))
			},
			want: 1,
		},
		{
			name: "missing signals field is an empty snapshot",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"count":0}`))
			},
			want: 0,
		},
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"signals": not json`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			fetcher := NewHTTPFetcher(srv.URL, time.Second)
			signals, err := fetcher.Fetch(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, signals, tt.want)
		})
	}
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	fetcher := NewHTTPFetcher("http://127.0.0.1:1/feed", 200*time.Millisecond)
	_, err := fetcher.Fetch(context.Background())
	require.Error(t, err)
}

func TestRefreshInstallsLiveSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"signals":[{"id":1,"title":"live","summary":"x"}]}`))
	}))
	defer srv.Close()

	s := store.New()
	c := newController(s, NewHTTPFetcher(srv.URL, time.Second))

	require.NoError(t, c.Refresh(context.Background()))

	signals, mode, _ := s.Snapshot()
	require.Equal(t, store.ModeLive, mode)
	require.Len(t, signals, 1)
	require.Equal(t, "live", signals[0].Title)
}

func TestRefreshFallsBackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := store.New()
	c := newController(s, NewHTTPFetcher(srv.URL, time.Second))

	// Fallback is a recovery, not an error.
	require.NoError(t, c.Refresh(context.Background()))

	signals, mode, _ := s.Snapshot()
	require.Equal(t, store.ModeFallback, mode)
	require.Equal(t, testFallback, signals)
}

func TestRefreshRecoveryReplacesFallbackEntirely(t *testing.T) {
	var healthy bool
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ok := healthy
		mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"signals":[{"id":42,"title":"back","summary":"x"}]}`))
	}))
	defer srv.Close()

	s := store.New()
	c := newController(s, NewHTTPFetcher(srv.URL, time.Second))

	require.NoError(t, c.Refresh(context.Background()))
	_, mode, _ := s.Snapshot()
	require.Equal(t, store.ModeFallback, mode)

	mu.Lock()
	healthy = true
	mu.Unlock()

	require.NoError(t, c.Refresh(context.Background()))
	signals, mode, _ := s.Snapshot()
	require.Equal(t, store.ModeLive, mode)
	require.Len(t, signals, 1, "no merge of fallback and live records")
	require.Equal(t, 42, signals[0].ID)
}

type blockingFetcher struct {
	release chan struct{}
	started chan struct{}
}

func (f *blockingFetcher) Fetch(ctx context.Context) ([]models.Signal, error) {
	close(f.started)
	<-f.release
	return []models.Signal{}, nil
}

func TestRefreshRejectsOverlappingTrigger(t *testing.T) {
	f := &blockingFetcher{release: make(chan struct{}), started: make(chan struct{})}
	s := store.New()
	c := newController(s, f)

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()

	<-f.started
	require.ErrorIs(t, c.Refresh(context.Background()), ErrRefreshInFlight)

	close(f.release)
	require.NoError(t, <-done)

	// Once settled, a new refresh is accepted again.
	f2 := &blockingFetcher{release: make(chan struct{}), started: make(chan struct{})}
	c2 := newController(s, f2)
	go func() { close(f2.release) }()
	require.NoError(t, c2.Refresh(context.Background()))
}
