package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"monstermap/internal/domain/entity"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(geoapifyURL, nominatimURL string) *geoapifyService {
	return &geoapifyService{
		client:       &http.Client{Timeout: time.Second},
		apiKey:       "test-key",
		geoapifyURL:  geoapifyURL,
		nominatimURL: nominatimURL,
		cache:        expirable.NewLRU[string, []entity.AddressSuggestion](16, nil, time.Hour),
	}
}

func TestAutocomplete_ShortQueryReturnsEmpty(t *testing.T) {
	svc := newTestService("http://invalid.test", "http://invalid.test")

	suggestions, err := svc.Autocomplete(context.Background(), "a")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestAutocomplete_ParsesGeoapifyResults(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Main", r.URL.Query().Get("text"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"lat":52.0,"lon":4.0,"address_line1":"1 Main St","address_line2":"The Hague"},
			{"lat":52.1,"lon":4.1,"address_line1":"","address_line2":"Main Square"}
		]}`))
	}))
	defer upstream.Close()

	svc := newTestService(upstream.URL, "http://invalid.test")

	suggestions, err := svc.Autocomplete(context.Background(), "Main")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, entity.AddressSuggestion{Address: "1 Main St, The Hague", Lat: 52.0, Lng: 4.0}, suggestions[0])
	assert.Equal(t, "Main Square", suggestions[1].Address)
}

func TestAutocomplete_CachesPerQuery(t *testing.T) {
	var calls atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"lat":1,"lon":2,"address_line1":"Somewhere"}]}`))
	}))
	defer upstream.Close()

	svc := newTestService(upstream.URL, "http://invalid.test")

	for range 3 {
		suggestions, err := svc.Autocomplete(context.Background(), "Somewhere")
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
	}

	assert.Equal(t, int64(1), calls.Load())
}

func TestAutocomplete_FallsBackToNominatim(t *testing.T) {
	geoapify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer geoapify.Close()

	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"display_name":"1 Main St, The Hague","lat":"52.0","lon":"4.0"}]`))
	}))
	defer nominatim.Close()

	svc := newTestService(geoapify.URL, nominatim.URL)

	suggestions, err := svc.Autocomplete(context.Background(), "Main")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, entity.AddressSuggestion{Address: "1 Main St, The Hague", Lat: 52.0, Lng: 4.0}, suggestions[0])
}

func TestAutocomplete_BothProvidersDown(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()

	svc := newTestService(failing.URL, failing.URL)

	suggestions, err := svc.Autocomplete(context.Background(), "Main")
	assert.Error(t, err)
	assert.Nil(t, suggestions)
}
