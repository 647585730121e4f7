// Package geocoding implements the address autocomplete proxy against Geoapify,
// with Nominatim as a fallback provider.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"monstermap/config"
	"monstermap/internal/domain/entity"
	"monstermap/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

const (
	defaultGeoapifyURL  = "https://api.geoapify.com/v1/geocode/autocomplete"
	defaultNominatimURL = "https://nominatim.openstreetmap.org/search"

	suggestionLimit = 5
	minQueryLength  = 2

	requestTimeout = 10 * time.Second

	// Nominatim usage policy requires an identifying User-Agent.
	userAgent = "monstermap"
)

// geoapifyService implements service.GeocodingService. Results are memoized in
// a bounded TTL cache owned by the service, keyed by the raw query string.
type geoapifyService struct {
	client       *http.Client
	apiKey       string
	geoapifyURL  string
	nominatimURL string
	cache        *expirable.LRU[string, []entity.AddressSuggestion]
}

// NewGeocodingService is the constructor for geoapifyService.
func NewGeocodingService(cfg *config.Config) (service.GeocodingService, error) {
	if cfg.Geocoding == nil || cfg.Geocoding.GeoapifyKey == "" {
		return nil, errors.New("geoapify api key must be provided")
	}

	return &geoapifyService{
		client:       &http.Client{Timeout: requestTimeout},
		apiKey:       cfg.Geocoding.GeoapifyKey,
		geoapifyURL:  defaultGeoapifyURL,
		nominatimURL: defaultNominatimURL,
		cache: expirable.NewLRU[string, []entity.AddressSuggestion](
			cfg.Geocoding.CacheSize, nil, cfg.Geocoding.CacheTTL),
	}, nil
}

// Autocomplete returns up to five address suggestions for a partial query.
func (s *geoapifyService) Autocomplete(ctx context.Context, query string) ([]entity.AddressSuggestion, error) {
	if utf8.RuneCountInString(query) < minQueryLength {
		return []entity.AddressSuggestion{}, nil
	}

	if cached, ok := s.cache.Get(query); ok {
		return cached, nil
	}

	suggestions, err := s.queryGeoapify(ctx, query)
	if err != nil {
		// Geoapify being down should not take autocomplete with it.
		suggestions, err = s.queryNominatim(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	s.cache.Add(query, suggestions)

	return suggestions, nil
}

type geoapifyResult struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 string  `json:"address_line2"`
}

type geoapifyResponse struct {
	Results []geoapifyResult `json:"results"`
}

func (s *geoapifyService) queryGeoapify(ctx context.Context, query string) ([]entity.AddressSuggestion, error) {
	params := url.Values{}
	params.Set("text", query)
	params.Set("limit", strconv.Itoa(suggestionLimit))
	params.Set("format", "json")
	params.Set("apiKey", s.apiKey)

	var parsed geoapifyResponse
	if err := s.getJSON(ctx, s.geoapifyURL+"?"+params.Encode(), &parsed); err != nil {
		return nil, err
	}

	suggestions := make([]entity.AddressSuggestion, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		suggestions = append(suggestions, entity.AddressSuggestion{
			Address: formatGeoapifyAddress(result),
			Lat:     result.Lat,
			Lng:     result.Lon,
		})
	}

	return suggestions, nil
}

func formatGeoapifyAddress(result geoapifyResult) string {
	if result.AddressLine1 == "" {
		return result.AddressLine2
	}
	if result.AddressLine2 == "" {
		return result.AddressLine1
	}

	return result.AddressLine1 + ", " + result.AddressLine2
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (s *geoapifyService) queryNominatim(ctx context.Context, query string) ([]entity.AddressSuggestion, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(suggestionLimit))

	var parsed []nominatimResult
	if err := s.getJSON(ctx, s.nominatimURL+"?"+params.Encode(), &parsed); err != nil {
		return nil, err
	}

	suggestions := make([]entity.AddressSuggestion, 0, len(parsed))
	for _, result := range parsed {
		lat, latErr := strconv.ParseFloat(result.Lat, 64)
		lng, lngErr := strconv.ParseFloat(result.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}

		suggestions = append(suggestions, entity.AddressSuggestion{
			Address: result.DisplayName,
			Lat:     lat,
			Lng:     lng,
		})
	}

	return suggestions, nil
}

func (s *geoapifyService) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build geocoding request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode geocoding response")
	}

	return nil
}
