package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// Endpoints of the news providers.
const (
	NewsAPIHeadlinesEndpoint  = "https://newsapi.org/v2/top-headlines"
	NewsAPIEverythingEndpoint = "https://newsapi.org/v2/everything"
	GNewsSearchEndpoint       = "https://gnews.io/api/v4/search"
)

// NewsFacade retrieves headline facts for a topic from NewsAPI, with GNews
// as a supplement. It is best-effort throughout: any failure or missing
// credentials yields an empty bundle, never an error the workflow has to
// handle.
type NewsFacade struct {
	client         *http.Client
	newsAPIKey     string
	gnewsAPIKey    string
	headlinesURL   string
	everythingURL  string
	gnewsSearchURL string
}

// NewNewsFacade creates a facade against the real provider endpoints.
func NewNewsFacade(newsAPIKey, gnewsAPIKey string) *NewsFacade {
	return &NewsFacade{
		client:         &http.Client{Timeout: 5 * time.Second},
		newsAPIKey:     newsAPIKey,
		gnewsAPIKey:    gnewsAPIKey,
		headlinesURL:   NewsAPIHeadlinesEndpoint,
		everythingURL:  NewsAPIEverythingEndpoint,
		gnewsSearchURL: GNewsSearchEndpoint,
	}
}

// NewNewsFacadeWithEndpoints creates a facade against custom endpoints, used by tests.
func NewNewsFacadeWithEndpoints(newsAPIKey, gnewsAPIKey, headlinesURL, everythingURL, gnewsURL string) *NewsFacade {
	f := NewNewsFacade(newsAPIKey, gnewsAPIKey)
	f.headlinesURL = headlinesURL
	f.everythingURL = everythingURL
	f.gnewsSearchURL = gnewsURL
	return f
}

// countryFor maps a target region to a provider country filter.
// Empty means a global search.
func countryFor(region, userCountry string) string {
	switch {
	case strings.Contains(region, "Local"):
		return strings.ToLower(userCountry)
	case strings.Contains(region, "North America"):
		return "us"
	case strings.Contains(region, "Europe"):
		return "gb"
	default:
		return ""
	}
}

type newsAPIResponse struct {
	TotalResults int `json:"totalResults"`
	Articles     []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

type gnewsResponse struct {
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Enrich fetches headline facts for the topic, scoped to the target region.
// Without credentials it returns an empty bundle immediately.
func (f *NewsFacade) Enrich(ctx context.Context, topic, region, userCountry string) models.ContextBundle {
	var bundle models.ContextBundle

	if f.newsAPIKey == "" && f.gnewsAPIKey == "" {
		return bundle
	}

	country := countryFor(region, userCountry)

	if f.newsAPIKey != "" {
		f.fetchNewsAPI(ctx, topic, country, &bundle)
	}

	// GNews supplements when the primary provider returned too little
	if f.gnewsAPIKey != "" && len(bundle.Facts) < 2 {
		f.fetchGNews(ctx, topic, country, &bundle)
	}

	return bundle
}

func (f *NewsFacade) fetchNewsAPI(ctx context.Context, topic, country string, bundle *models.ContextBundle) {
	var resp newsAPIResponse
	if country != "" {
		q := url.Values{"q": {topic}, "country": {country}, "apiKey": {f.newsAPIKey}}
		err := f.getJSON(ctx, f.headlinesURL+"?"+q.Encode(), &resp)
		if err == nil && resp.TotalResults > 0 {
			appendNewsArticles(resp, bundle)
			return
		}
		// Strict country search failed or came back empty, widen to everything
	}

	q := url.Values{"q": {topic}, "language": {"en"}, "sortBy": {"relevancy"}, "apiKey": {f.newsAPIKey}}
	if err := f.getJSON(ctx, f.everythingURL+"?"+q.Encode(), &resp); err != nil {
		logger.Log.Warnw("NewsAPI request failed", "topic", topic, "error", err)
		return
	}
	appendNewsArticles(resp, bundle)
}

func appendNewsArticles(resp newsAPIResponse, bundle *models.ContextBundle) {
	for i, a := range resp.Articles {
		if i >= 4 {
			break
		}
		bundle.Facts = append(bundle.Facts, fmt.Sprintf("- %s (%s)", a.Title, a.Source.Name))
		if a.URL != "" {
			bundle.Sources = append(bundle.Sources, models.SourceLink{Title: a.Title, URL: a.URL})
		}
	}
}

func (f *NewsFacade) fetchGNews(ctx context.Context, topic, country string, bundle *models.ContextBundle) {
	q := url.Values{"q": {topic}, "lang": {"en"}, "max": {"3"}, "apikey": {f.gnewsAPIKey}}
	if country != "" {
		q.Set("country", country)
	}

	var resp gnewsResponse
	if err := f.getJSON(ctx, f.gnewsSearchURL+"?"+q.Encode(), &resp); err != nil {
		logger.Log.Warnw("GNews request failed", "topic", topic, "error", err)
		return
	}

	for i, a := range resp.Articles {
		if i >= 3 {
			break
		}
		bundle.Facts = append(bundle.Facts, fmt.Sprintf("- %s (%s)", a.Title, a.Source.Name))
		if a.URL != "" {
			bundle.Sources = append(bundle.Sources, models.SourceLink{Title: a.Title, URL: a.URL})
		}
	}
}

func (f *NewsFacade) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
