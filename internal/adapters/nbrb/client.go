package nbrb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nbrates/internal/domain"

	"github.com/shopspring/decimal"
)

// apiTimeLayout is the zoneless timestamp format NB RB responds with,
// e.g. "2024-01-03T00:00:00". Parsed as UTC.
const apiTimeLayout = "2006-01-02T15:04:05"

type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type currencyResponse struct {
	CurID           int    `json:"Cur_ID"`
	CurAbbreviation string `json:"Cur_Abbreviation"`
}

type ratePointResponse struct {
	CurID           int             `json:"Cur_ID"`
	Date            apiTime         `json:"Date"`
	CurOfficialRate decimal.Decimal `json:"Cur_OfficialRate"`
}

type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(apiTimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("unexpected date format %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// LookupCurrencyID resolves a currency code to the NB RB numeric id via
// GET /exrates/rates/{code}?parammode=2. A 404 means the code is unknown
// to the bank; everything else is a source failure.
func (c *Client) LookupCurrencyID(ctx context.Context, code string) (int, error) {
	u, err := url.Parse(c.baseURL + "/exrates/rates/" + url.PathEscape(code))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse base URL: %w", domain.ErrSourceUnavailable, err)
	}
	u.RawQuery = url.Values{"parammode": {"2"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request for currency %q: %w", domain.ErrSourceUnavailable, code, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request for currency %q: %w", domain.ErrSourceUnavailable, code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, domain.ErrUnknownCurrency
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: unexpected status code %d for currency %q", domain.ErrSourceUnavailable, resp.StatusCode, code)
	}

	var body currencyResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response for currency %q: %w", domain.ErrSourceUnavailable, code, err)
	}
	return body.CurID, nil
}

// FetchDailyRates loads the official rate series for a currency id over
// [start, end] via GET /exrates/rates/dynamics/{id}. A JSON null body is a
// source failure; an empty array is a valid empty series.
func (c *Client) FetchDailyRates(ctx context.Context, currencyID int, start, end time.Time) ([]domain.RatePoint, error) {
	u, err := url.Parse(c.baseURL + "/exrates/rates/dynamics/" + strconv.Itoa(currencyID))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse base URL: %w", domain.ErrSourceUnavailable, err)
	}
	u.RawQuery = url.Values{
		"startdate": {start.UTC().Format(apiTimeLayout)},
		"enddate":   {end.UTC().Format(apiTimeLayout)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request for currency id %d: %w", domain.ErrSourceUnavailable, currencyID, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request for currency id %d: %w", domain.ErrSourceUnavailable, currencyID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d for currency id %d", domain.ErrSourceUnavailable, resp.StatusCode, currencyID)
	}

	var body []ratePointResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode series for currency id %d: %w", domain.ErrSourceUnavailable, currencyID, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: source returned null series for currency id %d", domain.ErrSourceUnavailable, currencyID)
	}

	points := make([]domain.RatePoint, 0, len(body))
	for _, p := range body {
		points = append(points, domain.RatePoint{Date: p.Date.Time, Rate: p.CurOfficialRate})
	}
	return points, nil
}
