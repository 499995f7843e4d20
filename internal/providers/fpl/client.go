package fpl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/eidsvold/fpl-motw/internal/domain"
	"github.com/eidsvold/fpl-motw/internal/logging"
	"github.com/eidsvold/fpl-motw/internal/providers"
)

// Config controls how the FPL client reaches the upstream API.
type Config struct {
	BaseURL   string
	UserAgent string
	Doer      providers.HTTPDoer
	MaxPages  int
	Workers   int
}

// Client fetches classic-league standings and per-entry gameweek histories
// from the Fantasy Premier League API and maps them to domain models.
type Client struct {
	baseURL   string
	userAgent string
	doer      providers.HTTPDoer
	maxPages  int
	workers   int
	logger    *slog.Logger
}

// NewClient constructs an FPL client with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   normalizeBaseURL(cfg.BaseURL),
		userAgent: resolveUserAgent(cfg.UserAgent),
		doer:      resolveDoer(cfg.Doer),
		maxPages:  resolveMaxPages(cfg.MaxPages),
		workers:   resolveWorkers(cfg.Workers),
		logger:    logger,
	}
}

// FetchLeagueData retrieves a league's metadata, entries and full gameweek
// history. Standings pages are walked sequentially; per-entry histories are
// fetched through a bounded worker pool.
func (c *Client) FetchLeagueData(ctx context.Context, leagueID int) (domain.LeagueData, error) {
	league, rows, err := c.fetchStandings(ctx, leagueID)
	if err != nil {
		return domain.LeagueData{}, err
	}

	entries, err := mapStandings(leagueID, rows)
	if err != nil {
		return domain.LeagueData{}, err
	}

	events, err := c.fetchEvents(ctx, leagueID)
	if err != nil {
		return domain.LeagueData{}, err
	}

	records, err := c.fetchHistories(ctx, leagueID, entries, events)
	if err != nil {
		return domain.LeagueData{}, err
	}

	logging.Info(logging.FromContext(ctx, c.logger), "fetched league data",
		slog.Int(logging.FieldLeagueID, leagueID),
		slog.Int(logging.FieldCount, len(entries)),
	)

	return domain.LeagueData{
		League:  league,
		Entries: entries,
		Records: records,
	}, nil
}

// fetchStandings walks the paginated standings endpoint until has_next goes
// false. A repeated or empty page means the provider is misbehaving and
// aborts the walk rather than looping forever.
func (c *Client) fetchStandings(ctx context.Context, leagueID int) (domain.League, []standingRow, error) {
	var league domain.League
	rows := make([]standingRow, 0, 50)
	seen := make(map[int]struct{})

	page := 1
	for {
		if page > c.maxPages {
			return domain.League{}, nil, errors.Mark(
				errors.Newf("league %d: standings exceeded %d pages", leagueID, c.maxPages),
				providers.ErrProviderDataInvalid,
			)
		}

		query := url.Values{}
		query.Set("page_standings", strconv.Itoa(page))
		query.Set("phase", "1")

		var payload standingsResponse
		err := c.getJSON(ctx, fmt.Sprintf("/leagues-classic/%d/standings/", leagueID), query, &payload)
		if err != nil {
			if errors.Is(err, errStatusNotFound) {
				return domain.League{}, nil, errors.Mark(
					errors.Newf("league %d does not exist", leagueID),
					providers.ErrNotFound,
				)
			}
			return domain.League{}, nil, err
		}

		if page == 1 {
			if payload.League.Name == "" {
				return domain.League{}, nil, errors.Mark(
					errors.Newf("league %d: standings response carries no league name", leagueID),
					providers.ErrProviderDataInvalid,
				)
			}
			league = domain.League{ID: leagueID, Name: payload.League.Name}
		}

		if len(payload.Standings.Results) == 0 {
			if page == 1 && !payload.Standings.HasNext {
				// Legitimately empty league.
				break
			}
			return domain.League{}, nil, errors.Mark(
				errors.Newf("league %d: empty standings page %d", leagueID, page),
				providers.ErrProviderDataInvalid,
			)
		}

		for _, row := range payload.Standings.Results {
			if _, dup := seen[row.Entry]; dup {
				return domain.League{}, nil, errors.Mark(
					errors.Newf("league %d: entry %d repeated on standings page %d", leagueID, row.Entry, page),
					providers.ErrProviderDataInvalid,
				)
			}
			seen[row.Entry] = struct{}{}
			rows = append(rows, row)
		}

		if !payload.Standings.HasNext {
			break
		}
		page++
	}

	return league, rows, nil
}

// fetchEvents reads the bootstrap event table, which tells us which
// gameweeks exist and which of them have had their bonus points settled.
func (c *Client) fetchEvents(ctx context.Context, leagueID int) (eventTable, error) {
	var payload bootstrapResponse
	if err := c.getJSON(ctx, "/bootstrap-static/", nil, &payload); err != nil {
		if errors.Is(err, errStatusNotFound) {
			return eventTable{}, errors.Mark(
				errors.Newf("league %d: bootstrap endpoint missing", leagueID),
				providers.ErrProviderDataInvalid,
			)
		}
		return eventTable{}, err
	}
	return buildEventTable(leagueID, payload.Events)
}

// fetchHistories retrieves every entry's gameweek history concurrently via a
// bounded worker pool. The first failure cancels the remaining fetches.
func (c *Client) fetchHistories(ctx context.Context, leagueID int, entries []domain.Entry, events eventTable) ([]domain.GameweekRecord, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(c.workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	perEntry := make([][]domain.GameweekRecord, len(entries))

	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, entry := range entries {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			records, err := c.fetchEntryHistory(ctx, leagueID, entry, events)
			if err != nil {
				fail(err)
				return
			}
			perEntry[i] = records
		}); err != nil {
			wg.Done()
			fail(errors.Wrap(err, "submit history fetch"))
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	total := 0
	for _, records := range perEntry {
		total += len(records)
	}
	out := make([]domain.GameweekRecord, 0, total)
	for _, records := range perEntry {
		out = append(out, records...)
	}
	return out, nil
}

func (c *Client) fetchEntryHistory(ctx context.Context, leagueID int, entry domain.Entry, events eventTable) ([]domain.GameweekRecord, error) {
	var payload historyResponse
	err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/history/", entry.ManagerID), nil, &payload)
	if err != nil {
		if errors.Is(err, errStatusNotFound) {
			// The entry came from the league's own standings, so a missing
			// history is provider inconsistency, not a missing league.
			return nil, errors.Mark(
				errors.Newf("league %d: no history for entry %d", leagueID, entry.ManagerID),
				providers.ErrProviderDataInvalid,
			)
		}
		return nil, err
	}
	return mapHistory(leagueID, entry, payload.Current, events)
}

// errStatusNotFound marks a 404 from the provider; call sites decide what a
// missing resource means for their endpoint.
var errStatusNotFound = errors.New("status 404")

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return errors.Mark(errors.Wrap(err, "read response body"), providers.ErrProviderUnavailable)
		}
		if err := sonic.Unmarshal(raw, target); err != nil {
			return errors.Mark(
				errors.Wrapf(err, "decode provider payload for %s", path),
				providers.ErrProviderDataInvalid,
			)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errStatusNotFound
	default:
		return errors.Mark(
			errors.Newf("unexpected provider status %d for %s", resp.StatusCode, path),
			providers.ErrProviderUnavailable,
		)
	}
}
