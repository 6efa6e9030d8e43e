package sportsdata

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilhamrdh/scorebase/internal/domain/country"
	"github.com/ilhamrdh/scorebase/internal/domain/league"
	"github.com/ilhamrdh/scorebase/internal/domain/match"
	"github.com/ilhamrdh/scorebase/internal/domain/player"
)

const providerTimeLayout = "2006-01-02 15:04:05"

type countryEnvelope struct {
	Data []countryPayload `json:"data"`
}

type countryPayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ISO2      string `json:"iso2"`
	ISO3      string `json:"iso3"`
	ImagePath string `json:"image_path"`
}

type leagueEnvelope struct {
	Data []leaguePayload `json:"data"`
}

type leaguePayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"image_path"`
	CountryID int64  `json:"country_id"`
}

type fixtureEnvelope struct {
	Data []fixturePayload `json:"data"`
}

type fixturePayload struct {
	ID           int64                `json:"id"`
	LeagueID     int64                `json:"league_id"`
	SeasonID     int64                `json:"season_id"`
	StartingAt   string               `json:"starting_at"`
	Participants []participantPayload `json:"participants"`
	Scores       []scorePayload       `json:"scores"`
	State        statePayload         `json:"state"`
	Venue        venuePayload         `json:"venue"`
	HasLineups   bool                 `json:"has_lineups"`
	HasEvents    bool                 `json:"has_events"`
}

type participantPayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"image_path"`
	Meta      struct {
		Location string `json:"location"`
	} `json:"meta"`
}

type scorePayload struct {
	Description string `json:"description"`
	Score       struct {
		Participant string `json:"participant"`
		Goals       int    `json:"goals"`
	} `json:"score"`
}

type statePayload struct {
	ShortName string `json:"short_name"`
	State     string `json:"state"`
}

type venuePayload struct {
	Name string `json:"name"`
}

type playerEnvelope struct {
	Data []playerPayload `json:"data"`
}

type playerPayload struct {
	ID          int64  `json:"id"`
	TeamID      int64  `json:"team_id"`
	CountryID   int64  `json:"country_id"`
	Name        string `json:"name"`
	CommonName  string `json:"common_name"`
	DisplayName string `json:"display_name"`
	Position    string `json:"position"`
	ImagePath   string `json:"image_path"`
	DateOfBirth string `json:"date_of_birth"`
}

type rawEnvelope struct {
	Data []map[string]any `json:"data"`
}

func (c *Client) FetchCountries(ctx context.Context) ([]country.Country, error) {
	var envelope countryEnvelope
	if err := c.doJSON(ctx, "/countries", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}

	out := make([]country.Country, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		mapped := country.Country{
			ID:        item.ID,
			Name:      item.Name,
			ISO2:      item.ISO2,
			ISO3:      item.ISO3,
			ImagePath: item.ImagePath,
		}
		if mapped.Validate() != nil {
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

func (c *Client) FetchLeagues(ctx context.Context) ([]league.League, error) {
	var envelope leagueEnvelope
	if err := c.doJSON(ctx, "/leagues", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}

	// Priority, tier and featured are editorial settings owned locally;
	// the store merge keeps any existing values.
	out := make([]league.League, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		if item.ID <= 0 || item.Name == "" {
			continue
		}
		out = append(out, league.League{
			ID:        item.ID,
			Name:      item.Name,
			LogoPath:  item.ImagePath,
			CountryID: item.CountryID,
		})
	}
	return out, nil
}

func (c *Client) FetchMatchesByLeague(ctx context.Context, leagueID int64, from, to time.Time) ([]match.Match, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}

	path := fmt.Sprintf("/fixtures/between/%s/%s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	query := map[string]string{
		"include": defaultIncludeFixture,
		"filters": "fixtureLeagues:" + strconv.FormatInt(leagueID, 10),
	}

	var envelope fixtureEnvelope
	if err := c.doJSON(ctx, path, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch fixtures league_id=%d: %w", leagueID, err)
	}

	out := make([]match.Match, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		if item.ID <= 0 {
			continue
		}
		out = append(out, mapFixture(item))
	}
	return out, nil
}

func (c *Client) FetchPlayersByLeague(ctx context.Context, leagueID int64) ([]player.Player, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}

	query := map[string]string{
		"filters": "playerLeagues:" + strconv.FormatInt(leagueID, 10),
	}

	var envelope playerEnvelope
	if err := c.doJSON(ctx, "/players", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch players league_id=%d: %w", leagueID, err)
	}

	out := make([]player.Player, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		mapped := player.Player{
			ID:          item.ID,
			TeamID:      item.TeamID,
			CountryID:   item.CountryID,
			Name:        item.Name,
			CommonName:  item.CommonName,
			DisplayName: item.DisplayName,
			Position:    item.Position,
			ImagePath:   item.ImagePath,
			DateOfBirth: item.DateOfBirth,
		}
		if mapped.Validate() != nil {
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

// FetchStandingsRawByLeague returns the standings payload undecoded beyond
// generic maps. The reconciler owns interpretation of that shape, so the
// client deliberately does not model it.
func (c *Client) FetchStandingsRawByLeague(ctx context.Context, leagueID int64) ([]map[string]any, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}

	path := fmt.Sprintf("/standings/seasons/leagues/%d", leagueID)
	query := map[string]string{"include": "details.type;form"}

	var envelope rawEnvelope
	if err := c.doJSON(ctx, path, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings league_id=%d: %w", leagueID, err)
	}
	return envelope.Data, nil
}

func mapFixture(item fixturePayload) match.Match {
	mapped := match.Match{
		ID:         item.ID,
		LeagueID:   item.LeagueID,
		SeasonID:   item.SeasonID,
		State:      mapState(item.State),
		VenueName:  item.Venue.Name,
		HasLineups: item.HasLineups,
		HasEvents:  item.HasEvents,
	}
	if parsed, err := time.Parse(providerTimeLayout, item.StartingAt); err == nil {
		mapped.StartingAt = parsed.UTC()
	}

	for _, p := range item.Participants {
		mapped.Participants = append(mapped.Participants, match.Participant{
			ID:       p.ID,
			Name:     p.Name,
			LogoPath: p.ImagePath,
			Location: strings.ToLower(p.Meta.Location),
		})
	}
	for _, s := range item.Scores {
		mapped.Scores = append(mapped.Scores, match.ScoreEntry{
			Description: s.Description,
			Location:    strings.ToLower(s.Score.Participant),
			Goals:       s.Score.Goals,
		})
	}
	return mapped
}

func mapState(state statePayload) string {
	if state.ShortName != "" {
		return match.NormalizeState(state.ShortName)
	}
	return match.NormalizeState(state.State)
}
