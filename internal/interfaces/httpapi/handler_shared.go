package httpapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilhamrdh/scorebase/internal/domain/country"
	"github.com/ilhamrdh/scorebase/internal/domain/match"
	"github.com/ilhamrdh/scorebase/internal/domain/player"
	"github.com/ilhamrdh/scorebase/internal/usecase"
)

type listMatchesRequest struct {
	View  string `validate:"omitempty,oneof=today live upcoming recent"`
	Page  int    `validate:"omitempty,gte=1"`
	Limit int    `validate:"omitempty,gte=1,lte=100"`
}

type listPlayersRequest struct {
	Search string `validate:"omitempty,max=120"`
	Limit  int    `validate:"omitempty,gte=1,lte=200"`
}

type listMatchesDTO struct {
	Matches []match.Summary   `json:"matches"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Links   usecase.PageLinks `json:"links"`
}

type leagueDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path,omitempty"`
	CountryID     int64  `json:"country_id,omitempty"`
	Priority      int    `json:"priority"`
	Tier          string `json:"tier,omitempty"`
	Featured      bool   `json:"featured"`
	ComputedScore int    `json:"computed_score"`
}

type countryDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ISO2      string `json:"iso2,omitempty"`
	ISO3      string `json:"iso3,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	TeamID      int64  `json:"team_id,omitempty"`
	CountryID   int64  `json:"country_id,omitempty"`
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	ImagePath   string `json:"image_path,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

func leagueToDTO(v usecase.LeagueView) leagueDTO {
	return leagueDTO{
		ID:            v.ID,
		Name:          v.Name,
		LogoPath:      v.LogoPath,
		CountryID:     v.CountryID,
		Priority:      v.Priority,
		Tier:          string(v.Tier),
		Featured:      v.Featured,
		ComputedScore: v.ComputedScore,
	}
}

func countryToDTO(v country.Country) countryDTO {
	return countryDTO{
		ID:        v.ID,
		Name:      v.Name,
		ISO2:      v.ISO2,
		ISO3:      v.ISO3,
		ImagePath: v.ImagePath,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		TeamID:      v.TeamID,
		CountryID:   v.CountryID,
		Name:        v.BestName(),
		Position:    v.Position,
		ImagePath:   v.ImagePath,
		DateOfBirth: v.DateOfBirth,
	}
}

func parseInt64CSV(raw, name string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: %s must be a comma-separated list of positive integers", usecase.ErrInvalidInput, name)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseStringCSV(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// parseTimeParam accepts RFC3339 timestamps and bare YYYY-MM-DD dates.
func parseTimeParam(raw, name string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%w: %s must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput, name)
}

func parseIntParam(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func parseBoolParam(raw, name string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func parseLeagueIDPath(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: league id must be a positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}
