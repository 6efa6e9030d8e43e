package httpapi

import (
	"errors"
	"testing"
	"time"

	"github.com/ilhamrdh/scorebase/internal/usecase"
)

func TestParseInt64CSV(t *testing.T) {
	got, err := parseInt64CSV(" 8, 564 ,82", "league_ids")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 8 || got[1] != 564 || got[2] != 82 {
		t.Fatalf("unexpected ids: %v", got)
	}

	if _, err := parseInt64CSV("8,abc", "league_ids"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := parseInt64CSV("0", "league_ids"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-positive id, got %v", err)
	}

	got, err = parseInt64CSV("", "league_ids")
	if err != nil || got != nil {
		t.Fatalf("expected nil ids for empty input, got %v err=%v", got, err)
	}
}

func TestParseTimeParam(t *testing.T) {
	got, err := parseTimeParam("2026-03-01T15:00:00Z", "date_from")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.March, 1, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time: %v", got)
	}

	got, err = parseTimeParam("2026-03-01", "date_from")
	if err != nil {
		t.Fatalf("unexpected error for date-only form: %v", err)
	}
	if got.Hour() != 0 || got.Day() != 1 {
		t.Fatalf("unexpected date-only time: %v", got)
	}

	if _, err := parseTimeParam("March 1st", "date_from"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseBoolParam(t *testing.T) {
	got, err := parseBoolParam("true", "only_featured")
	if err != nil || !got {
		t.Fatalf("expected true, got %v err=%v", got, err)
	}

	got, err = parseBoolParam("", "only_featured")
	if err != nil || got {
		t.Fatalf("expected false for empty input, got %v err=%v", got, err)
	}

	if _, err := parseBoolParam("yes please", "only_featured"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
