package usecase

import (
	"context"
	"fmt"

	"github.com/ilhamrdh/scorebase/internal/domain/country"
)

type CountryService struct {
	countryRepo country.Repository
}

func NewCountryService(countryRepo country.Repository) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

func (s *CountryService) List(ctx context.Context) ([]country.Country, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CountryService.List")
	defer span.End()

	countries, err := s.countryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}
