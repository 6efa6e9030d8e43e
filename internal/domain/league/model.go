package league

import (
	"fmt"
	"strings"
)

// Tier buckets competitions by editorial importance. Tier1 is the most
// prestigious; TierNone marks leagues that were never classified.
type Tier string

const (
	Tier1    Tier = "tier1"
	Tier2    Tier = "tier2"
	Tier3    Tier = "tier3"
	Tier4    Tier = "tier4"
	TierNone Tier = ""
)

const (
	featuredBoost = 200
	unknownScore  = 20
)

// League is one competition tracked by the platform.
type League struct {
	ID        int64
	Name      string
	LogoPath  string
	CountryID int64
	Priority  int
	Tier      Tier
	Featured  bool
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}

// Score is the derived ranking weight used by the match query engine:
// featured boost + manual priority + tier weight.
func (l League) Score() int {
	score := l.Priority + l.Tier.Weight()
	if l.Featured {
		score += featuredBoost
	}
	return score
}

func (t Tier) Weight() int {
	switch t {
	case Tier1:
		return 100
	case Tier2:
		return 80
	case Tier3:
		return 60
	case Tier4:
		return 40
	default:
		return unknownScore
	}
}

// UnknownScore is what a match scores when its league is absent from the cache.
func UnknownScore() int {
	return unknownScore
}

func ParseTier(raw string) Tier {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tier1", "1":
		return Tier1
	case "tier2", "2":
		return Tier2
	case "tier3", "3":
		return Tier3
	case "tier4", "4":
		return Tier4
	default:
		return TierNone
	}
}
