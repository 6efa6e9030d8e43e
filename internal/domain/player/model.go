package player

import "fmt"

// Player is an athlete attached to a team.
type Player struct {
	ID          int64
	TeamID      int64
	CountryID   int64
	Name        string
	CommonName  string
	DisplayName string
	Position    string
	ImagePath   string
	DateOfBirth string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" && p.DisplayName == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

// BestName prefers the display name the provider curates over raw full names.
func (p Player) BestName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.CommonName != "" {
		return p.CommonName
	}
	return p.Name
}
