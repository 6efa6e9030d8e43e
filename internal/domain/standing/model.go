package standing

// Detail is one raw statistic entry attached to a standing row. The upstream
// keys these ambiguously: TypeID comes from the provider's numeric catalogue,
// TypeName is a human-readable label only some schema versions include, and
// Value may be a plain number or a {home,away,...} object.
type Detail struct {
	TypeID   int64
	TypeName string
	Value    any
}

// Metrics is the reconciled canonical record for one team. The first six
// fields default to zero when unresolvable; CleanSheets and FailedToScore
// stay nil because their absence is meaningful.
type Metrics struct {
	Played        int
	Won           int
	Draw          int
	Lost          int
	GoalsFor      int
	GoalsAgainst  int
	CleanSheets   *int
	FailedToScore *int
}

// Qualification tags a row with its competition outcome (promotion,
// continental qualification, relegation).
type Qualification struct {
	Type  string `json:"type,omitempty"`
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// Row is one team's canonical line within a table.
type Row struct {
	Position       int            `json:"position"`
	TeamID         int64          `json:"team_id"`
	TeamName       string         `json:"team_name"`
	TeamLogoPath   string         `json:"team_logo_path,omitempty"`
	Points         int            `json:"points"`
	Played         int            `json:"played"`
	Won            int            `json:"won"`
	Draw           int            `json:"draw"`
	Lost           int            `json:"lost"`
	GoalsFor       int            `json:"goals_for"`
	GoalsAgainst   int            `json:"goals_against"`
	GoalDifference int            `json:"goal_difference"`
	Form           string         `json:"form,omitempty"`
	CurrentStreak  string         `json:"current_streak,omitempty"`
	CleanSheets    *int           `json:"clean_sheets,omitempty"`
	FailedToScore  *int           `json:"failed_to_score,omitempty"`
	Qualification  *Qualification `json:"qualification_status,omitempty"`
}

// Table is a named grouping of rows, e.g. "Overall" or a group-stage pool.
type Table struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	Standings []Row  `json:"standings"`
}

// Data is the per-season container built fresh on every request.
type Data struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type,omitempty"`
	LeagueID  int64   `json:"league_id"`
	SeasonID  int64   `json:"season_id"`
	StageID   int64   `json:"stage_id,omitempty"`
	StageName string  `json:"stage_name,omitempty"`
	Standings []Table `json:"standings"`
}
