package standing

// Raw season payloads arrive in one of two shapes: a flat array of standing
// rows, or a nested array of named tables each wrapping its own rows. The
// shape is sniffed once per season and dispatched to a shape-specific
// normalizer; both funnel into the same row builder.

type rawShape int

const (
	shapeUnknown rawShape = iota
	shapeFlatRows
	shapeNestedTables
)

// TransformSeasons converts raw per-season standings payloads into canonical
// season data keyed by season ID. Seasons that yield zero rows are omitted.
// Rows missing a resolvable team identifier are kept with TeamID zero:
// callers may need to know the row existed.
func TransformSeasons(raw any) map[int64]Data {
	payloads := seasonPayloads(raw)
	out := make(map[int64]Data, len(payloads))

	for _, payload := range payloads {
		seasonID := getInt64(payload, "season_id")
		if seasonID == 0 {
			seasonID = getInt64(payload, "id")
		}
		if seasonID == 0 {
			continue
		}

		data := Data{
			ID:        getInt64(payload, "id"),
			Name:      getString(payload, "name"),
			Type:      getString(payload, "type"),
			LeagueID:  getInt64(payload, "league_id"),
			SeasonID:  seasonID,
			StageID:   getInt64(payload, "stage_id"),
			StageName: getStringAny(payload, "stage_name", "stage"),
			Standings: transformTables(payload["standings"]),
		}

		if countRows(data.Standings) == 0 {
			continue
		}
		out[seasonID] = data
	}

	return out
}

func seasonPayloads(raw any) []map[string]any {
	switch typed := raw.(type) {
	case nil:
		return nil
	case []map[string]any:
		return typed
	case map[string]any:
		if nested, ok := typed["data"]; ok {
			if list := relationList(nested); list != nil {
				return mapSlice(list)
			}
		}
		return []map[string]any{typed}
	case []any:
		return mapSlice(typed)
	default:
		return nil
	}
}

func mapSlice(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if entry, ok := item.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}

func transformTables(raw any) []Table {
	items := relationList(raw)
	if len(items) == 0 {
		return nil
	}

	switch sniffShape(items) {
	case shapeFlatRows:
		rows := transformRows(items)
		if len(rows) == 0 {
			return nil
		}
		return []Table{{Name: "Overall", Standings: rows}}
	case shapeNestedTables:
		tables := make([]Table, 0, len(items))
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			rows := transformRows(relationList(entry["standings"]))
			if len(rows) == 0 {
				continue
			}
			tables = append(tables, Table{
				ID:        getInt64(entry, "id"),
				Name:      firstNonEmpty(getString(entry, "name"), "Overall"),
				Type:      getString(entry, "type"),
				Standings: rows,
			})
		}
		return tables
	default:
		return nil
	}
}

// sniffShape inspects the first object element: a nested "standings"
// relation marks the grouped-table shape, a participant reference or details
// array marks the flat-row shape.
func sniffShape(items []any) rawShape {
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if relationList(entry["standings"]) != nil {
			return shapeNestedTables
		}
		if _, ok := entry["participant_id"]; ok {
			return shapeFlatRows
		}
		if _, ok := entry["team_id"]; ok {
			return shapeFlatRows
		}
		if _, ok := entry["details"]; ok {
			return shapeFlatRows
		}
		if _, ok := entry["position"]; ok {
			return shapeFlatRows
		}
		return shapeUnknown
	}
	return shapeUnknown
}

func transformRows(items []any) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if row, ok := buildRow(entry); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// buildRow normalizes one raw standing row. Direct row fields form the
// baseline and reconciled details take precedence, since the detail entries
// are the provider's statement of record.
func buildRow(entry map[string]any) (Row, bool) {
	participant := relationData(entry["participant"])

	teamID := getInt64(entry, "participant_id")
	if teamID == 0 {
		teamID = getInt64(entry, "team_id")
	}
	if teamID == 0 {
		teamID = getInt64(participant, "id")
	}

	position := getInt(entry, "position")
	if position == 0 {
		position = getInt(entry, "rank")
	}

	row := Row{
		Position:     position,
		TeamID:       teamID,
		TeamName:     firstNonEmpty(getString(participant, "name"), getStringAny(entry, "team_name", "participant_name")),
		TeamLogoPath: firstNonEmpty(getString(participant, "image_path"), getString(entry, "team_logo_path")),
		Points:       getInt(entry, "points"),
		Played:       getIntAny(entry, "played", "matches_played", "games_played"),
		Won:          getIntAny(entry, "won", "wins"),
		Draw:         getIntAny(entry, "draw", "draws", "drawn"),
		Lost:         getIntAny(entry, "lost", "loss", "losses"),
		GoalsFor:     getIntAny(entry, "goals_for", "goals_scored"),
		GoalsAgainst: getIntAny(entry, "goals_against", "goals_conceded"),
	}

	if details := DetailsFromRaw(entry["details"]); len(details) > 0 {
		applyMetrics(&row, ReconcileDetails(details))
	}

	total := row.Won + row.Draw + row.Lost
	if row.Played == 0 && total > 0 {
		row.Played = total
	}
	row.GoalDifference = row.GoalsFor - row.GoalsAgainst

	row.Form = FormatForm(entry["form"])
	row.CurrentStreak = getStringAny(entry, "current_streak", "streak")
	row.Qualification = buildQualification(entry)

	if !validRow(row) {
		return Row{}, false
	}
	return row, true
}

func applyMetrics(row *Row, metrics Metrics) {
	if metrics.Played > 0 {
		row.Played = metrics.Played
	}
	if metrics.Won > 0 {
		row.Won = metrics.Won
	}
	if metrics.Draw > 0 {
		row.Draw = metrics.Draw
	}
	if metrics.Lost > 0 {
		row.Lost = metrics.Lost
	}
	if metrics.GoalsFor > 0 {
		row.GoalsFor = metrics.GoalsFor
	}
	if metrics.GoalsAgainst > 0 {
		row.GoalsAgainst = metrics.GoalsAgainst
	}
	row.CleanSheets = metrics.CleanSheets
	row.FailedToScore = metrics.FailedToScore
}

func buildQualification(entry map[string]any) *Qualification {
	rule := relationData(entry["rule"])
	if rule == nil {
		rule = relationData(entry["qualification"])
	}
	if rule == nil {
		return nil
	}

	typeInfo := relationData(rule["type"])
	out := Qualification{
		Type:  firstNonEmpty(getString(typeInfo, "developer_name"), getString(rule, "type")),
		Name:  firstNonEmpty(getString(typeInfo, "name"), getString(rule, "name")),
		Color: getStringAny(rule, "color", "colour"),
	}
	if out.Type == "" && out.Name == "" {
		return nil
	}
	return &out
}

// validRow keeps anything carrying a signal: an identified team, a table
// position, or at least one nonzero statistic. A missing team ID alone never
// disqualifies a row.
func validRow(row Row) bool {
	if row.TeamID > 0 || row.Position > 0 || row.TeamName != "" {
		return true
	}
	return row.Points != 0 || row.Played != 0 || row.Won != 0 || row.Draw != 0 ||
		row.Lost != 0 || row.GoalsFor != 0 || row.GoalsAgainst != 0
}

func countRows(tables []Table) int {
	total := 0
	for _, table := range tables {
		total += len(table.Standings)
	}
	return total
}
