package standing

import "testing"

func flatSeasonPayload() map[string]any {
	return map[string]any{
		"season_id": float64(21),
		"league_id": float64(8),
		"name":      "2024/2025",
		"standings": []any{
			map[string]any{
				"participant_id": float64(14),
				"position":       float64(1),
				"points":         float64(84),
				"participant": map[string]any{"data": map[string]any{
					"id":         float64(14),
					"name":       "Arsenal",
					"image_path": "https://cdn.example/arsenal.png",
				}},
				"details": []any{
					map[string]any{"type_id": float64(129), "value": float64(38)},
					map[string]any{"type_id": float64(130), "value": float64(26)},
					map[string]any{"type_id": float64(131), "value": float64(6)},
					map[string]any{"type_id": float64(133), "value": float64(88)},
					map[string]any{"type_id": float64(134), "value": float64(29)},
				},
				"form": []any{
					map[string]any{"form": "W", "sort_order": float64(2)},
					map[string]any{"form": "D", "sort_order": float64(1)},
				},
			},
			map[string]any{
				"position": float64(2),
				"points":   float64(70),
				"won":      float64(21),
				"draw":     float64(7),
				"lost":     float64(10),
			},
		},
	}
}

func TestTransformSeasons_FlatRows(t *testing.T) {
	t.Parallel()

	out := TransformSeasons([]any{flatSeasonPayload()})
	data, ok := out[21]
	if !ok {
		t.Fatalf("season 21 missing from output: %v", out)
	}
	if data.LeagueID != 8 {
		t.Fatalf("league id = %d", data.LeagueID)
	}
	if len(data.Standings) != 1 || data.Standings[0].Name != "Overall" {
		t.Fatalf("flat rows should produce a single Overall table: %+v", data.Standings)
	}

	rows := data.Standings[0].Standings
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.TeamID != 14 || first.TeamName != "Arsenal" {
		t.Fatalf("participant not resolved: %+v", first)
	}
	if first.Played != 38 || first.Won != 26 || first.Draw != 6 || first.Lost != 6 {
		t.Fatalf("metrics wrong: %+v", first)
	}
	if first.GoalDifference != 59 {
		t.Fatalf("goal difference = %d, want 59", first.GoalDifference)
	}
	if first.Form != "DW" {
		t.Fatalf("form = %q, want DW", first.Form)
	}

	// Row without any team reference survives with TeamID zero.
	second := rows[1]
	if second.TeamID != 0 {
		t.Fatalf("missing team id should stay zero, got %d", second.TeamID)
	}
	if second.Played != 38 || second.Points != 70 {
		t.Fatalf("direct fields not applied: %+v", second)
	}
}

func TestTransformSeasons_NestedTables(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"season_id": float64(33),
		"league_id": float64(2),
		"standings": map[string]any{"data": []any{
			map[string]any{
				"id":   float64(101),
				"name": "Group A",
				"standings": map[string]any{"data": []any{
					map[string]any{
						"team_id":  float64(7),
						"position": float64(1),
						"points":   float64(9),
						"details": []any{
							map[string]any{"type_id": float64(129), "value": float64(3)},
							map[string]any{"type_id": float64(130), "value": float64(3)},
						},
					},
				}},
			},
			map[string]any{
				"id":        float64(102),
				"name":      "Group B",
				"standings": map[string]any{"data": []any{}},
			},
		}},
	}

	out := TransformSeasons(payload)
	data, ok := out[33]
	if !ok {
		t.Fatalf("season 33 missing")
	}
	if len(data.Standings) != 1 {
		t.Fatalf("empty groups must be dropped, got %d tables", len(data.Standings))
	}

	table := data.Standings[0]
	if table.ID != 101 || table.Name != "Group A" {
		t.Fatalf("table metadata wrong: %+v", table)
	}
	row := table.Standings[0]
	if row.TeamID != 7 || row.Played != 3 || row.Won != 3 || row.Lost != 0 {
		t.Fatalf("group row wrong: %+v", row)
	}
}

func TestTransformSeasons_OmitsEmptySeasons(t *testing.T) {
	t.Parallel()

	out := TransformSeasons([]any{
		map[string]any{"season_id": float64(5), "standings": []any{}},
		map[string]any{"season_id": float64(6)},
		map[string]any{"standings": []any{map[string]any{"position": float64(1)}}},
	})

	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}

func TestTransformSeasons_QualificationRule(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"season_id": float64(9),
		"standings": []any{
			map[string]any{
				"team_id":  float64(3),
				"position": float64(1),
				"rule": map[string]any{"data": map[string]any{
					"type": map[string]any{"data": map[string]any{
						"developer_name": "CL_QUALIFICATION",
						"name":           "UEFA Champions League",
					}},
					"color": "#1E74D3",
				}},
			},
		},
	}

	out := TransformSeasons(payload)
	row := out[9].Standings[0].Standings[0]
	if row.Qualification == nil {
		t.Fatalf("qualification missing")
	}
	if row.Qualification.Type != "CL_QUALIFICATION" || row.Qualification.Color != "#1E74D3" {
		t.Fatalf("qualification wrong: %+v", row.Qualification)
	}
}
