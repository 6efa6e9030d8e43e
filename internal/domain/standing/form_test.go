package standing

import "testing"

func TestFormatForm_SortedEntries(t *testing.T) {
	t.Parallel()

	raw := []any{
		map[string]any{"form": "W", "sort_order": float64(3)},
		map[string]any{"form": "L", "sort_order": float64(1)},
		map[string]any{"form": "D", "sort_order": float64(2)},
	}

	if got := FormatForm(raw); got != "LDW" {
		t.Fatalf("FormatForm = %q, want LDW", got)
	}
}

func TestFormatForm_SortedEntriesKeepLastFive(t *testing.T) {
	t.Parallel()

	raw := []any{
		map[string]any{"form": "w", "sort_order": float64(1)},
		map[string]any{"form": "w", "sort_order": float64(2)},
		map[string]any{"form": "d", "sort_order": float64(3)},
		map[string]any{"form": "l", "sort_order": float64(4)},
		map[string]any{"form": "w", "sort_order": float64(5)},
		map[string]any{"form": "d", "sort_order": float64(6)},
		map[string]any{"form": "l", "sort_order": float64(7)},
	}

	if got := FormatForm(raw); got != "DLWDL" {
		t.Fatalf("FormatForm = %q, want DLWDL", got)
	}
}

func TestFormatForm_StringPassThrough(t *testing.T) {
	t.Parallel()

	if got := FormatForm(" wdlWD "); got != "WDLWD" {
		t.Fatalf("FormatForm = %q, want WDLWD", got)
	}
}

func TestFormatForm_UnorderedNewestFirst(t *testing.T) {
	t.Parallel()

	// Without explicit ordering the input is assumed newest-first, so the
	// output is reversed to read oldest to newest.
	raw := []any{
		map[string]any{"result": "win"},
		map[string]any{"outcome": "loss"},
		"draw",
		map[string]any{"result": "abandoned"},
	}

	if got := FormatForm(raw); got != "-DLW" {
		t.Fatalf("FormatForm = %q, want -DLW", got)
	}
}

func TestFormatForm_Unextractable(t *testing.T) {
	t.Parallel()

	inputs := []any{nil, 42, []any{}, []any{map[string]any{"noise": true}}, map[string]any{}}
	for _, raw := range inputs {
		if got := FormatForm(raw); got != "" {
			t.Fatalf("FormatForm(%v) = %q, want empty", raw, got)
		}
	}
}

func TestFormatForm_NestedDataEnvelope(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"data": []any{
		map[string]any{"form": "W", "sort_order": float64(2)},
		map[string]any{"form": "D", "sort_order": float64(1)},
	}}

	if got := FormatForm(raw); got != "DW" {
		t.Fatalf("FormatForm = %q, want DW", got)
	}
}
