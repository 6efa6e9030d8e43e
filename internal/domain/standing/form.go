package standing

import (
	"sort"
	"strings"
)

const formMaxLength = 5

// FormatForm normalizes the provider's recent-results payload into a string
// of W/D/L characters ordered oldest to newest. The input can be a
// pre-formatted string, an array of {form, sort_order} entries, or a
// generically shaped array of results. It never panics; an empty string
// means no form data was extractable.
func FormatForm(raw any) string {
	switch typed := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.ToUpper(strings.TrimSpace(typed))
	case map[string]any:
		if nested, ok := typed["data"]; ok {
			return FormatForm(nested)
		}
		return strings.ToUpper(getStringAny(typed, "form", "result", "value"))
	case []any:
		if out := formFromOrderedEntries(typed); out != "" {
			return out
		}
		return formFromUnorderedEntries(typed)
	default:
		return ""
	}
}

type orderedFormEntry struct {
	form  string
	order int64
}

// formFromOrderedEntries handles the schema that carries explicit sort
// orders: sort ascending, keep the trailing window, left is oldest.
func formFromOrderedEntries(items []any) string {
	entries := make([]orderedFormEntry, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		form := getString(entry, "form")
		if form == "" {
			continue
		}
		if _, hasOrder := entry["sort_order"]; !hasOrder {
			return ""
		}
		entries = append(entries, orderedFormEntry{
			form:  form,
			order: getInt64(entry, "sort_order"),
		})
	}
	if len(entries) == 0 {
		return ""
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].order < entries[j].order })
	if len(entries) > formMaxLength {
		entries = entries[len(entries)-formMaxLength:]
	}

	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(strings.ToUpper(entry.form))
	}
	return b.String()
}

// formFromUnorderedEntries is the best-effort path for arrays without
// explicit ordering. These are assumed newest-first, so the classified
// results are reversed to keep the most recent match rightmost.
func formFromUnorderedEntries(items []any) string {
	results := make([]byte, 0, formMaxLength)
	for _, item := range items {
		if len(results) == formMaxLength {
			break
		}
		switch typed := item.(type) {
		case string:
			results = append(results, classifyResult(typed))
		case map[string]any:
			value := getStringAny(typed, "result", "outcome", "form")
			if value == "" {
				continue
			}
			results = append(results, classifyResult(value))
		}
	}
	if len(results) == 0 {
		return ""
	}

	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return string(results)
}

func classifyResult(raw string) byte {
	switch value := strings.ToLower(strings.TrimSpace(raw)); value {
	case "w", "win", "won", "victory":
		return 'W'
	case "d", "draw", "drawn", "tie", "tied":
		return 'D'
	case "l", "loss", "lost", "defeat":
		return 'L'
	default:
		switch {
		case strings.HasPrefix(value, "win"):
			return 'W'
		case strings.HasPrefix(value, "draw") || strings.HasPrefix(value, "tie"):
			return 'D'
		case strings.HasPrefix(value, "los") || strings.HasPrefix(value, "defeat"):
			return 'L'
		default:
			return '-'
		}
	}
}
