package usecase

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageLinks are client navigation URLs for a paginated listing.
type PageLinks struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// paramDefaults lists query parameters that are dropped from built links
// when they hold their default value, keeping URLs minimal.
var paramDefaults = map[string]string{
	"page":          strconv.Itoa(DefaultPage),
	"limit":         strconv.Itoa(DefaultLimit),
	"sort":          "priority",
	"only_featured": "false",
}

// BuildPageLinks re-serializes the active query parameters with the page
// value swapped out. total and limit determine the last page; a zero-row
// result still links to page 1 so clients always get a valid URL.
func BuildPageLinks(path string, params url.Values, page, limit int, total int64) PageLinks {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}

	lastPage := int((total + int64(limit) - 1) / int64(limit))
	if lastPage < 1 {
		lastPage = 1
	}

	links := PageLinks{
		First: pageURL(path, params, 1),
		Last:  pageURL(path, params, lastPage),
	}
	if page < lastPage {
		links.Next = pageURL(path, params, page+1)
	}
	if page > 1 {
		prev := page - 1
		if prev > lastPage {
			prev = lastPage
		}
		links.Previous = pageURL(path, params, prev)
	}
	return links
}

func pageURL(path string, params url.Values, page int) string {
	out := url.Values{}
	for key, values := range params {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		if value == "" || paramDefaults[key] == value {
			continue
		}
		out.Set(key, value)
	}

	if page == DefaultPage {
		out.Del("page")
	} else {
		out.Set("page", strconv.Itoa(page))
	}

	encoded := out.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
