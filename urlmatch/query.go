package urlmatch

import (
	"net/url"
	"strings"
)

// QueryItem is a single key/value pair from a query string.
type QueryItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// QueryParameters returns the query parameters of loc as a map.
// Components without '=' are dropped and values are percent-decoded when
// possible. A repeated key keeps its last value; use QueryItems to see
// every occurrence. The returned map is never nil.
func QueryParameters(loc Location) map[string]string {
	params := make(map[string]string)
	query, ok := rawQuery(loc)
	if !ok {
		return params
	}
	for _, component := range strings.Split(query, "&") {
		key, value, found := strings.Cut(component, "=")
		if !found {
			continue
		}
		params[key] = unescape(value)
	}
	return params
}

// QueryItems returns every query component of loc in order, keeping
// duplicates. Components without '=' are reported with an empty value.
// It returns nil if loc has no query or no structured URL.
func QueryItems(loc Location) []QueryItem {
	query, ok := rawQuery(loc)
	if !ok {
		return nil
	}
	items := make([]QueryItem, 0, strings.Count(query, "&")+1)
	for _, component := range strings.Split(query, "&") {
		if component == "" {
			continue
		}
		key, value, _ := strings.Cut(component, "=")
		items = append(items, QueryItem{Key: unescape(key), Value: unescape(value)})
	}
	return items
}

func rawQuery(loc Location) (string, bool) {
	if loc == nil {
		return "", false
	}
	u := loc.URL()
	if u == nil {
		return "", false
	}
	return u.RawQuery, u.RawQuery != "" || u.ForceQuery
}

func unescape(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}
