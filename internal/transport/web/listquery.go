package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

const judgmentsPath = "/judgments"

// parseListQuery maps the list page's URL parameters to its view state.
// The page is clamped to at least 1 and the page size is fixed.
func parseListQuery(v url.Values) domain.ListQuery {
	page, err := strconv.Atoi(strings.TrimSpace(v.Get("page")))
	if err != nil || page < 1 {
		page = 1
	}
	return domain.ListQuery{
		Search: strings.TrimSpace(v.Get("search")),
		Page:   page,
		Limit:  domain.DefaultPageSize,
	}
}

// listURL builds the list page URL for search and page. A blank search is
// omitted.
func listURL(search string, page int) string {
	params := url.Values{}
	if s := strings.TrimSpace(search); s != "" {
		params.Set("search", s)
	}
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	return judgmentsPath + "?" + params.Encode()
}

// sameQuery reports whether rawQuery carries exactly the parameters of the
// list URL canonical. A missing page counts as the first page.
func sameQuery(rawQuery, canonical string) bool {
	got, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	if _, ok := got["page"]; !ok {
		got.Set("page", "1")
	}
	u, err := url.Parse(canonical)
	if err != nil {
		return false
	}
	return got.Encode() == u.Query().Encode()
}
