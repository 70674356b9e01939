package web

// maxPlainPages is the largest page count rendered without ellipses.
const maxPlainPages = 7

// PageLink is one control in the pagination bar. Ellipsis entries carry no
// page number.
type PageLink struct {
	Number   int
	URL      string
	Current  bool
	Ellipsis bool
}

// Pagination is the list page's pagination bar.
type Pagination struct {
	Page       int
	TotalPages int
	Links      []PageLink
	PrevURL    string // empty on the first page
	NextURL    string // empty on the last page
}

// pageWindow returns the page numbers to show for current out of total,
// with 0 marking an ellipsis.
func pageWindow(current, total int) []int {
	if total <= maxPlainPages {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 3:
		return []int{1, 2, 3, 4, 0, total}
	case current >= total-2:
		return []int{1, 0, total - 3, total - 2, total - 1, total}
	default:
		return []int{1, 0, current - 1, current, current + 1, 0, total}
	}
}

// newPagination builds the bar for the list view, or nil when there is
// nothing to paginate.
func newPagination(search string, page, total, totalPages int) *Pagination {
	if total <= 0 || totalPages <= 1 {
		return nil
	}

	p := &Pagination{Page: page, TotalPages: totalPages}
	for _, n := range pageWindow(page, totalPages) {
		if n == 0 {
			p.Links = append(p.Links, PageLink{Ellipsis: true})
			continue
		}
		p.Links = append(p.Links, PageLink{Number: n, URL: listURL(search, n), Current: n == page})
	}
	if page > 1 {
		p.PrevURL = listURL(search, page-1)
	}
	if page < totalPages {
		p.NextURL = listURL(search, page+1)
	}
	return p
}
