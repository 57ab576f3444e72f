package roster

import (
	"fmt"
	"math"
)

// ChildrenPerParent is the fixed number of synthesized child rows shown
// under an expanded account.
const ChildrenPerParent = 10

// SyntheticID rewrites a parent ID into the pseudo-ID of its nth child row.
func SyntheticID(parentID, index int) int {
	return parentID*100 + index
}

// Row is one renderable line of the roster table. Synthetic rows are
// presentation-only pseudo-records derived from their parent; they do not
// correspond to service entities and are never valid mutation targets.
type Row struct {
	Account   Account
	Synthetic bool
	ParentID  int
}

// Ratio derives the inbox ratio label for an account. Accounts that have
// sent nothing show "0%" regardless of their inbox count, so an empty
// aggregate can never render as NaN or infinity.
func Ratio(a Account) string {
	if a.TotalSent == 0 || a.Inbox <= 0 {
		return "0%"
	}
	pct := int(math.Round(float64(a.Inbox) / float64(a.TotalSent) * 100))
	return fmt.Sprintf("%d%%", pct)
}

// Composer owns the view state of the roster screen (search query, page
// state and expansion set) and derives the exact ordered row sequence to
// render. Composition order is fixed: filter, clamp page, slice the visible
// page, then append synthesized child rows for expanded parents.
type Composer struct {
	store     *Store
	expansion *Expansion
	window    Window
	pageSize  int
	query     string
	page      int
}

// NewComposer creates a Composer over the given store. pageSize must be
// positive and stays constant for the screen's lifetime.
func NewComposer(store *Store, pageSize int, window Window) *Composer {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Composer{
		store:     store,
		expansion: NewExpansion(),
		window:    window,
		pageSize:  pageSize,
		page:      1,
	}
}

// Query returns the current search query.
func (c *Composer) Query() string { return c.query }

// SetQuery installs a new search query. Any change resets the current page
// to 1: a stale page number on a shrunk result set
// would point past the end.
func (c *Composer) SetQuery(query string) {
	if query == c.query {
		return
	}
	c.query = query
	c.page = 1
}

// Page returns the current page clamped against the filtered record count.
func (c *Composer) Page() int {
	return ClampPage(c.page, c.PageCount())
}

// SetPage moves to the given page, clamped into range.
func (c *Composer) SetPage(page int) {
	c.page = ClampPage(page, c.PageCount())
}

// NextPage advances one page, saturating at the last page.
func (c *Composer) NextPage() { c.SetPage(c.Page() + 1) }

// PrevPage goes back one page, saturating at page 1.
func (c *Composer) PrevPage() { c.SetPage(c.Page() - 1) }

// PageSize returns the fixed page size.
func (c *Composer) PageSize() int { return c.pageSize }

// PageCount returns the number of pages the current filtered result set
// occupies. An empty result set has zero pages.
func (c *Composer) PageCount() int {
	n := len(Filter(c.store.All(), c.query))
	return (n + c.pageSize - 1) / c.pageSize
}

// Toggle flips the expansion state of an account.
func (c *Composer) Toggle(id int) { c.expansion.Toggle(id) }

// IsExpanded reports whether an account shows its child rows.
func (c *Composer) IsExpanded(id int) bool { return c.expansion.IsExpanded(id) }

// CollapseAll collapses every expanded account.
func (c *Composer) CollapseAll() { c.expansion.Clear() }

// Filtered returns the full filtered account list in store order.
func (c *Composer) Filtered() []Account {
	return Filter(c.store.All(), c.query)
}

// Visible returns the accounts on the current page, before expansion.
func (c *Composer) Visible() []Account {
	filtered := c.Filtered()
	page := ClampPage(c.page, c.PageCount())

	start := (page - 1) * c.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Rows returns the exact ordered row sequence for the current render:
// each visible account, followed by its synthesized child rows when
// expanded. Child rows copy the parent's fields under a rewritten ID.
func (c *Composer) Rows() []Row {
	visible := c.Visible()
	rows := make([]Row, 0, len(visible))
	for _, a := range visible {
		rows = append(rows, Row{Account: a})
		if !c.expansion.IsExpanded(a.ID) {
			continue
		}
		for i := 0; i < ChildrenPerParent; i++ {
			child := a
			child.ID = SyntheticID(a.ID, i)
			rows = append(rows, Row{Account: child, Synthetic: true, ParentID: a.ID})
		}
	}
	return rows
}

// PageTokens returns the pager strip for the current filtered result set.
func (c *Composer) PageTokens() []Token {
	total := c.PageCount()
	return c.window.Pages(total, ClampPage(c.page, total))
}
