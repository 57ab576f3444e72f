package roster

// Token is one element of a pager strip: either a page number or an
// ellipsis marker standing in for a compressed run of pages.
type Token int

// Ellipsis marks a compressed run of page numbers.
const Ellipsis Token = -1

// IsEllipsis reports whether the token is the ellipsis marker.
func (t Token) IsEllipsis() bool { return t == Ellipsis }

// Window describes how a pager strip compresses page numbers.
//
// Threshold is the page count at or below which every page is emitted in
// full. Span is the length of the solid run shown when the current page sits
// near either edge. Away from the edges the strip shows the first page, the
// current page with one neighbor on each side, and the last page, with
// ellipses filling the gaps.
type Window struct {
	Threshold int
	Span      int
}

// The two pager variants used by the panel. The roster screen shows a wider
// strip than the per-account detail screen.
var (
	ListWindow   = Window{Threshold: 7, Span: 5}
	DetailWindow = Window{Threshold: 5, Span: 4}
)

// Pages returns the ordered token sequence for a pager strip with total
// pages and the given current page. It returns nil when total is zero.
//
// current must already be clamped into [1, total]; [ClampPage] does this.
// The result never contains two adjacent ellipsis tokens, and whenever
// total is positive the first and last numeric tokens are 1 and total.
func (w Window) Pages(total, current int) []Token {
	if total <= 0 {
		return nil
	}

	if total <= w.Threshold {
		tokens := make([]Token, 0, total)
		for i := 1; i <= total; i++ {
			tokens = append(tokens, Token(i))
		}
		return tokens
	}

	switch {
	case current <= w.Span-1:
		// Near the head: solid run from page 1.
		tokens := make([]Token, 0, w.Span+2)
		for i := 1; i <= w.Span; i++ {
			tokens = append(tokens, Token(i))
		}
		return append(tokens, Ellipsis, Token(total))

	case current >= total-(w.Span-2):
		// Near the tail: solid run ending at the last page.
		tokens := make([]Token, 0, w.Span+2)
		tokens = append(tokens, Token(1), Ellipsis)
		for i := total - (w.Span - 1); i <= total; i++ {
			tokens = append(tokens, Token(i))
		}
		return tokens

	default:
		return []Token{
			Token(1), Ellipsis,
			Token(current - 1), Token(current), Token(current + 1),
			Ellipsis, Token(total),
		}
	}
}

// ClampPage forces page into [1, max(1, total)]. A page pointing past a
// shrunk result set clamps to the last page rather than dangling.
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
