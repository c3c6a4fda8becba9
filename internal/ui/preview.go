package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/state"
)

// pageControl is one of the pager's Previous/Next controls. The locator is
// kept exactly as the server sent it.
type pageControl struct {
	label   string
	locator string
	enabled bool
}

// pageControls derives the pager from the current pagination info. A control
// is disabled exactly when its locator is absent.
func pageControls(info museum.PaginationInfo) (prev, next pageControl) {
	return pageControl{label: "◀ Prev", locator: info.Prev, enabled: info.HasPrev()},
		pageControl{label: "Next ▶", locator: info.Next, enabled: info.HasNext()}
}

// Enabled reports whether activating the control would fetch anything.
func (c pageControl) Enabled() bool {
	return c.enabled
}

// Activate fetches the page behind the control. Disabled controls return nil
// without touching the store.
func (c pageControl) Activate(f fetcher) tea.Cmd {
	if !c.Enabled() {
		return nil
	}
	locator := c.locator
	client := f.client
	return f.begin(fetchPage, "page: "+locator, func(ctx context.Context) (*museum.SearchResultSet, error) {
		return client.FetchByPageLocator(ctx, locator)
	})
}

// card is the list rendering of one record.
type card struct {
	Title   string
	Missing bool
	Image   string
}

func buildCard(rec museum.Record) card {
	c := card{Image: strings.TrimSpace(rec.PrimaryImageURL)}
	if title := strings.TrimSpace(rec.Title); title != "" {
		c.Title = title
	} else {
		c.Title = missingInfo
		c.Missing = true
	}
	return c
}

// buildCards keeps the server's record order.
func buildCards(records []museum.Record) []card {
	cards := make([]card, 0, len(records))
	for _, rec := range records {
		cards = append(cards, buildCard(rec))
	}
	return cards
}

func (c card) height() int {
	if c.Image != "" {
		return 2
	}
	return 1
}

// selectCard features the i-th record of rs. The feature is the record inside
// rs itself, not a copy.
func selectCard(m state.Mutator, rs *museum.SearchResultSet, i int) bool {
	if rs == nil || i < 0 || i >= len(rs.Records) {
		return false
	}
	m.SetFeature(&rs.Records[i])
	return true
}

// previewState is the Result Browser's cursor over the installed result set.
type previewState struct {
	results *museum.SearchResultSet
	cards   []card
	cursor  int
	offset  int
}

// sync adopts rs. A different result set resets the cursor to the top.
func (p *previewState) sync(rs *museum.SearchResultSet) {
	if rs == p.results {
		return
	}
	p.results = rs
	p.cursor = 0
	p.offset = 0
	p.cards = nil
	if rs != nil {
		p.cards = buildCards(rs.Records)
	}
}

func (p *previewState) move(delta int) {
	p.setCursor(p.cursor + delta)
}

func (p *previewState) setCursor(i int) {
	if len(p.cards) == 0 {
		p.cursor = 0
		return
	}
	switch {
	case i < 0:
		i = 0
	case i >= len(p.cards):
		i = len(p.cards) - 1
	}
	p.cursor = i
}

func (p *previewState) bottom() {
	p.setCursor(len(p.cards) - 1)
}

// ensureVisible scrolls so the cursor card fits in avail lines.
func (p *previewState) ensureVisible(avail int) {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if avail <= 0 {
		return
	}
	for p.offset < p.cursor && p.linesBetween(p.offset, p.cursor) > avail {
		p.offset++
	}
}

func (p previewState) linesBetween(from, to int) int {
	total := 0
	for i := from; i <= to && i < len(p.cards); i++ {
		total += p.cards[i].height()
	}
	return total
}

// pagerSummary renders "page X of Y · N records", or empty when the server
// gave no counts.
func pagerSummary(info museum.PaginationInfo) string {
	var parts []string
	if info.Page > 0 && info.Pages > 0 {
		parts = append(parts, fmt.Sprintf("page %d of %d", info.Page, info.Pages))
	}
	if info.TotalRecords > 0 {
		noun := "records"
		if info.TotalRecords == 1 {
			noun = "record"
		}
		parts = append(parts, fmt.Sprintf("%d %s", info.TotalRecords, noun))
	}
	return strings.Join(parts, " · ")
}

// renderPreview renders the results pane body. With no result set it renders
// nothing at all.
func (m Model) renderPreview(width, height int, feature *museum.Record) string {
	p := m.preview
	if p.results == nil {
		return ""
	}
	styles := m.theme.Styles()

	prev, next := pageControls(p.results.Info)
	renderControl := func(c pageControl) string {
		if c.Enabled() {
			return styles.AccentText.Render(c.label)
		}
		return styles.Disabled.Render(c.label)
	}

	lines := make([]string, 0, height)
	pager := renderControl(prev) + "  " + renderControl(next)
	if summary := pagerSummary(p.results.Info); summary != "" {
		pager += "  " + styles.MutedText.Render(summary)
	}
	lines = append(lines, pager, "")

	if len(p.cards) == 0 {
		return strings.Join(lines, "\n")
	}

	avail := height - len(lines)
	used := 0
	for i := p.offset; i < len(p.cards); i++ {
		c := p.cards[i]
		if used+c.height() > avail && used > 0 {
			break
		}
		used += c.height()

		marker := "  "
		if feature != nil && feature == &p.results.Records[i] {
			marker = "★ "
		}
		title := truncate(c.Title, width-len([]rune(marker)))
		titleStyle := styles.Text
		if c.Missing {
			titleStyle = styles.WarningText
		}
		row := marker + titleStyle.Render(title)
		if i == p.cursor {
			row = styles.Selected.Render(padRight(marker+title, width))
		}
		lines = append(lines, row)

		if c.Image != "" {
			lines = append(lines, styles.FaintText.Render("  "+truncateMiddle(c.Image, width-2)))
		}
	}
	return strings.Join(lines, "\n")
}

// previewChrome is the number of body lines the pager occupies.
const previewChrome = 2
