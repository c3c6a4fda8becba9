package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/five82/vitrine/internal/museum"
)

// factRow is one line of a fact. Rows with a Link render as search triggers.
type factRow struct {
	Key    string
	Prefix string
	Text   string
	Link   *Searchable
}

// fact is a titled group of rows in the feature pane.
type fact struct {
	Title string
	Rows  []factRow
}

// featureModel is what the feature pane shows for one record.
type featureModel struct {
	Title  string
	Dated  string
	Facts  []fact
	Photos []string
}

// buildFeature selects the facts to show for rec, in display order. A fact
// appears only when its source field is non-blank; the text shown is the
// field as the catalog sent it. ok is false for a nil record.
func buildFeature(rec *museum.Record) (featureModel, bool) {
	if rec == nil {
		return featureModel{}, false
	}
	fm := featureModel{
		Title:  rec.Title,
		Dated:  rec.Dated,
		Photos: photoURLs(rec),
	}

	text := func(title, value string) {
		if present(value) {
			fm.Facts = append(fm.Facts, fact{Title: title, Rows: []factRow{{Key: strings.ToLower(title), Text: value}}})
		}
	}
	link := func(title, term, value string, lower bool) {
		if !present(value) {
			return
		}
		s := Searchable{Term: term, Value: value}
		if lower {
			s.Value = strings.ToLower(strings.TrimSpace(value))
			s.Label = value
		}
		fm.Facts = append(fm.Facts, fact{Title: title, Rows: []factRow{{Key: term, Text: value, Link: &s}}})
	}

	text("Description", rec.Description)
	link("Culture", TermCulture, rec.Culture, false)
	text("Style", rec.Style)
	link("Technique", TermTechnique, rec.Technique, false)
	link("Medium", TermMedium, rec.Medium, true)
	text("Dimensions", rec.Dimensions)
	if people := peopleRows(rec.People); len(people) > 0 {
		fm.Facts = append(fm.Facts, fact{Title: "People", Rows: people})
	}
	text("Department", rec.Department)
	text("Division", rec.Division)
	text("Contact", rec.Contact)
	text("Credit", rec.CreditLine)

	return fm, true
}

func present(value string) bool {
	return strings.TrimSpace(value) != ""
}

// peopleRows keeps input order. People without any usable name are skipped,
// but the index in each key still refers to the input position.
func peopleRows(people []museum.Person) []factRow {
	var rows []factRow
	for i, p := range people {
		name := p.SearchName()
		if name == "" {
			continue
		}
		s := Searchable{Term: TermPerson, Value: name}
		prefix := strings.TrimSpace(p.Prefix)
		if prefix != "" {
			prefix += " "
		}
		rows = append(rows, factRow{
			Key:    fmt.Sprintf("person-%d", i),
			Prefix: prefix,
			Text:   name,
			Link:   &s,
		})
	}
	return rows
}

// photoURLs returns the image list when present, else the primary image,
// else nothing.
func photoURLs(rec *museum.Record) []string {
	if len(rec.Images) > 0 {
		urls := make([]string, 0, len(rec.Images))
		for _, img := range rec.Images {
			if u := strings.TrimSpace(img.BaseImageURL); u != "" {
				urls = append(urls, u)
			}
		}
		return urls
	}
	if u := strings.TrimSpace(rec.PrimaryImageURL); u != "" {
		return []string{u}
	}
	return nil
}

// links lists the model's search triggers in render order.
func (fm featureModel) links() []Searchable {
	var out []Searchable
	for _, f := range fm.Facts {
		for _, r := range f.Rows {
			if r.Link != nil {
				out = append(out, *r.Link)
			}
		}
	}
	return out
}

// featureState tracks which record the pane shows and the link cursor.
type featureState struct {
	record   *museum.Record
	model    featureModel
	link     int
	viewport viewport.Model
}

// sync adopts rec. A different record resets the link cursor and scroll.
func (f *featureState) sync(rec *museum.Record) bool {
	if rec == f.record {
		return false
	}
	f.record = rec
	f.model, _ = buildFeature(rec)
	f.link = 0
	f.viewport.GotoTop()
	return true
}

func (f *featureState) moveLink(delta int) {
	n := len(f.model.links())
	if n == 0 {
		f.link = 0
		return
	}
	f.link += delta
	if f.link < 0 {
		f.link = 0
	}
	if f.link >= n {
		f.link = n - 1
	}
}

func (f featureState) activeLink() (Searchable, bool) {
	links := f.model.links()
	if f.link < 0 || f.link >= len(links) {
		return Searchable{}, false
	}
	return links[f.link], true
}

// refreshFeature re-renders the pane content and keeps the active link on
// screen.
func (m *Model) refreshFeature() {
	if m.feature.record == nil {
		m.feature.viewport.SetContent("")
		return
	}
	content, activeLine := m.renderFeatureContent(m.feature.viewport.Width)
	m.feature.viewport.SetContent(content)

	if activeLine < 0 {
		return
	}
	vp := &m.feature.viewport
	if activeLine < vp.YOffset {
		vp.SetYOffset(activeLine)
	} else if vp.Height > 0 && activeLine >= vp.YOffset+vp.Height {
		vp.SetYOffset(activeLine - vp.Height + 1)
	}
}

// renderFeatureContent renders the featured record and reports the line index
// of the active link, or -1 when the record has no links.
func (m Model) renderFeatureContent(width int) (string, int) {
	styles := m.theme.Styles()
	fm := m.feature.model
	showCursor := m.focus == paneFeature

	var lines []string
	activeLine := -1

	for _, l := range wrapWords(fm.Title, width) {
		lines = append(lines, styles.Text.Bold(true).Render(l))
	}
	if present(fm.Dated) {
		lines = append(lines, styles.MutedText.Render(fm.Dated))
	}

	linkIdx := 0
	for _, f := range fm.Facts {
		lines = append(lines, "", styles.FactTitle.Render(f.Title))
		for _, r := range f.Rows {
			if r.Link == nil {
				for _, l := range wrapWords(r.Text, width-2) {
					lines = append(lines, "  "+styles.Text.Render(l))
				}
				continue
			}
			label := truncate(r.Link.Text(), width-2-len([]rune(r.Prefix)))
			style := styles.Link
			if linkIdx == m.feature.link {
				activeLine = len(lines)
				if showCursor {
					style = styles.LinkActive
				}
			}
			lines = append(lines, "  "+styles.MutedText.Render(r.Prefix)+style.Render(label))
			linkIdx++
		}
	}

	if len(fm.Photos) > 0 {
		lines = append(lines, "", styles.FactTitle.Render("Photos"))
		for _, u := range fm.Photos {
			lines = append(lines, "  "+styles.FaintText.Render(truncateMiddle(u, width-2)))
		}
	}

	return strings.Join(lines, "\n"), activeLine
}
