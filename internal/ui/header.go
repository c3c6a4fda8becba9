package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader(snap state.Snapshot) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("vitrine", styles.Logo)}

	if snap.Loading {
		loading := m.spinner.View() + " Loading"
		if m.store.Policy().Loading == state.LoadingCounter && snap.Pending > 1 {
			loading += fmt.Sprintf(" (%d)", snap.Pending)
		}
		parts = append(parts, bg.Render(loading, styles.WarningText.Bold(true)))
	} else {
		parts = append(parts, bg.Render("● Ready", styles.SuccessText))
	}

	if m.showing != "" {
		parts = append(parts, bg.Render(truncate(m.showing, 40), styles.AccentText))
	}
	if snap.Results != nil && !compact {
		if summary := pagerSummary(snap.Results.Info); summary != "" {
			parts = append(parts, bg.Render(summary, styles.MutedText))
		}
	}
	if !snap.LastUpdated.IsZero() && !compact {
		parts = append(parts,
			bg.Render("Updated", styles.FaintText)+bg.Spaces(1)+
				bg.Render(snap.LastUpdated.Format("15:04:05"), styles.MutedText))
	}
	if snap.Discarded > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("stale dropped: %d", snap.Discarded), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderStatusLine renders the second header row: the prompt while it is
// open, otherwise the last fetch failure or a hint.
func (m Model) renderStatusLine(snap state.Snapshot) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.prompt.active {
		return styles.Header.Width(m.width).Render(m.prompt.input.View())
	}

	var content string
	switch {
	case snap.LastError != nil && snap.ConsecutiveFailures > 0:
		label := "Fetch failed"
		if snap.ConsecutiveFailures > 1 {
			label = fmt.Sprintf("Fetch failed ×%d", snap.ConsecutiveFailures)
		}
		content = bg.Render(label, styles.DangerText) + bg.Spaces(2) +
			bg.Render(truncate(classifyFetchError(snap.LastError), maxInt(m.width-30, 10)), styles.MutedText)
	case snap.Results == nil:
		content = bg.Render("Press", styles.FaintText) + bg.Spaces(1) +
			bg.Render("/", styles.AccentText) + bg.Spaces(1) +
			bg.Render("to search the collection", styles.FaintText)
	default:
		content = bg.Render("T", styles.AccentText) + bg.Sep(":") + bg.Render(m.theme.Name, styles.FaintText)
	}
	return styles.Header.Width(m.width).Render(content)
}

// classifyFetchError turns a fetch failure into a short human string.
func classifyFetchError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "connection refused"), strings.Contains(lower, "no such host"):
		return "catalog unreachable"
	case strings.Contains(lower, "status 401"), strings.Contains(lower, "status 403"):
		return "catalog rejected the API key"
	}
	var fe *museum.FetchError
	if errors.As(err, &fe) && fe.Err != nil {
		return fe.Op + ": " + fe.Err.Error()
	}
	return msg
}
