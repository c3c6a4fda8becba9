package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which panes stack vertically.
	LayoutCompactWidth = 100

	// LayoutResultsWidth is the results pane width in side-by-side mode.
	LayoutResultsWidth = 48
)

// Fixed chrome.
const (
	// headerHeight covers the status bar and the prompt/command line.
	headerHeight = 2

	// footerHeight covers the short help line.
	footerHeight = 1

	// paneChrome is the border plus title row each pane draws.
	paneChrome = 3

	helpModalWidth = 44
)

// missingInfo stands in for a card title the catalog left blank.
const missingInfo = "MISSING INFO"
