// Package museum provides an HTTP client for a museum-object catalog API.
//
// # Overview
//
// The client speaks the Harvard Art Museums /object API shape: a search
// returns a page of records plus an info block whose prev/next fields are
// fully-formed URLs for the adjacent pages. vitrine only ever needs two
// operations, both exposed through the Searcher interface:
//
//   - FetchByTermAndValue: GET /object?<term>=<value>&size=N[&apikey=K]
//   - FetchByPageLocator: GET a prev/next URL exactly as the server sent it
//
// # Client Usage
//
//	client, err := museum.NewClient(museum.Options{
//		BaseURL:  "https://api.harvardartmuseums.org",
//		APIKey:   os.Getenv("VITRINE_API_KEY"),
//		PageSize: 10,
//	})
//	if err != nil {
//		return err
//	}
//
//	results, err := client.FetchByTermAndValue(ctx, "medium", "bronze")
//	if err != nil {
//		return err
//	}
//	if results.Info.HasNext() {
//		next, err := client.FetchByPageLocator(ctx, results.Info.Next)
//		...
//	}
//
// # Locators
//
// Page locators are opaque. The client checks that a locator is an absolute
// http(s) URL and otherwise requests it byte for byte; it never adds the API
// key or page size to it. The server already embeds both.
//
// # Error Handling
//
// Every failure is returned as *FetchError, whose Op is OpSearch or OpPage
// and whose Err is the wrapped cause:
//
//   - "search: execute request: dial tcp: connection refused"
//   - "page: api https://.../object?apikey=REDACTED&page=3 returned status 500"
//   - "search: decode response: unexpected EOF"
//
// The API key is redacted from status errors so they can be logged.
//
// # Decoding
//
// A decoded SearchResultSet always has a non-nil Records slice, so callers
// can range over it and render an empty list without nil checks.
//
// # Testing
//
// The museumtest subpackage runs a fake catalog on httptest with term
// filtering and working prev/next locators.
package museum
