package museum

import "strings"

// SearchResultSet mirrors a page of /object results.
type SearchResultSet struct {
	Info    PaginationInfo `json:"info"`
	Records []Record       `json:"records"`
}

// PaginationInfo carries the server's paging cursors. Prev and Next are opaque
// URLs; an empty value means the direction is unavailable.
type PaginationInfo struct {
	TotalRecordsPerQuery int    `json:"totalrecordsperquery"`
	TotalRecords         int    `json:"totalrecords"`
	Pages                int    `json:"pages"`
	Page                 int    `json:"page"`
	Prev                 string `json:"prev"`
	Next                 string `json:"next"`
}

// HasPrev reports whether a previous page locator is present.
func (p PaginationInfo) HasPrev() bool {
	return strings.TrimSpace(p.Prev) != ""
}

// HasNext reports whether a next page locator is present.
func (p PaginationInfo) HasNext() bool {
	return strings.TrimSpace(p.Next) != ""
}

// Record is a catalog object. The list view and the detail view share the
// type so a selected record is featured with every field intact.
type Record struct {
	ID              int64    `json:"id"`
	ObjectNumber    string   `json:"objectnumber"`
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	Dated           string   `json:"dated"`
	Images          []Image  `json:"images"`
	PrimaryImageURL string   `json:"primaryimageurl"`
	Description     string   `json:"description"`
	Culture         string   `json:"culture"`
	Style           string   `json:"style"`
	Technique       string   `json:"technique"`
	Medium          string   `json:"medium"`
	Dimensions      string   `json:"dimensions"`
	People          []Person `json:"people"`
	Department      string   `json:"department"`
	Division        string   `json:"division"`
	Contact         string   `json:"contact"`
	CreditLine      string   `json:"creditline"`
}

// Image is one entry of a record's image list.
type Image struct {
	BaseImageURL string `json:"baseimageurl"`
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// Person is a maker or other party attached to a record.
type Person struct {
	Prefix      string `json:"prefix"`
	Name        string `json:"name"`
	DisplayName string `json:"displayname"`
	Role        string `json:"role"`
}

// SearchName returns the value used when searching for this person.
func (p Person) SearchName() string {
	if name := strings.TrimSpace(p.DisplayName); name != "" {
		return name
	}
	return strings.TrimSpace(p.Name)
}

// normalize enforces the invariants callers rely on after decoding.
func (rs *SearchResultSet) normalize() {
	if rs.Records == nil {
		rs.Records = []Record{}
	}
}
