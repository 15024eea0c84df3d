// Package filter implements the catalog facet filtering and free-text
// search over museums and their exhibitions.
package filter

import (
	"net/url"
	"strings"

	"github.com/ksugita/tenrankai/entity"

	"github.com/gorilla/schema"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// StatusAll disables the lifecycle facet.
const StatusAll = "all"

// Facets is one independent constraint per field. An empty slice, empty
// string or "all" means the facet is untouched and passes everything
// through; facets combine by AND across fields and by OR within a field.
type Facets struct {
	VenueTypes    []string `schema:"venueTypes"`
	Areas         []string `schema:"areas"`
	MuseumNames   []string `schema:"museums"`
	OngoingStatus string   `schema:"status"`
	SearchText    string   `schema:"q"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// listParams are facets the UI sends as a single comma-separated value.
var listParams = []string{"venueTypes", "areas", "museums"}

// DecodeQuery parses facets from URL query parameters. List facets accept
// both repeated keys and comma-separated values.
func DecodeQuery(query url.Values) (Facets, error) {
	expanded := url.Values{}
	for key, values := range query {
		if !slices.Contains(listParams, key) {
			expanded[key] = values
			continue
		}
		for _, value := range values {
			for _, item := range strings.Split(value, ",") {
				if item = strings.TrimSpace(item); item != "" {
					expanded.Add(key, item)
				}
			}
		}
	}

	var facets Facets
	if err := decoder.Decode(&facets, expanded); err != nil {
		return Facets{}, err
	}

	facets.normalize()
	return facets, nil
}

// normalize drops invalid venue types and maps unknown lifecycle values to
// "all", mirroring how the UI parses URL state.
func (f *Facets) normalize() {
	valid := f.VenueTypes[:0]
	for _, t := range f.VenueTypes {
		if entity.VenueType(t).IsValid() {
			valid = append(valid, t)
		}
	}
	f.VenueTypes = valid

	switch entity.OngoingStatus(f.OngoingStatus) {
	case entity.OngoingStatusOngoing, entity.OngoingStatusUpcoming, entity.OngoingStatusEnd:
	default:
		f.OngoingStatus = StatusAll
	}
}

// Apply filters museums by the facets and returns the surviving museums
// together with the total number of surviving exhibitions. Input slices are
// not mutated; museums whose exhibition list is narrowed are shallow-copied.
// Exhibitions must already carry their OngoingStatus.
func Apply(museums []*entity.Museum, facets Facets) ([]*entity.Museum, int) {
	q := Normalize(strings.TrimSpace(facets.SearchText))

	result := make([]*entity.Museum, 0, len(museums))
	count := 0

	for _, museum := range museums {
		if len(facets.VenueTypes) > 0 && !slices.Contains(facets.VenueTypes, string(museum.VenueType)) {
			continue
		}
		if len(facets.Areas) > 0 && !slices.Contains(facets.Areas, string(museum.Area)) {
			continue
		}
		if len(facets.MuseumNames) > 0 && !slices.Contains(facets.MuseumNames, museum.Name) {
			continue
		}

		exhibitions := museum.Exhibitions

		if facets.OngoingStatus != StatusAll && facets.OngoingStatus != "" {
			exhibitions = filterByStatus(exhibitions, entity.OngoingStatus(facets.OngoingStatus))
		}
		if len(exhibitions) == 0 {
			continue
		}

		// A venue-name match keeps the full exhibition list; only when
		// the name does not match are exhibitions narrowed by title.
		if q != "" && !strings.Contains(Normalize(museum.Name), q) {
			exhibitions = filterByTitle(exhibitions, q)
			if len(exhibitions) == 0 {
				continue
			}
		}

		filtered := *museum
		filtered.Exhibitions = exhibitions
		result = append(result, &filtered)
		count += len(exhibitions)
	}

	return result, count
}

func filterByStatus(exhibitions []*entity.Exhibition, status entity.OngoingStatus) []*entity.Exhibition {
	var out []*entity.Exhibition
	for _, e := range exhibitions {
		if e.OngoingStatus == status {
			out = append(out, e)
		}
	}
	return out
}

func filterByTitle(exhibitions []*entity.Exhibition, q string) []*entity.Exhibition {
	var out []*entity.Exhibition
	for _, e := range exhibitions {
		if strings.Contains(Normalize(e.Title), q) {
			out = append(out, e)
		}
	}
	return out
}

var foldCaser = cases.Fold()

// Normalize folds case and character width so that ＡＢＣ matches abc and
// ｶﾀｶﾅ matches カタカナ. The catalog mixes full-width and half-width text.
func Normalize(s string) string {
	return foldCaser.String(width.Fold.String(s))
}
