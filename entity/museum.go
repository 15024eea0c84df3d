package entity

import "go.mongodb.org/mongo-driver/v2/bson"

type VenueType string

const (
	VenueTypeArtMuseum     VenueType = "art_museum"
	VenueTypeHistoryMuseum VenueType = "history_museum"
	VenueTypeGallery       VenueType = "gallery"
	VenueTypeEventSpace    VenueType = "event_space"
)

func (t VenueType) IsValid() bool {
	switch t {
	case VenueTypeArtMuseum, VenueTypeHistoryMuseum, VenueTypeGallery, VenueTypeEventSpace:
		return true
	}
	return false
}

// Area is the city district a venue belongs to. The catalog is scoped to
// Tokyo, so values are district names like "上野" or "六本木"; the set of
// areas offered as filter options is derived from the data, not hardcoded.
type Area string

type Museum struct {
	ID   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string        `bson:"name,omitempty" json:"name"`

	Address            string `bson:"address,omitempty" json:"address"`
	Access             string `bson:"access,omitempty" json:"access"`
	OpeningInformation string `bson:"openingInformation,omitempty" json:"openingInformation"`

	VenueType VenueType `bson:"venueType,omitempty" json:"venueType"`
	Area      Area      `bson:"area,omitempty" json:"area"`

	OfficialURL string `bson:"officialUrl,omitempty" json:"officialUrl"`

	// Exhibitions is populated by the catalog service; museum documents do
	// not embed exhibitions.
	Exhibitions []*Exhibition `bson:"-" json:"exhibitions"`
}
