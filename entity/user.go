package entity

import "time"

type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

type User struct {
	UID   string `bson:"_id" json:"uid"`
	Email string `bson:"email,omitempty" json:"email"`

	DisplayName string `bson:"displayName,omitempty" json:"displayName,omitempty"`

	SubscriptionTier SubscriptionTier `bson:"subscriptionTier,omitempty" json:"subscriptionTier"`

	// FavoriteCount mirrors the favorites collection. It is written in the
	// same transaction as every favorite change so that concurrent quota
	// checks by the same user conflict on this document; the quota itself
	// is read from the collection count.
	FavoriteCount int `bson:"favoriteCount,omitempty" json:"-"`

	// Preferences carries the legacy embedded membership arrays. New
	// documents keep memberships in the favorites and bookmarks
	// collections; this field only exists so old documents can be read
	// and migrated.
	Preferences *Preferences `bson:"preferences,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

func (u *User) IsPro() bool {
	return u.SubscriptionTier == TierPro
}

type Preferences struct {
	EmailNotifications    bool                        `bson:"emailNotifications,omitempty"`
	FavoriteVenues        []*FavoriteVenueItem        `bson:"favoriteVenues,omitempty"`
	BookmarkedExhibitions []*BookmarkedExhibitionItem `bson:"bookmarkedExhibitions,omitempty"`
}

type FavoriteVenueItem struct {
	MuseumID string    `bson:"museumId,omitempty"`
	AddedAt  time.Time `bson:"addedAt,omitempty"`
}

type BookmarkedExhibitionItem struct {
	ExhibitionID string    `bson:"exhibitionId,omitempty"`
	AddedAt      time.Time `bson:"addedAt,omitempty"`
}
