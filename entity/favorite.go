package entity

import (
	"fmt"
	"time"
)

// Favorite marks a museum as saved by a user. Exactly one document may
// exist per (user, museum) pair; its existence is the membership flag.
type Favorite struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	MuseumID  string    `bson:"museumId" json:"museumId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Bookmark marks an exhibition as saved by a user. Pro tier only.
type Bookmark struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	ExhibitionID string    `bson:"exhibitionId" json:"exhibitionId"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// MembershipID builds the composite document id for a membership record.
func MembershipID(uid, targetID string) string {
	return fmt.Sprintf("%s_%s", uid, targetID)
}
