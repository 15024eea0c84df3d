package entity

import (
	"fmt"
	"time"

	"github.com/klauspost/lctime"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status is the publication state of an exhibition. Only active
// exhibitions are served; pending ones are awaiting review.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

// OngoingStatus is the lifecycle of an exhibition relative to the current
// time. It is derived from the date range on every read and never stored.
type OngoingStatus string

const (
	OngoingStatusUpcoming OngoingStatus = "upcoming"
	OngoingStatusOngoing  OngoingStatus = "ongoing"
	OngoingStatusEnd      OngoingStatus = "end"
)

type Exhibition struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title string        `bson:"title,omitempty" json:"title"`

	// Venue holds the museum name. Exhibitions are joined to museums by
	// name, not by id.
	Venue string `bson:"venue,omitempty" json:"venue"`

	StartDate time.Time  `bson:"startDate,omitempty" json:"startDate"`
	EndDate   *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`

	OfficialURL string `bson:"officialUrl,omitempty" json:"officialUrl,omitempty"`
	ImageURL    string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	Status Status `bson:"status,omitempty" json:"status"`

	// OngoingStatus is derived from the dates on every read. Never
	// persisted.
	OngoingStatus OngoingStatus `bson:"-" json:"ongoingStatus,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// OngoingStatusAt classifies the exhibition against now. Start and end are
// calendar dates, so all three instants are truncated to dates in loc before
// comparison: the exhibition is ongoing through the whole of its end date.
// An exhibition with no end date is open ended and stays ongoing once
// started.
func (e *Exhibition) OngoingStatusAt(now time.Time, loc *time.Location) OngoingStatus {
	if e.StartDate.IsZero() {
		return OngoingStatusEnd
	}

	day := dateOnly(now, loc)

	if day.Before(dateOnly(e.StartDate, loc)) {
		return OngoingStatusUpcoming
	}
	if e.EndDate != nil && day.After(dateOnly(*e.EndDate, loc)) {
		return OngoingStatusEnd
	}

	return OngoingStatusOngoing
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Period returns the exhibition dates formatted for display.
func (e *Exhibition) Period() string {
	if e.StartDate.IsZero() {
		return ""
	}

	start, _ := lctime.StrftimeLoc("ja_JP", "%Y年%m月%d日", e.StartDate)
	if e.EndDate == nil {
		return fmt.Sprintf("%s〜", start)
	}

	end, _ := lctime.StrftimeLoc("ja_JP", "%Y年%m月%d日", *e.EndDate)
	return fmt.Sprintf("%s〜%s", start, end)
}
