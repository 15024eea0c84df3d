package controller

import (
	"net/http"
	"time"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/filter"
	"github.com/ksugita/tenrankai/service"

	"github.com/gin-gonic/gin"
)

const suggestLimit = 10

type MuseumController struct {
	CatalogService *service.CatalogService
}

type Museum struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Address            string       `json:"address"`
	Access             string       `json:"access"`
	OpeningInformation string       `json:"openingInformation"`
	VenueType          string       `json:"venueType"`
	Area               string       `json:"area"`
	OfficialURL        string       `json:"officialUrl"`
	Exhibitions        []Exhibition `json:"exhibitions"`
}

type Exhibition struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Venue         string `json:"venue"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate,omitempty"`
	Period        string `json:"period"`
	OfficialURL   string `json:"officialUrl,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	OngoingStatus string `json:"ongoingStatus"`
}

// List serves the filtered catalog together with the number of exhibitions
// found.
func (c *MuseumController) List(ctx *gin.Context) {
	facets, err := filter.DecodeQuery(ctx.Request.URL.Query())
	if err != nil {
		respondError(ctx, entity.NewValidationError(err.Error()))
		return
	}

	museums, err := c.CatalogService.Museums(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	filtered, count := filter.Apply(museums, facets)

	views := make([]Museum, len(filtered))
	for i, museum := range filtered {
		views[i] = mapMuseum(museum)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"museums": views,
		"count":   count,
	})
}

// Suggest serves fuzzy venue-name completions for the search box.
func (c *MuseumController) Suggest(ctx *gin.Context) {
	names, err := c.CatalogService.MuseumNames(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	suggestions := filter.SuggestNames(names, ctx.Query("q"), suggestLimit)
	if suggestions == nil {
		suggestions = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func mapMuseum(museum *entity.Museum) Museum {
	exhibitions := make([]Exhibition, len(museum.Exhibitions))
	for i, e := range museum.Exhibitions {
		exhibitions[i] = Exhibition{
			ID:            e.ID.Hex(),
			Title:         e.Title,
			Venue:         e.Venue,
			StartDate:     e.StartDate.Format(time.DateOnly),
			Period:        e.Period(),
			OfficialURL:   e.OfficialURL,
			ImageURL:      e.ImageURL,
			OngoingStatus: string(e.OngoingStatus),
		}
		if e.EndDate != nil {
			exhibitions[i].EndDate = e.EndDate.Format(time.DateOnly)
		}
	}

	return Museum{
		ID:                 museum.ID.Hex(),
		Name:               museum.Name,
		Address:            museum.Address,
		Access:             museum.Access,
		OpeningInformation: museum.OpeningInformation,
		VenueType:          string(museum.VenueType),
		Area:               string(museum.Area),
		OfficialURL:        museum.OfficialURL,
		Exhibitions:        exhibitions,
	}
}
