package filter

import (
	"net/url"
	"testing"

	"github.com/ksugita/tenrankai/entity"

	"github.com/stretchr/testify/assert"
)

func newMuseum(name string, venueType entity.VenueType, area entity.Area, exhibitions ...*entity.Exhibition) *entity.Museum {
	return &entity.Museum{
		Name:        name,
		VenueType:   venueType,
		Area:        area,
		Exhibitions: exhibitions,
	}
}

func newExhibition(title string, status entity.OngoingStatus) *entity.Exhibition {
	return &entity.Exhibition{Title: title, OngoingStatus: status}
}

func testMuseums() []*entity.Museum {
	return []*entity.Museum{
		newMuseum("国立西洋美術館", entity.VenueTypeArtMuseum, "上野",
			newExhibition("モネ 睡蓮のとき", entity.OngoingStatusOngoing),
			newExhibition("版画の世界", entity.OngoingStatusUpcoming),
		),
		newMuseum("江戸東京博物館", entity.VenueTypeHistoryMuseum, "両国",
			newExhibition("大江戸展", entity.OngoingStatusOngoing),
		),
		newMuseum("スカイギャラリー", entity.VenueTypeGallery, "渋谷",
			newExhibition("現代写真展", entity.OngoingStatusEnd),
		),
	}
}

func TestApply_NoFacets(t *testing.T) {
	museums := testMuseums()

	result, count := Apply(museums, Facets{})

	assert.Len(t, result, 3)
	assert.Equal(t, 4, count)
}

func TestApply_VenueTypes(t *testing.T) {
	result, count := Apply(testMuseums(), Facets{VenueTypes: []string{"art_museum", "gallery"}})

	assert.Len(t, result, 2)
	assert.Equal(t, "国立西洋美術館", result[0].Name)
	assert.Equal(t, "スカイギャラリー", result[1].Name)
	assert.Equal(t, 3, count)
}

func TestApply_Areas(t *testing.T) {
	result, count := Apply(testMuseums(), Facets{Areas: []string{"両国"}})

	assert.Len(t, result, 1)
	assert.Equal(t, "江戸東京博物館", result[0].Name)
	assert.Equal(t, 1, count)
}

func TestApply_MuseumNames(t *testing.T) {
	result, _ := Apply(testMuseums(), Facets{MuseumNames: []string{"国立西洋美術館"}})

	assert.Len(t, result, 1)
	assert.Equal(t, "国立西洋美術館", result[0].Name)
}

func TestApply_FacetsCombineByAND(t *testing.T) {
	facets := Facets{VenueTypes: []string{"art_museum"}, Areas: []string{"両国"}}

	result, count := Apply(testMuseums(), facets)

	assert.Empty(t, result)
	assert.Equal(t, 0, count)
}

func TestApply_OngoingStatusDropsEmptyMuseums(t *testing.T) {
	result, count := Apply(testMuseums(), Facets{OngoingStatus: "ongoing"})

	assert.Len(t, result, 2)
	assert.Equal(t, 2, count)
	for _, museum := range result {
		for _, exhibition := range museum.Exhibitions {
			assert.Equal(t, entity.OngoingStatusOngoing, exhibition.OngoingStatus)
		}
	}
}

func TestApply_SearchByTitle(t *testing.T) {
	result, count := Apply(testMuseums(), Facets{SearchText: "モネ"})

	assert.Len(t, result, 1)
	assert.Equal(t, "国立西洋美術館", result[0].Name)
	assert.Len(t, result[0].Exhibitions, 1)
	assert.Equal(t, "モネ 睡蓮のとき", result[0].Exhibitions[0].Title)
	assert.Equal(t, 1, count)
}

func TestApply_SearchByVenueNameKeepsAllExhibitions(t *testing.T) {
	result, count := Apply(testMuseums(), Facets{SearchText: "西洋美術館"})

	assert.Len(t, result, 1)
	assert.Len(t, result[0].Exhibitions, 2)
	assert.Equal(t, 2, count)
}

func TestApply_SearchFoldsWidthAndCase(t *testing.T) {
	museums := []*entity.Museum{
		newMuseum("Tokyo Gallery", entity.VenueTypeGallery, "銀座",
			newExhibition("ＡＢＣ ＡＲＴ展", entity.OngoingStatusOngoing),
		),
	}

	result, _ := Apply(museums, Facets{SearchText: "abc"})
	assert.Len(t, result, 1)

	result, _ = Apply(museums, Facets{SearchText: "ｔｏｋｙｏ"})
	assert.Len(t, result, 1)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	museums := testMuseums()

	Apply(museums, Facets{SearchText: "モネ"})

	assert.Len(t, museums[0].Exhibitions, 2)
}

func TestDecodeQuery(t *testing.T) {
	query := url.Values{
		"venueTypes": []string{"art_museum,gallery"},
		"areas":      []string{"上野", "渋谷"},
		"status":     []string{"ongoing"},
		"q":          []string{"モネ"},
		"unknown":    []string{"ignored"},
	}

	facets, err := DecodeQuery(query)

	assert.NoError(t, err)
	assert.Equal(t, []string{"art_museum", "gallery"}, facets.VenueTypes)
	assert.Equal(t, []string{"上野", "渋谷"}, facets.Areas)
	assert.Equal(t, "ongoing", facets.OngoingStatus)
	assert.Equal(t, "モネ", facets.SearchText)
}

func TestDecodeQuery_NormalizesInvalidValues(t *testing.T) {
	query := url.Values{
		"venueTypes": []string{"art_museum,castle"},
		"status":     []string{"finished"},
	}

	facets, err := DecodeQuery(query)

	assert.NoError(t, err)
	assert.Equal(t, []string{"art_museum"}, facets.VenueTypes)
	assert.Equal(t, StatusAll, facets.OngoingStatus)
}
