package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestNames_SubstringMatchesRankFirst(t *testing.T) {
	names := []string{"森美術館", "国立新美術館", "東京都現代美術館", "ワタリウム"}

	suggestions := SuggestNames(names, "美術館", 10)

	assert.Equal(t, []string{"森美術館", "国立新美術館", "東京都現代美術館"}, suggestions)
}

func TestSuggestNames_FoldsWidth(t *testing.T) {
	names := []string{"Tokyo Gallery", "ｷﾞｬﾗﾘｰ小柳"}

	suggestions := SuggestNames(names, "ｔｏｋｙｏ", 10)

	assert.Contains(t, suggestions, "Tokyo Gallery")
}

func TestSuggestNames_Limit(t *testing.T) {
	names := []string{"森美術館", "国立新美術館", "東京都現代美術館"}

	suggestions := SuggestNames(names, "美術館", 2)

	assert.Len(t, suggestions, 2)
	assert.Equal(t, "森美術館", suggestions[0])
}

func TestSuggestNames_EmptyQuery(t *testing.T) {
	assert.Nil(t, SuggestNames([]string{"森美術館"}, "  ", 10))
	assert.Nil(t, SuggestNames([]string{"森美術館"}, "美術館", 0))
}

func TestSuggestNames_NoMatch(t *testing.T) {
	suggestions := SuggestNames([]string{"森美術館"}, "zzzzzzzzzz", 10)

	assert.Empty(t, suggestions)
}
