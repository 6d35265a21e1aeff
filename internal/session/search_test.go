package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-videoplayer/internal/data"
)

func ids(videos []data.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func TestSearchByTitle(t *testing.T) {
	m := newTestManager(t)

	results := m.SearchByTitle("CAT")
	require.Equal(t, []string{"amazing_cats_video_id", "another_cat_video_id"}, ids(results))

	_, err := m.Flag("amazing_cats_video_id", "")
	require.NoError(t, err)
	results = m.SearchByTitle("cat")
	require.Equal(t, []string{"another_cat_video_id"}, ids(results))

	require.Empty(t, m.SearchByTitle("blah"))
}

func TestSearchByTag(t *testing.T) {
	m := newTestManager(t)

	results := m.SearchByTag("#ANIMAL")
	require.Equal(t, []string{
		"amazing_cats_video_id",
		"another_cat_video_id",
		"funny_dogs_video_id",
	}, ids(results))

	// Совпадение тега только полное
	require.Empty(t, m.SearchByTag("#anim"))
	require.Empty(t, m.SearchByTag("animal"))

	_, err := m.Flag("funny_dogs_video_id", "")
	require.NoError(t, err)
	require.Empty(t, m.SearchByTag("#dog"))
}

func TestSearchTiesKeepCatalogOrder(t *testing.T) {
	m := newManagerWith(t,
		data.Video{ID: "z", Title: "Same", Tags: []string{"#x", "#X"}},
		data.Video{ID: "a", Title: "Same", Tags: []string{"#x"}},
		data.Video{ID: "m", Title: "Earlier"},
	)

	require.Equal(t, []string{"m", "z", "a"}, ids(m.SearchByTitle("")))
	// Видео с несколькими совпадающими тегами попадает в выдачу один раз
	require.Equal(t, []string{"z", "a"}, ids(m.SearchByTag("#x")))
}

func TestSelectFromResults(t *testing.T) {
	m := newTestManager(t)
	results := m.SearchByTitle("cat")

	id, ok := SelectFromResults(results, 2)
	require.True(t, ok)
	require.Equal(t, "another_cat_video_id", id)

	for _, index := range []int{0, -1, 3, 99} {
		_, ok := SelectFromResults(results, index)
		require.False(t, ok, "index %d", index)
	}

	_, ok = SelectFromResults(nil, 1)
	require.False(t, ok)
}
