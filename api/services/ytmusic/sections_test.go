package ytmusic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carouselRow(title string, items ...interface{}) map[string]interface{} {
	return map[string]interface{}{
		"musicCarouselShelfRenderer": map[string]interface{}{
			"header": map[string]interface{}{
				"musicCarouselShelfBasicHeaderRenderer": map[string]interface{}{
					"title": map[string]interface{}{"runs": []interface{}{textRun(title)}},
				},
			},
			"contents": items,
		},
	}
}

func watchPlaylistItem(title, playlistID string) map[string]interface{} {
	return twoRowItem(map[string]interface{}{
		"title": titleRuns(textRun(title)),
		"navigationEndpoint": map[string]interface{}{
			"watchPlaylistEndpoint": map[string]interface{}{"playlistId": playlistID},
		},
		"thumbnailRenderer": twoRowThumbnails("https://img/s"),
	})
}

func TestParseMixedContentQuickPicks(t *testing.T) {
	rows := []interface{}{
		carouselRow("Quick picks", watchPlaylistItem("My Supermix", "RDTMAK5uy_abc")),
	}

	sections, err := parseMixedContent(rows)

	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Quick picks", sections[0].Title)
	require.Len(t, sections[0].Contents, 1)
	wp, ok := sections[0].Contents[0].(*WatchPlaylist)
	require.True(t, ok)
	assert.Equal(t, "RDTMAK5uy_abc", wp.PlaylistID)
}

func TestParseMixedContentRowWithoutContentsDropped(t *testing.T) {
	rows := []interface{}{
		carouselRow("Has contents", watchPlaylistItem("Mix", "RDx")),
		map[string]interface{}{
			"musicCarouselShelfRenderer": map[string]interface{}{
				"header": map[string]interface{}{},
			},
		},
	}

	sections, err := parseMixedContent(rows)

	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestParseMixedContentUnclassifiedItemsOmitted(t *testing.T) {
	rows := []interface{}{
		carouselRow("Mixed bag",
			watchPlaylistItem("Mix", "RDy"),
			map[string]interface{}{"brandNewRenderer": map[string]interface{}{}},
		),
	}

	sections, err := parseMixedContent(rows)

	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Contents, 1)
}

func TestParseMixedContentDescriptionShelf(t *testing.T) {
	rows := []interface{}{
		map[string]interface{}{
			descriptionShelfRenderer: map[string]interface{}{
				"header": map[string]interface{}{"runs": []interface{}{textRun("About")}},
				"description": map[string]interface{}{
					"runs": []interface{}{textRun("First part. "), textRun("Second part.")},
				},
			},
		},
	}

	sections, err := parseMixedContent(rows)

	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "About", sections[0].Title)
	assert.Equal(t, "First part. Second part.", sections[0].Description)
	assert.Nil(t, sections[0].Contents)
}

func TestParseMixedContentUntitledCarousel(t *testing.T) {
	row := carouselRow("", watchPlaylistItem("Mix", "RDz"))
	delete(row["musicCarouselShelfRenderer"].(map[string]interface{}), "header")

	sections, err := parseMixedContent([]interface{}{row})

	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Title)
	assert.Len(t, sections[0].Contents, 1)
}

func TestParseMixedContentBrokenItemFails(t *testing.T) {
	rows := []interface{}{
		carouselRow("Broken", twoRowItem(map[string]interface{}{
			// watch playlist endpoint but no title at all
			"navigationEndpoint": map[string]interface{}{
				"watchPlaylistEndpoint": map[string]interface{}{"playlistId": "RDbroken"},
			},
		})),
	}

	_, err := parseMixedContent(rows)

	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
}
