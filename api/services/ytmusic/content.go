package ytmusic

import (
	"regexp"
	"strings"

	"github.com/gookit/goutil/arrutil"
	"github.com/gookit/goutil/strutil"
)

// Page types carried in the title browse endpoint of two-row items.
const (
	pageTypeAlbum       = "MUSIC_PAGE_TYPE_ALBUM"
	pageTypeAudiobook   = "MUSIC_PAGE_TYPE_AUDIOBOOK"
	pageTypeArtist      = "MUSIC_PAGE_TYPE_ARTIST"
	pageTypeUserChannel = "MUSIC_PAGE_TYPE_USER_CHANNEL"
	pageTypePlaylist    = "MUSIC_PAGE_TYPE_PLAYLIST"
	pageTypePodcast     = "MUSIC_PAGE_TYPE_PODCAST_SHOW_DETAIL_PAGE"
)

var (
	albumPageTypes  = []string{pageTypeAlbum, pageTypeAudiobook}
	artistPageTypes = []string{pageTypeArtist, pageTypeUserChannel}

	// video kinds of musicVideoType; everything else watchable is a song
	videoKinds = []string{
		"MUSIC_VIDEO_TYPE_UGC",
		"MUSIC_VIDEO_TYPE_OMV",
		"MUSIC_VIDEO_TYPE_SHOULDER",
	}

	countRE = regexp.MustCompile(`^\d+ `)
)

// classifyContent turns one raw carousel entry into a typed content block.
// Unrecognized shapes yield (nil, nil) and are dropped by the caller; only a
// structurally broken recognized shape is an error.
func classifyContent(entry map[string]interface{}) (ContentBlock, error) {
	if data, ok := entry[twoRowItemRenderer].(map[string]interface{}); ok {
		return classifyTwoRowItem(data)
	}
	if data, ok := entry[responsiveListItemRenderer].(map[string]interface{}); ok {
		return parseSongFlat(data, false)
	}
	if data, ok := entry[multiRowListItemRenderer].(map[string]interface{}); ok {
		return parseEpisode(data)
	}
	return nil, nil
}

func classifyTwoRowItem(data map[string]interface{}) (ContentBlock, error) {
	pageType := optionalString(data, pathTitle.Join(pathNavigationBrowse...).Join(pathPageType...))

	switch {
	case pageType == "":
		// song, video or watch playlist; musicVideoType tells videos apart
		videoType := optionalString(data, pathNavigationVideoType)
		if NavigateOptional(data, pathWatchPlaylistID) != nil {
			if arrutil.Contains(videoKinds, videoType) {
				return parseVideo(data)
			}
			if videoType != "" {
				return parseSong(data)
			}
			return parseWatchPlaylist(data)
		}
		if NavigateOptional(data, pathNavigationVideoID) != nil {
			if arrutil.Contains(videoKinds, videoType) {
				return parseVideo(data)
			}
			return parseSong(data)
		}
		return nil, nil
	case arrutil.Contains(albumPageTypes, pageType):
		return parseAlbum(data)
	case arrutil.Contains(artistPageTypes, pageType):
		return parseRelatedArtist(data)
	case pageType == pageTypePlaylist:
		return parsePlaylist(data)
	case pageType == pageTypePodcast:
		return parsePodcast(data)
	}
	// recognized renderer, unhandled page type
	return nil, nil
}

func parseAlbum(data map[string]interface{}) (ContentBlock, error) {
	title, err := navigateString(data, pathTitleText)
	if err != nil {
		return nil, err
	}
	browseID, err := navigateString(data, pathTitle.Join(pathNavigationBrowseID...))
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnailRenderer)
	if err != nil {
		return nil, err
	}

	album := &Album{
		Kind:       kindAlbum,
		Title:      title,
		Type:       optionalString(data, pathSubtitleText),
		BrowseID:   browseID,
		IsExplicit: NavigateOptional(data, pathSubtitleBadgeLabel) != nil,
		Thumbnails: thumbnails,
	}

	// subtitle artists are simply the runs carrying an endpoint
	if runs, ok := NavigateOptional(data, pathSubtitleRuns).([]interface{}); ok {
		for _, raw := range runs {
			run, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if _, ok := run["navigationEndpoint"]; !ok {
				continue
			}
			album.Artists = append(album.Artists, ArtistRef{
				Name: optionalString(run, pathRunText),
				ID:   optionalString(run, pathNavigationBrowseID),
			})
		}
	}

	if id := optionalString(data, pathOverlayWatchPlaylistID); id != "" {
		album.AudioPlaylistID = id
	} else {
		album.AudioPlaylistID = optionalString(data, pathOverlayWatchPlaylist2)
	}

	if year := optionalString(data, pathSubtitle2Text); strutil.IsNumeric(year) {
		album.Year = year
	}

	return album, nil
}

func parsePlaylist(data map[string]interface{}) (ContentBlock, error) {
	browseID, err := navigateString(data, pathTitle.Join(pathNavigationBrowseID...))
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnailRenderer)
	if err != nil {
		return nil, err
	}

	playlist := &Playlist{
		Kind:       kindPlaylist,
		Title:      optionalString(data, pathTitleText),
		PlaylistID: strings.TrimPrefix(browseID, "VL"),
		Thumbnails: thumbnails,
	}

	runs, _ := NavigateOptional(data, pathSubtitleRuns).([]interface{})
	if len(runs) > 0 {
		var texts []string
		for _, raw := range runs {
			texts = append(texts, optionalString(raw, pathRunText))
		}
		playlist.Description = strings.Join(texts, "")
	}
	if len(runs) == 3 && countRE.MatchString(optionalString(data, pathSubtitle2Text)) {
		playlist.Count = strings.SplitN(optionalString(data, pathSubtitle2Text), " ", 2)[0]
		if run, ok := runs[0].(map[string]interface{}); ok {
			v := classifyRun(run)
			playlist.Author = &ArtistRef{Name: v.name, ID: v.id}
		}
	}

	return playlist, nil
}

func parseRelatedArtist(data map[string]interface{}) (ContentBlock, error) {
	title, err := navigateString(data, pathTitleText)
	if err != nil {
		return nil, err
	}
	browseID, err := navigateString(data, pathTitle.Join(pathNavigationBrowseID...))
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnailRenderer)
	if err != nil {
		return nil, err
	}

	artist := &RelatedArtist{
		Kind:       kindArtist,
		Title:      title,
		BrowseID:   browseID,
		Thumbnails: thumbnails,
	}
	if subtitle := optionalString(data, pathSubtitleText); subtitle != "" {
		artist.Subscribers = strings.SplitN(subtitle, " ", 2)[0]
	}

	return artist, nil
}

func parseSong(data map[string]interface{}) (ContentBlock, error) {
	title, err := navigateString(data, pathTitleText)
	if err != nil {
		return nil, err
	}
	videoID, err := navigateString(data, pathNavigationVideoID)
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnailRenderer)
	if err != nil {
		return nil, err
	}

	runs, _ := NavigateOptional(data, pathSubtitleRuns).([]interface{})

	return &Song{
		Kind:       kindSong,
		Title:      title,
		VideoID:    videoID,
		PlaylistID: optionalString(data, pathNavigationPlaylistID),
		Thumbnails: thumbnails,
		SongRuns:   parseSongRuns(runs, true),
	}, nil
}

// parseSongFlat decodes the column layout used by flat song rows. The
// playlist id behind the play button is resolved only when asked for.
func parseSongFlat(data map[string]interface{}, withPlaylistID bool) (ContentBlock, error) {
	columns, _ := data["flexColumns"].([]interface{})

	col0 := flexColumnItem(columns, 0)
	if col0 == nil {
		return nil, &NavigationError{Key: Field("flexColumns"), Path: pathTextRuns, Node: data}
	}
	title, err := navigateString(col0, pathTextRunText)
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnails)
	if err != nil {
		return nil, err
	}

	song := &SongFlat{
		Kind:       kindSong,
		Title:      title,
		VideoID:    optionalString(col0, pathTextRun.Join(pathNavigationVideoID...)),
		VideoType:  optionalString(col0, pathTextRun.Join(pathNavigationVideoType...)),
		IsExplicit: NavigateOptional(data, pathBadgeLabel) != nil,
		Thumbnails: thumbnails,
	}
	if withPlaylistID {
		song.PlaylistID = optionalString(data, pathPlayButtonPlaylistID)
	}

	if col1 := flexColumnItem(columns, 1); col1 != nil {
		runs, _ := NavigateOptional(col1, pathTextRuns).([]interface{})
		song.SongRuns = parseSongRuns(runs, true)
	}

	// a third column holds the album directly, no run classification needed
	if col2 := flexColumnItem(columns, 2); col2 != nil {
		if run, ok := NavigateOptional(col2, pathTextRun).(map[string]interface{}); ok {
			if _, ok := run["navigationEndpoint"]; ok {
				song.Album = &AlbumRef{
					Name: optionalString(run, pathRunText),
					ID:   optionalString(run, pathNavigationBrowseID),
				}
			}
		}
	}

	return song, nil
}

func parseVideo(data map[string]interface{}) (ContentBlock, error) {
	title, err := navigateString(data, pathTitleText)
	if err != nil {
		return nil, err
	}

	runs, _ := NavigateOptional(data, pathSubtitleRuns).([]interface{})

	videoID := optionalString(data, pathNavigationVideoID)
	if videoID == "" {
		// fall back to the context menu's queue-add entry
		items, _ := NavigateOptional(data, pathMenuItems).([]interface{})
		for _, entry := range findAllByKey(items, menuServiceItemRenderer) {
			svc := Path{Field(menuServiceItemRenderer)}.Join(pathQueueVideoID...)
			if id := optionalString(entry, svc); id != "" {
				videoID = id
				break
			}
		}
	}

	video := &Video{
		Kind:       kindVideo,
		Title:      title,
		VideoID:    videoID,
		Artists:    parseSongRuns(runs[:dotSeparatorIndex(runs)], false).Artists,
		PlaylistID: optionalString(data, pathNavigationPlaylistID),
	}
	video.Thumbnails, _ = parseThumbnails(data, pathThumbnailRenderer)
	if len(runs) > 0 {
		last := optionalString(runs[len(runs)-1], pathRunText)
		video.Views = strings.SplitN(last, " ", 2)[0]
	}

	return video, nil
}

func parsePodcast(data map[string]interface{}) (ContentBlock, error) {
	title, err := navigateString(data, pathTitleText)
	if err != nil {
		return nil, err
	}
	browseID, err := navigateString(data, pathTitle.Join(pathNavigationBrowseID...))
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnailRenderer)
	if err != nil {
		return nil, err
	}

	podcast := &Podcast{
		Kind:       kindPodcast,
		Title:      title,
		BrowseID:   browseID,
		PodcastID:  optionalString(data, pathOverlayWatchPlaylistID),
		Thumbnails: thumbnails,
	}
	if run, ok := NavigateOptional(data, pathSubtitleRun0).(map[string]interface{}); ok {
		podcast.Channel = &ArtistRef{
			Name: optionalString(run, pathRunText),
			ID:   optionalString(run, pathNavigationBrowseID),
		}
	}

	return podcast, nil
}

func parseEpisode(data map[string]interface{}) (ContentBlock, error) {
	title, err := navigateString(data, pathTitleText)
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnails)
	if err != nil {
		return nil, err
	}

	episode := &Episode{
		Kind:        kindEpisode,
		Title:       title,
		Description: optionalString(data, pathDescriptionText),
		Duration:    optionalString(data, pathPlaybackDuration),
		VideoID:     optionalString(data, pathOnTapVideoID),
		BrowseID:    optionalString(data, pathTitle.Join(pathNavigationBrowseID...)),
		VideoType:   optionalString(data, pathOnTapVideoType),
		Date:        optionalString(data, pathSubtitleText),
		Thumbnails:  thumbnails,
	}
	if ix, ok := intValue(NavigateOptional(data, pathOnTapIndex)); ok {
		episode.Index = ix
	}

	return episode, nil
}

func parseWatchPlaylist(data map[string]interface{}) (ContentBlock, error) {
	title, err := navigateString(data, pathTitleText)
	if err != nil {
		return nil, err
	}
	playlistID, err := navigateString(data, pathWatchPlaylistID)
	if err != nil {
		return nil, err
	}
	thumbnails, err := parseThumbnails(data, pathThumbnailRenderer)
	if err != nil {
		return nil, err
	}

	return &WatchPlaylist{
		Kind:       kindWatchPlaylist,
		Title:      title,
		PlaylistID: playlistID,
		Thumbnails: thumbnails,
	}, nil
}

// flexColumnItem unwraps column i of a responsive list item, nil when the
// column is absent or carries no runs.
func flexColumnItem(columns []interface{}, i int) map[string]interface{} {
	if i >= len(columns) {
		return nil
	}
	column, ok := columns[i].(map[string]interface{})
	if !ok {
		return nil
	}
	renderer, ok := column[flexColumnRenderer].(map[string]interface{})
	if !ok {
		return nil
	}
	if NavigateOptional(renderer, Path{Field("text"), Field("runs")}) == nil {
		return nil
	}
	return renderer
}

func parseThumbnails(data interface{}, path Path) ([]Thumbnail, error) {
	node, err := Navigate(data, path)
	if err != nil {
		return nil, err
	}
	items, ok := node.([]interface{})
	if !ok {
		return nil, &NavigationError{Key: path[len(path)-1], Path: path, Node: node}
	}

	thumbnails := make([]Thumbnail, 0, len(items))
	for _, raw := range items {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		t := Thumbnail{}
		t.URL, _ = obj["url"].(string)
		t.Width, _ = intValue(obj["width"])
		t.Height, _ = intValue(obj["height"])
		thumbnails = append(thumbnails, t)
	}
	return thumbnails, nil
}
