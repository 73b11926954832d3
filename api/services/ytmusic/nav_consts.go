package ytmusic

// Renderer keys. A content block is implicitly tagged by which one of these
// it populates.
const (
	twoRowItemRenderer         = "musicTwoRowItemRenderer"
	responsiveListItemRenderer = "musicResponsiveListItemRenderer"
	multiRowListItemRenderer   = "musicMultiRowListItemRenderer"
	descriptionShelfRenderer   = "musicDescriptionShelfRenderer"
	flexColumnRenderer         = "musicResponsiveListItemFlexColumnRenderer"
	menuServiceItemRenderer    = "menuServiceItemRenderer"
)

// Shared paths into the raw browse response, built once and reused.
var (
	pathSingleColumnTab = Path{
		Field("contents"), Field("singleColumnBrowseResultsRenderer"),
		Field("tabs"), Index(0), Field("tabRenderer"), Field("content"),
	}
	pathSectionListRenderer = pathSingleColumnTab.Join(Field("sectionListRenderer"))
	pathSectionList         = pathSectionListRenderer.Join(Field("contents"))

	pathTitle     = Path{Field("title"), Field("runs"), Index(0)}
	pathTitleText = pathTitle.Join(Field("text"))

	pathTextRun     = Path{Field("text"), Field("runs"), Index(0)}
	pathTextRunText = pathTextRun.Join(Field("text"))
	pathTextRuns    = Path{Field("text"), Field("runs")}
	pathRunText     = Path{Field("text")}

	pathNavigationBrowse   = Path{Field("navigationEndpoint"), Field("browseEndpoint")}
	pathNavigationBrowseID = pathNavigationBrowse.Join(Field("browseId"))
	pathPageType           = Path{
		Field("browseEndpointContextSupportedConfigs"),
		Field("browseEndpointContextMusicConfig"), Field("pageType"),
	}

	pathWatchVideoID         = Path{Field("watchEndpoint"), Field("videoId")}
	pathNavigationVideoID    = Path{Field("navigationEndpoint")}.Join(pathWatchVideoID...)
	pathNavigationPlaylistID = Path{Field("navigationEndpoint"), Field("watchEndpoint"), Field("playlistId")}
	pathWatchPlaylistID      = Path{Field("navigationEndpoint"), Field("watchPlaylistEndpoint"), Field("playlistId")}
	pathVideoType            = Path{
		Field("watchEndpoint"), Field("watchEndpointMusicSupportedConfigs"),
		Field("watchEndpointMusicConfig"), Field("musicVideoType"),
	}
	pathNavigationVideoType = Path{Field("navigationEndpoint")}.Join(pathVideoType...)

	pathSubtitleText  = Path{Field("subtitle"), Field("runs"), Index(0), Field("text")}
	pathSubtitle2Text = Path{Field("subtitle"), Field("runs"), Index(2), Field("text")}
	pathSubtitleRuns  = Path{Field("subtitle"), Field("runs")}
	pathSubtitleRun0  = Path{Field("subtitle"), Field("runs"), Index(0)}

	pathSubtitleBadgeLabel = Path{
		Field("subtitleBadges"), Index(0), Field("musicInlineBadgeRenderer"),
		Field("accessibilityData"), Field("accessibilityData"), Field("label"),
	}
	pathBadgeLabel = Path{
		Field("badges"), Index(0), Field("musicInlineBadgeRenderer"),
		Field("accessibilityData"), Field("accessibilityData"), Field("label"),
	}

	// two-row items wrap thumbnails in thumbnailRenderer, list items in thumbnail
	pathThumbnailRenderer = Path{
		Field("thumbnailRenderer"), Field("musicThumbnailRenderer"),
		Field("thumbnail"), Field("thumbnails"),
	}
	pathThumbnails = Path{
		Field("thumbnail"), Field("musicThumbnailRenderer"),
		Field("thumbnail"), Field("thumbnails"),
	}

	pathMenuItems    = Path{Field("menu"), Field("menuRenderer"), Field("items")}
	pathQueueVideoID = Path{
		Field("serviceEndpoint"), Field("queueAddEndpoint"),
		Field("queueTarget"), Field("videoId"),
	}

	// backing playlist of a two-row album, behind the play button overlay
	pathThumbnailOverlayPlay = Path{
		Field("thumbnailOverlay"), Field("musicItemThumbnailOverlayRenderer"),
		Field("content"), Field("musicPlayButtonRenderer"), Field("playNavigationEndpoint"),
	}
	pathOverlayWatchPlaylistID = pathThumbnailOverlayPlay.Join(Field("watchPlaylistEndpoint"), Field("playlistId"))
	pathOverlayWatchPlaylist2  = pathThumbnailOverlayPlay.Join(Field("watchEndpoint"), Field("playlistId"))

	// play button of a responsive list item (flat song rows)
	pathPlayButtonPlaylistID = Path{
		Field("overlay"), Field("musicItemThumbnailOverlayRenderer"),
		Field("content"), Field("musicPlayButtonRenderer"),
		Field("playNavigationEndpoint"), Field("watchEndpoint"), Field("playlistId"),
	}

	pathCarouselTitle = Path{
		Field("header"), Field("musicCarouselShelfBasicHeaderRenderer"),
		Field("title"), Field("runs"), Index(0), Field("text"),
	}
	pathHeaderRunText   = Path{Field("header"), Field("runs"), Index(0), Field("text")}
	pathDescriptionRuns = Path{Field("description"), Field("runs")}
	pathDescriptionText = Path{Field("description"), Field("runs"), Index(0), Field("text")}

	// episode rows route their tap target through onTap instead of
	// navigationEndpoint
	pathOnTapVideoID   = Path{Field("onTap"), Field("watchEndpoint"), Field("videoId")}
	pathOnTapIndex     = Path{Field("onTap"), Field("watchEndpoint"), Field("index")}
	pathOnTapVideoType = Path{Field("onTap")}.Join(pathVideoType...)

	pathPlaybackDuration = Path{
		Field("playbackProgress"), Field("musicPlaybackProgressRenderer"),
		Field("durationText"), Field("runs"), Index(1), Field("text"),
	}

	pathContinuationToken = Path{
		Field("continuations"), Index(0),
		Field("nextContinuationData"), Field("continuation"),
	}
	pathSectionListContinuation = Path{
		Field("continuationContents"), Field("sectionListContinuation"),
	}
)
