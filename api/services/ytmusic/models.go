package ytmusic

// Typed records decoded out of the raw home feed.

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ArtistRef struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

type AlbumRef struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// SongRuns aggregates the fields encoded in an alternating run/separator
// subtitle sequence.
type SongRuns struct {
	Artists         []ArtistRef `json:"artists"`
	Album           *AlbumRef   `json:"album,omitempty"`
	Views           string      `json:"views,omitempty"`
	Duration        string      `json:"duration,omitempty"`
	DurationSeconds int         `json:"durationSeconds,omitempty"`
	Year            string      `json:"year,omitempty"`
}

// ContentBlock is one classified entry of a home section. Concrete types:
// Album, Playlist, RelatedArtist, Song, SongFlat, Video, Podcast, Episode,
// WatchPlaylist. Blocks are immutable once constructed.
type ContentBlock interface {
	contentBlock()
}

type Album struct {
	Kind            string      `json:"kind"`
	Title           string      `json:"title"`
	Type            string      `json:"type,omitempty"`
	Artists         []ArtistRef `json:"artists"`
	BrowseID        string      `json:"browseId"`
	AudioPlaylistID string      `json:"audioPlaylistId,omitempty"`
	Year            string      `json:"year,omitempty"`
	IsExplicit      bool        `json:"isExplicit"`
	Thumbnails      []Thumbnail `json:"thumbnails"`
}

type Playlist struct {
	Kind        string      `json:"kind"`
	Title       string      `json:"title,omitempty"`
	PlaylistID  string      `json:"playlistId"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
	Description string      `json:"description,omitempty"`
	Count       string      `json:"count,omitempty"`
	Author      *ArtistRef  `json:"author,omitempty"`
}

type RelatedArtist struct {
	Kind        string      `json:"kind"`
	Title       string      `json:"title"`
	BrowseID    string      `json:"browseId"`
	Subscribers string      `json:"subscribers,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
}

type Song struct {
	Kind       string      `json:"kind"`
	Title      string      `json:"title"`
	VideoID    string      `json:"videoId"`
	PlaylistID string      `json:"playlistId,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails"`
	SongRuns
}

// SongFlat is the column-layout rendition of a song row.
type SongFlat struct {
	Kind       string      `json:"kind"`
	Title      string      `json:"title"`
	VideoID    string      `json:"videoId,omitempty"`
	VideoType  string      `json:"videoType,omitempty"`
	PlaylistID string      `json:"playlistId,omitempty"`
	IsExplicit bool        `json:"isExplicit"`
	Thumbnails []Thumbnail `json:"thumbnails"`
	SongRuns
}

type Video struct {
	Kind       string      `json:"kind"`
	Title      string      `json:"title"`
	VideoID    string      `json:"videoId,omitempty"`
	Artists    []ArtistRef `json:"artists"`
	PlaylistID string      `json:"playlistId,omitempty"`
	Views      string      `json:"views,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}

type Podcast struct {
	Kind       string      `json:"kind"`
	Title      string      `json:"title"`
	Channel    *ArtistRef  `json:"channel,omitempty"`
	BrowseID   string      `json:"browseId"`
	PodcastID  string      `json:"podcastId,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Episode struct {
	Kind        string      `json:"kind"`
	Index       int         `json:"index,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	VideoID     string      `json:"videoId,omitempty"`
	BrowseID    string      `json:"browseId,omitempty"`
	VideoType   string      `json:"videoType,omitempty"`
	Date        string      `json:"date,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
}

// WatchPlaylist is an auto-generated mix or radio.
type WatchPlaylist struct {
	Kind       string      `json:"kind"`
	Title      string      `json:"title"`
	PlaylistID string      `json:"playlistId"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

func (*Album) contentBlock()         {}
func (*Playlist) contentBlock()      {}
func (*RelatedArtist) contentBlock() {}
func (*Song) contentBlock()          {}
func (*SongFlat) contentBlock()      {}
func (*Video) contentBlock()         {}
func (*Podcast) contentBlock()       {}
func (*Episode) contentBlock()       {}
func (*WatchPlaylist) contentBlock() {}

const (
	kindAlbum         = "album"
	kindPlaylist      = "playlist"
	kindArtist        = "artist"
	kindSong          = "song"
	kindVideo         = "video"
	kindPodcast       = "podcast"
	kindEpisode       = "episode"
	kindWatchPlaylist = "watch_playlist"
)

// HomeSection is one titled row of the home feed. Description shelves carry
// text instead of content blocks, so exactly one of Contents and Description
// is populated.
type HomeSection struct {
	Title       string         `json:"title,omitempty"`
	Contents    []ContentBlock `json:"contents,omitempty"`
	Description string         `json:"description,omitempty"`
}
