package ytmusic

import (
	"regexp"
	"strconv"
	"strings"
)

// separatorRun is the literal run YouTube Music inserts between subtitle
// fields.
const separatorRun = " • "

var (
	viewsRE    = regexp.MustCompile(`^\d([^ ])* [^ ]*$`)
	durationRE = regexp.MustCompile(`^(\d+:)*\d+:\d+$`)
	yearRE     = regexp.MustCompile(`^\d{4}$`)
)

type runKind int

const (
	runArtist runKind = iota
	runAlbum
	runViews
	runDuration
	runYear
)

// runValue is the classification of a single subtitle run.
type runValue struct {
	kind runKind
	name string // artist/album display text
	id   string // browse id when the run carried an endpoint
	text string // raw text for views/duration/year
}

// classifyRun decides what one subtitle run denotes. Evaluation order is
// significant: a browse endpoint always wins, then views before duration
// before year, and anything left over is an artist without an id.
func classifyRun(run map[string]interface{}) runValue {
	text := optionalString(run, pathRunText)
	if id := optionalString(run, pathNavigationBrowseID); id != "" {
		if strings.HasPrefix(id, "MPRE") || strings.Contains(id, "release_detail") {
			return runValue{kind: runAlbum, name: text, id: id}
		}
		return runValue{kind: runArtist, name: text, id: id}
	}
	switch {
	case viewsRE.MatchString(text):
		return runValue{kind: runViews, text: strings.SplitN(text, " ", 2)[0]}
	case durationRE.MatchString(text):
		return runValue{kind: runDuration, text: text}
	case yearRE.MatchString(text):
		return runValue{kind: runYear, text: text}
	default:
		return runValue{kind: runArtist, name: text}
	}
}

// parseSongRuns folds an alternating run/separator sequence into SongRuns.
// Odd indices are separators and never inspected. With skipTypeSpec a
// leading type label ("Song", "Video", ...) followed by the canonical
// separator and a further artist-classified run is dropped before folding,
// so the label never surfaces as an artist.
func parseSongRuns(runs []interface{}, skipTypeSpec bool) SongRuns {
	if skipTypeSpec && len(runs) > 2 {
		first, _ := runs[0].(map[string]interface{})
		third, _ := runs[2].(map[string]interface{})
		sep := optionalString(runs[1], pathRunText)
		if classifyRun(first).kind == runArtist &&
			strings.TrimSpace(sep) == strings.TrimSpace(separatorRun) &&
			classifyRun(third).kind == runArtist {
			runs = runs[2:]
		}
	}

	var parsed SongRuns
	for i, raw := range runs {
		if i%2 == 1 {
			continue
		}
		run, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		switch v := classifyRun(run); v.kind {
		case runArtist:
			parsed.Artists = append(parsed.Artists, ArtistRef{Name: v.name, ID: v.id})
		case runAlbum:
			parsed.Album = &AlbumRef{Name: v.name, ID: v.id}
		case runViews:
			parsed.Views = v.text
		case runDuration:
			parsed.Duration = v.text
			parsed.DurationSeconds = durationSeconds(v.text)
		case runYear:
			parsed.Year = v.text
		}
	}
	return parsed
}

// durationSeconds converts an "H:MM:SS" or "MM:SS" label into total seconds.
func durationSeconds(label string) int {
	parts := strings.Split(label, ":")

	var hours, minutes, seconds int

	if len(parts) == 3 {
		hours = getInt(parts[0])
		minutes = getInt(parts[1])
		seconds = getInt(parts[2])
	} else if len(parts) == 2 {
		minutes = getInt(parts[0])
		seconds = getInt(parts[1])
	} else {
		return 0
	}

	return hours*3600 + minutes*60 + seconds
}

func getInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// dotSeparatorIndex reports the index of the first literal separator run, or
// len(runs) when none is present.
func dotSeparatorIndex(runs []interface{}) int {
	for i, raw := range runs {
		if optionalString(raw, pathRunText) == separatorRun {
			return i
		}
	}
	return len(runs)
}
