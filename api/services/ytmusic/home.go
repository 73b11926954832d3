package ytmusic

// DefaultHomeLimit is how many home rows a request asks for when the caller
// does not say.
const DefaultHomeLimit = 3

// GetHome fetches the home feed for the given session and merges
// continuation pages until limit rows have been collected or the feed ends.
// A structurally required field missing on any page surfaces as a
// *NavigationError; unrecognized rows and items are dropped instead.
func GetHome(sessionID string, limit int) ([]HomeSection, error) {
	return getHome(func(additionalParams string, remaining int) (map[string]interface{}, error) {
		return browseHome(sessionID, additionalParams, remaining)
	}, limit)
}

func getHome(fetch FetchFunc, limit int) ([]HomeSection, error) {
	if limit <= 0 {
		limit = DefaultHomeLimit
	}

	response, err := fetch("", limit)
	if err != nil {
		return nil, err
	}

	rowsNode, err := Navigate(response, pathSectionList)
	if err != nil {
		return nil, err
	}
	rows, _ := rowsNode.([]interface{})

	home, err := parseMixedContent(rows)
	if err != nil {
		return nil, err
	}

	sectionList, ok := NavigateOptional(response, pathSectionListRenderer).(map[string]interface{})
	if !ok {
		return home, nil
	}

	more, err := getContinuations(sectionList, limit-len(home), fetch)
	if err != nil {
		return nil, err
	}
	return append(home, more...), nil
}
