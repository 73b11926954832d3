package ytmusic

// FetchFunc issues one browse request against the already-authenticated
// channel. additionalParams carries the echoed continuation token ("" for a
// first page); remaining is the advisory number of rows still wanted. Any
// error is fatal to the remaining pages.
type FetchFunc func(additionalParams string, remaining int) (map[string]interface{}, error)

// continuationToken pulls the next-page token out of a section list
// container, "" when the server signalled end of data.
func continuationToken(results map[string]interface{}) string {
	return optionalString(results, pathContinuationToken)
}

// continuationParams formats a token the way the endpoint expects it echoed
// back.
func continuationParams(token string) string {
	return "&ctoken=" + token + "&continuation=" + token
}

// continuationContents finds the rows of a continuation page; they arrive
// under contents or items depending on the shelf kind.
func continuationContents(results map[string]interface{}) []interface{} {
	for _, key := range []string{"contents", "items"} {
		if rows, ok := results[key].([]interface{}); ok {
			return rows
		}
	}
	return nil
}

// getContinuations keeps fetching pages until limit sections have been
// collected or a container arrives without a further token. The limit only
// gates the next fetch: a fetched page is appended whole, so the merged list
// can overshoot by up to one page of rows. Fetching is sequential by nature,
// the token for page N+1 only exists after parsing page N.
func getContinuations(results map[string]interface{}, limit int, fetch FetchFunc) ([]HomeSection, error) {
	var sections []HomeSection

	for len(sections) < limit {
		token := continuationToken(results)
		if token == "" {
			break
		}

		page, err := fetch(continuationParams(token), limit-len(sections))
		if err != nil {
			return nil, err
		}

		next, ok := NavigateOptional(page, pathSectionListContinuation).(map[string]interface{})
		if !ok {
			break
		}
		results = next

		rows := continuationContents(next)
		if rows == nil {
			break
		}
		parsed, err := parseMixedContent(rows)
		if err != nil {
			return nil, err
		}
		if len(parsed) == 0 {
			break
		}
		sections = append(sections, parsed...)
	}

	return sections, nil
}
