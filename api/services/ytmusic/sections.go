package ytmusic

import "strings"

// parseMixedContent turns raw section rows into titled home sections. Rows
// whose unwrapped value has no contents contribute nothing, and items the
// classifier does not recognize are silently omitted; both are expected from
// an unversioned remote schema.
func parseMixedContent(rows []interface{}) ([]HomeSection, error) {
	sections := make([]HomeSection, 0, len(rows))

	for _, raw := range rows {
		row, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		if shelf, ok := row[descriptionShelfRenderer].(map[string]interface{}); ok {
			section, err := parseDescriptionShelf(shelf)
			if err != nil {
				return nil, err
			}
			sections = append(sections, section)
			continue
		}

		// every other row wraps its renderer in a single key
		var results map[string]interface{}
		for _, v := range row {
			results, _ = v.(map[string]interface{})
			break
		}
		if results == nil {
			continue
		}
		contents, ok := results["contents"].([]interface{})
		if !ok {
			continue
		}

		section := HomeSection{Title: optionalString(results, pathCarouselTitle)}
		for _, item := range contents {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			block, err := classifyContent(entry)
			if err != nil {
				return nil, err
			}
			if block != nil {
				section.Contents = append(section.Contents, block)
			}
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// parseDescriptionShelf decodes the one row kind whose contents is text.
func parseDescriptionShelf(shelf map[string]interface{}) (HomeSection, error) {
	title, err := navigateString(shelf, pathHeaderRunText)
	if err != nil {
		return HomeSection{}, err
	}

	var texts []string
	if runs, ok := NavigateOptional(shelf, pathDescriptionRuns).([]interface{}); ok {
		for _, raw := range runs {
			texts = append(texts, optionalString(raw, pathRunText))
		}
	}

	return HomeSection{Title: title, Description: strings.Join(texts, "")}, nil
}
