package ytmusic

// findFirstByKey scans items in order for the first object containing key.
// When nested is non-empty the object is unwrapped through that sub-field
// before the check. When unwrap is true the key's value is returned rather
// than the containing object. Returns nil when nothing matches.
func findFirstByKey(items []interface{}, key, nested string, unwrap bool) interface{} {
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if nested != "" {
			if obj, ok = obj[nested].(map[string]interface{}); !ok {
				continue
			}
		}
		v, ok := obj[key]
		if !ok {
			continue
		}
		if unwrap {
			return v
		}
		return obj
	}
	return nil
}

// findAllByKey is the same scan collecting every object containing key,
// order preserved.
func findAllByKey(items []interface{}, key string) []interface{} {
	var found []interface{}
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := obj[key]; ok {
			found = append(found, obj)
		}
	}
	return found
}
