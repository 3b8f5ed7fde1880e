package glossary

// MergeMeanings combines the base and uploaded meanings into a new map.
// With preferUploaded, uploaded entries overwrite base entries with the
// same abbreviation; otherwise base entries win. Neither input is modified.
func MergeMeanings(base, uploaded map[string]string, preferUploaded bool) map[string]string {
	out := make(map[string]string, len(base)+len(uploaded))
	first, second := uploaded, base
	if preferUploaded {
		first, second = base, uploaded
	}
	for k, v := range first {
		out[k] = v
	}
	for k, v := range second {
		out[k] = v
	}
	return out
}
