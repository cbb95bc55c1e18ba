package capture

import (
	"fmt"
	"strings"
)

// segmentMarker identifies playlist lines that reference an audio segment.
const segmentMarker = ".aac"

// ParsePlaylist extracts segment references from raw playlist text, in
// playlist order. Any line containing an .aac resource counts as a
// reference; tag lines and blanks are ignored. A playlist with no segment
// lines yields an empty slice, not an error.
func ParsePlaylist(raw string) []string {
	var refs []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, segmentMarker) {
			refs = append(refs, line)
		}
	}
	return refs
}

// ExtractSegmentID pulls the timestamp token out of a segment reference:
// the third underscore-delimited field, cut at the first dot. For
// "media_001_20240101T0005.aac" that is "20240101T0005". References with
// fewer than three fields fail with ErrMalformedSegmentRef.
func ExtractSegmentID(ref string) (SegmentID, error) {
	fields := strings.Split(ref, "_")
	if len(fields) < 3 {
		return "", fmt.Errorf("%w: %q", ErrMalformedSegmentRef, ref)
	}
	token := fields[2]
	if i := strings.IndexByte(token, '.'); i >= 0 {
		token = token[:i]
	}
	return SegmentID(token), nil
}
