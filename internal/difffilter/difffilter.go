package difffilter

import "strings"

// NoFile is the sentinel git uses for an absent side of a diff (additions
// and deletions).
const NoFile = "/dev/null"

const markerPrefix = "diff --git "

// Section is one file's block of a unified diff: the marker line and
// everything up to the next marker or end of input.
type Section struct {
	SourcePath string
	DestPath   string
	Lines      []string
}

// EffectivePath is the path a section is attributed to: the destination
// unless it is absent (a deletion), in which case the source.
func (s Section) EffectivePath() string {
	if s.DestPath == NoFile {
		return s.SourcePath
	}
	return s.DestPath
}

// parseMarker splits a "diff --git a/<old> b/<new>" line into its two path
// tokens. Paths containing the literal " b/" separator are not disambiguated.
func parseMarker(line string) (src, dst string, ok bool) {
	if !strings.HasPrefix(line, markerPrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(line, markerPrefix)
	i := strings.Index(rest, " b/")
	if i < 0 || !strings.HasPrefix(rest, "a/") {
		return "", "", false
	}
	return rest[len("a/"):i], rest[i+len(" b/"):], true
}

// updatePaths folds a section body line into the section's path state. The
// marker line carries both paths, but for additions and deletions the absent
// side only shows up on the "---"/"+++" header lines as /dev/null.
func (s *Section) updatePaths(line string) {
	switch line {
	case "--- " + NoFile:
		s.SourcePath = NoFile
	case "+++ " + NoFile:
		s.DestPath = NoFile
	}
}

// Scan parses raw diff text into its sections. Lines before the first marker
// are returned separately as the prefix; well-formed input has none.
func Scan(raw string) (prefix []string, sections []Section) {
	if raw == "" {
		return nil, nil
	}
	state := outsideSection
	var current Section
	for _, line := range strings.Split(raw, "\n") {
		if src, dst, ok := parseMarker(line); ok {
			if state == insideSection {
				sections = append(sections, current)
			}
			state = insideSection
			current = Section{SourcePath: src, DestPath: dst, Lines: []string{line}}
			continue
		}
		switch state {
		case outsideSection:
			prefix = append(prefix, line)
		case insideSection:
			current.updatePaths(line)
			current.Lines = append(current.Lines, line)
		}
	}
	if state == insideSection {
		sections = append(sections, current)
	}
	return prefix, sections
}

// scanState drives the marker scan: either before any marker has been seen,
// or collecting lines for the current section.
type scanState int

const (
	outsideSection scanState = iota
	insideSection
)

// FilterIgnored drops every section of raw whose effective path satisfies
// isIgnored and returns the rest unchanged. Single linear pass; relative
// order of retained sections is preserved and retained bytes are untouched.
func FilterIgnored(raw string, isIgnored func(path string) bool) string {
	if raw == "" {
		return ""
	}

	var out strings.Builder
	var section strings.Builder
	var current Section
	state := outsideSection

	flush := func() {
		if section.Len() == 0 {
			return
		}
		if !isIgnored(current.EffectivePath()) {
			out.WriteString(section.String())
		}
		section.Reset()
	}

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		chunk := line
		if i < len(lines)-1 {
			chunk += "\n"
		}
		if src, dst, ok := parseMarker(line); ok {
			flush()
			state = insideSection
			current = Section{SourcePath: src, DestPath: dst}
			section.WriteString(chunk)
			continue
		}
		switch state {
		case outsideSection:
			out.WriteString(chunk)
		case insideSection:
			current.updatePaths(line)
			section.WriteString(chunk)
		}
	}
	flush()

	return out.String()
}
