package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind is the presentation tag for one diff line.
type Kind int

const (
	KindPlain Kind = iota
	KindAddition
	KindDeletion
	KindHunk
	KindFileHeader
	KindMeta
)

// Line pairs a diff line with its presentation tag.
type Line struct {
	Text string
	Kind Kind
}

var styles = map[Kind]lipgloss.Style{
	KindAddition:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	KindDeletion:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	KindHunk:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	KindFileHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	KindMeta:       lipgloss.NewStyle().Faint(true),
}

// Classify maps a line to its kind by prefix. "+++"/"---" path header lines
// classify as addition/deletion like the reference tool.
func Classify(line string) Kind {
	switch {
	case strings.HasPrefix(line, "diff --git"):
		return KindFileHeader
	case strings.HasPrefix(line, "@@"):
		return KindHunk
	case strings.HasPrefix(line, "index"):
		return KindMeta
	case strings.HasPrefix(line, "+"):
		return KindAddition
	case strings.HasPrefix(line, "-"):
		return KindDeletion
	default:
		return KindPlain
	}
}

// Tag splits diff text into tagged lines. Empty input yields no lines.
func Tag(diff string) []Line {
	if diff == "" {
		return nil
	}
	raw := strings.Split(diff, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: text, Kind: Classify(text)}
	}
	return lines
}

// Render colorizes diff text per line kind. With colorize false the input is
// returned unchanged.
func Render(diff string, colorize bool) string {
	if !colorize || diff == "" {
		return diff
	}
	lines := Tag(diff)
	parts := make([]string, len(lines))
	for i, line := range lines {
		if line.Kind == KindPlain || line.Text == "" {
			parts[i] = line.Text
			continue
		}
		parts[i] = styles[line.Kind].Render(line.Text)
	}
	return strings.Join(parts, "\n")
}
