package difffilter

import (
	"strings"
	"testing"
)

const twoSections = `diff --git a/a.txt b/a.txt
index 83db48f..bf269f4 100644
--- a/a.txt
+++ b/a.txt
@@ -1,3 +1,3 @@
 line one
-line two
+line 2
 line three
diff --git a/b.log b/b.log
index 9daeafb..dec2cbe 100644
--- a/b.log
+++ b/b.log
@@ -1 +1 @@
-old entry
+new entry
`

func neverIgnored(string) bool { return false }

func TestFilterIgnored_Identity(t *testing.T) {
	for _, raw := range []string{twoSections, "", "stray line\n", strings.TrimSuffix(twoSections, "\n")} {
		got := FilterIgnored(raw, neverIgnored)
		if got != raw {
			t.Errorf("FilterIgnored with never-matching predicate changed input:\ngot  %q\nwant %q", got, raw)
		}
	}
}

func TestFilterIgnored_DropsIgnoredSection(t *testing.T) {
	got := FilterIgnored(twoSections, func(path string) bool { return path == "b.log" })

	if strings.Contains(got, "b.log") {
		t.Error("output should contain zero lines referencing b.log")
	}
	want := strings.SplitAfter(twoSections, "diff --git a/b.log")[0]
	want = strings.TrimSuffix(want, "diff --git a/b.log")
	if got != want {
		t.Errorf("a.txt section should survive verbatim:\ngot  %q\nwant %q", got, want)
	}
}

func TestFilterIgnored_DropsFirstSection(t *testing.T) {
	got := FilterIgnored(twoSections, func(path string) bool { return path == "a.txt" })

	if strings.Contains(got, "a.txt") {
		t.Error("output should not reference a.txt")
	}
	if !strings.HasPrefix(got, "diff --git a/b.log b/b.log\n") {
		t.Errorf("output should start at the b.log marker, got %q", got)
	}
}

func TestFilterIgnored_AllIgnored(t *testing.T) {
	got := FilterIgnored(twoSections, func(string) bool { return true })
	if got != "" {
		t.Errorf("all sections ignored should yield empty output, got %q", got)
	}
}

func TestFilterIgnored_Empty(t *testing.T) {
	if got := FilterIgnored("", func(string) bool { return true }); got != "" {
		t.Errorf("empty input should yield empty output, got %q", got)
	}
}

func TestFilterIgnored_PrefixPassesThrough(t *testing.T) {
	raw := "warning: something\n" + twoSections
	got := FilterIgnored(raw, func(path string) bool { return path == "b.log" })
	if !strings.HasPrefix(got, "warning: something\n") {
		t.Errorf("lines before the first marker should pass through, got %q", got)
	}
}

func TestFilterIgnored_StableOnIgnoredDifference(t *testing.T) {
	ignoreB := func(path string) bool { return path == "b.log" }
	onlyA := strings.SplitAfter(twoSections, "+line 2\n line three\n")[0]

	if FilterIgnored(twoSections, ignoreB) != FilterIgnored(onlyA, ignoreB) {
		t.Error("inputs differing only in an ignored section should filter identically")
	}
}

func TestFilterIgnored_DeletionUsesSourcePath(t *testing.T) {
	deletion := `diff --git a/gone.txt b/gone.txt
deleted file mode 100644
index 83db48f..0000000
--- a/gone.txt
+++ /dev/null
@@ -1 +0,0 @@
-content
`
	got := FilterIgnored(deletion, func(path string) bool { return path == "gone.txt" })
	if got != "" {
		t.Errorf("deleted-file section should be matched by its source path, got %q", got)
	}
}

func TestScan_Sections(t *testing.T) {
	prefix, sections := Scan(twoSections)
	if len(prefix) != 0 {
		t.Errorf("prefix = %v, want none", prefix)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].SourcePath != "a.txt" || sections[0].DestPath != "a.txt" {
		t.Errorf("sections[0] paths = %q/%q, want a.txt/a.txt", sections[0].SourcePath, sections[0].DestPath)
	}
	if sections[1].EffectivePath() != "b.log" {
		t.Errorf("sections[1].EffectivePath() = %q, want b.log", sections[1].EffectivePath())
	}
	if sections[0].Lines[0] != "diff --git a/a.txt b/a.txt" {
		t.Errorf("section should include its marker line, got %q", sections[0].Lines[0])
	}
}

func TestScan_Empty(t *testing.T) {
	prefix, sections := Scan("")
	if prefix != nil || sections != nil {
		t.Errorf("Scan(\"\") = %v, %v, want nil, nil", prefix, sections)
	}
}

func TestScan_SectionCountNeverGrows(t *testing.T) {
	_, in := Scan(twoSections)
	filtered := FilterIgnored(twoSections, func(path string) bool { return path == "a.txt" })
	_, out := Scan(filtered)
	if len(out) > len(in) {
		t.Errorf("output has %d sections, input %d", len(out), len(in))
	}
}

func TestEffectivePath(t *testing.T) {
	tests := []struct {
		name string
		s    Section
		want string
	}{
		{"modification", Section{SourcePath: "a.go", DestPath: "a.go"}, "a.go"},
		{"rename", Section{SourcePath: "old.go", DestPath: "new.go"}, "new.go"},
		{"deletion", Section{SourcePath: "a.go", DestPath: NoFile}, "a.go"},
		{"addition", Section{SourcePath: NoFile, DestPath: "a.go"}, "a.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.EffectivePath(); got != tt.want {
				t.Errorf("EffectivePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMarker(t *testing.T) {
	src, dst, ok := parseMarker("diff --git a/src/main.go b/src/main.go")
	if !ok {
		t.Fatal("expected marker to parse")
	}
	if src != "src/main.go" || dst != "src/main.go" {
		t.Errorf("parseMarker = %q, %q", src, dst)
	}

	for _, line := range []string{"", "index 83db48f..bf269f4", "+++ b/a.txt", "diff --git malformed"} {
		if _, _, ok := parseMarker(line); ok {
			t.Errorf("parseMarker(%q) should not parse", line)
		}
	}
}
