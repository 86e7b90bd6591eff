package main

import "testing"

func TestWindowTitleShowsFileAndMode(t *testing.T) {
	got := windowTitle("report.pdf", "annotate")
	if want := "vecdraw - report.pdf - annotate"; got != want {
		t.Fatalf("windowTitle = %q, want %q", got, want)
	}
}

func TestWindowTitleSkipsBlankParts(t *testing.T) {
	if got, want := windowTitle("", ""), "vecdraw"; got != want {
		t.Fatalf("windowTitle = %q, want %q", got, want)
	}
	if got, want := windowTitle("  ", "edit"), "vecdraw - edit"; got != want {
		t.Fatalf("windowTitle = %q, want %q", got, want)
	}
}

func TestWindowTitleCarriesReleaseVersion(t *testing.T) {
	old := version
	version = "1.2.0"
	t.Cleanup(func() { version = old })

	if got, want := windowTitle("a.png", ""), "vecdraw - a.png - v1.2.0"; got != want {
		t.Fatalf("windowTitle = %q, want %q", got, want)
	}
}

func TestBuildVersionFoldsReleaseMetadata(t *testing.T) {
	oldV, oldC, oldD := version, commit, date
	version, commit, date = "1.2.0", "abc1234", "2026-08-01"
	t.Cleanup(func() { version, commit, date = oldV, oldC, oldD })

	if got, want := buildVersion(), "1.2.0 (abc1234) built 2026-08-01"; got != want {
		t.Fatalf("buildVersion = %q, want %q", got, want)
	}
}
