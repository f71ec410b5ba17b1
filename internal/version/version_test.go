package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "brandkit version "+Version) {
		t.Errorf("String() = %q", s)
	}
}

func TestStringWithBuildInfo(t *testing.T) {
	oldCommit, oldDate := Commit, Date
	defer func() { Commit, Date = oldCommit, oldDate }()

	Commit = "0123456789abcdef"
	Date = "2026-10-15T00:00:00Z"

	s := String()
	if !strings.Contains(s, "commit: 01234567") || !strings.Contains(s, Date) {
		t.Errorf("String() = %q, want short commit and date", s)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version || info.GoVersion == "" || info.Platform == "" {
		t.Errorf("GetInfo() = %+v", info)
	}
}

func TestStringShortCommit(t *testing.T) {
	oldCommit, oldDate := Commit, Date
	defer func() { Commit, Date = oldCommit, oldDate }()

	Commit = "abc123"
	Date = "2026-01-01"

	if s := String(); !strings.Contains(s, "commit: abc123,") {
		t.Errorf("String() = %q, want full short commit", s)
	}
}
