package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestRelease(t *testing.T) {
	if !semverRegex.MatchString(Release) {
		t.Errorf("Release %q does not match semver format (x.y.z)", Release)
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "sro "+Release) {
		t.Errorf("String() = %q, want prefix %q", s, "sro "+Release)
	}
	if !strings.Contains(s, "commit "+Commit) {
		t.Errorf("String() = %q, missing commit", s)
	}
}
