package buildinfo

import "testing"

func TestShortPrefersVersion(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v1.2.3", "0123456789abcdef"
	if got := Short(); got != "v1.2.3" {
		t.Fatalf("Short() = %q, want v1.2.3", got)
	}

	Version = "dev"
	if got := Short(); got != "0123456" {
		t.Fatalf("Short() = %q, want shortened commit", got)
	}
	if got := Title("demo"); got != "demo (0123456)" {
		t.Fatalf("Title() = %q", got)
	}
}
