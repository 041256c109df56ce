// Package version exposes the git metadata embedded at build time.
package version

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && echo clean > dirty.txt || echo dirty > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// Info is the git state the binary was built from.
type Info struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = parse(commit, branch, tag, dirty)

func parse(commit, branch, tag, dirty string) Info {
	return Info{
		Commit: strings.TrimSpace(commit),
		Branch: strings.TrimSpace(branch),
		Tag:    strings.TrimSpace(tag),
		Dirty:  strings.TrimSpace(dirty) == "dirty",
	}
}

// GetGitInfo returns the embedded git metadata.
func GetGitInfo() Info {
	return info
}

// String renders the tag and short commit, marking dirty builds.
func (i Info) String() string {
	c := i.Commit
	if len(c) > 12 {
		c = c[:12]
	}
	s := fmt.Sprintf("%s (%s, %s)", i.Tag, c, i.Branch)
	if i.Dirty {
		s += " dirty"
	}
	return s
}
