// Package version describes the running build of faang.
package version

import (
	"fmt"
	"runtime"
)

// Build variables, overridden with -ldflags "-X" at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info contains version information about the faang binary.
type Info struct {
	Version string `json:"version"    yaml:"version"`
	Commit  string `json:"commit"     yaml:"commit"`
	Date    string `json:"date"       yaml:"date"`
	GoVer   string `json:"go_version" yaml:"go_version"`
	OS      string `json:"os"         yaml:"os"`
	Arch    string `json:"arch"       yaml:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// Current returns the Info for this binary.
func Current() *Info {
	return NewInfo(Version, Commit, Date)
}

// Banner returns the one-line version announcement.
func (i *Info) Banner() string {
	return "FAANG Interview CLI version: " + i.Version
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`%s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Banner(), i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}
