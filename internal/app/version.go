package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are injected with -ldflags, e.g.
// -X github.com/heartmarshall/myenglish-srs/internal/app.Version=1.2.0
// Commit and BuildTime fall back to the VCS stamp embedded by `go build`.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion formats version, commit and build time for logs and the CLI.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := vcsStamp()
		if commit == "" {
			commit = vcsCommit
		}
		if built == "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp() (commit, at string) {
	commit, at = "unknown", "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, at
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 12 {
				s.Value = s.Value[:12]
			}
			commit = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return commit, at
}
