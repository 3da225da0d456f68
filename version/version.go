package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
	GoVersion = ""
)

// UncheckedSuffix marks builds compiled without contract checks.
const UncheckedSuffix = "+unchecked"

// Info represents version information.
type Info struct {
	Version          string    `json:"version"`
	GitCommit        string    `json:"git_commit"`
	GitBranch        string    `json:"git_branch"`
	BuildTime        string    `json:"build_time"`
	GoVersion        string    `json:"go_version"`
	BuildDate        time.Time `json:"build_date"`
	IsRelease        bool      `json:"is_release"`
	IsDirty          bool      `json:"is_dirty"`
	ContractsChecked bool      `json:"contracts_checked"`
}

// GetVersionInfo returns the build information, filling gaps from the
// module's embedded build settings.
func GetVersionInfo() *Info {
	info := &Info{
		Version:          Version,
		GitCommit:        GitCommit,
		GitBranch:        GitBranch,
		BuildTime:        BuildTime,
		GoVersion:        GoVersion,
		IsRelease:        Version != "dev" && !strings.Contains(Version, "dirty"),
		ContractsChecked: contract.Enabled,
	}

	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(info, buildInfo)
	}

	if info.BuildDate.IsZero() {
		info.BuildDate = time.Now().UTC()
		info.BuildTime = info.BuildDate.Format(time.RFC3339)
	}

	return info
}

func applyBuildSettings(info *Info, buildInfo *debug.BuildInfo) {
	if info.GoVersion == "" {
		info.GoVersion = buildInfo.GoVersion
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildDate = t
					info.BuildTime = setting.Value
				}
			}
		}
	}
}

// Short returns "version[-commit][-dirty][+unchecked]".
func (i *Info) Short() string {
	s := i.Version
	if i.GitCommit != "" {
		s += "-" + i.GitCommit
		if i.IsDirty {
			s += "-dirty"
		}
	}
	return s + i.suffix()
}

// Full returns the short form plus a non-default branch and the build date.
func (i *Info) Full() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		parts = append(parts, i.GitCommit)
	}
	if i.GitBranch != "" && i.GitBranch != "main" && i.GitBranch != "master" {
		parts = append(parts, i.GitBranch)
	}
	if i.IsDirty {
		parts = append(parts, "dirty")
	}
	s := strings.Join(parts, "-") + i.suffix()
	if !i.BuildDate.IsZero() {
		s += fmt.Sprintf(" (built %s, %s)", i.BuildDate.UTC().Format("2006-01-02T15:04:05Z"), i.GoVersion)
	}
	return s
}

// LogFields returns the fields logged at startup.
func (i *Info) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"version":           i.Short(),
		"go_version":        i.GoVersion,
		"contracts_checked": i.ContractsChecked,
	}
}

func (i *Info) suffix() string {
	if i.ContractsChecked {
		return ""
	}
	return UncheckedSuffix
}

// GetShortVersion returns the short version of the running binary.
func GetShortVersion() string {
	return GetVersionInfo().Short()
}

// GetFullVersion returns the detailed version of the running binary.
func GetFullVersion() string {
	return GetVersionInfo().Full()
}
