package version

import "fmt"

// Set at build time via -ldflags "-X github.com/go-authgate/tokengate/internal/version.Version=..."
var (
	App       = "TokenGate"
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	BuildOS   string
	BuildArch string
)

// String returns a one-line identifier such as "TokenGate v1.0.0 (abc1234)"
func String() string {
	s := App + " " + getVersion()
	if GitCommit != "" {
		s += " (" + getShortCommit() + ")"
	}
	return s
}

// PrintVersion prints the version information
func PrintVersion() {
	fmt.Println(String())
	if BuildTime != "" {
		fmt.Printf("Build time: %s\n", BuildTime)
	}
	if GoVersion != "" {
		fmt.Printf("Go version: %s\n", GoVersion)
	}
	if BuildOS != "" && BuildArch != "" {
		fmt.Printf("Built for: %s/%s\n", BuildOS, BuildArch)
	}
}

func getShortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return "dev"
}
