package main

import "fmt"

var (
	// BuildTag set at build time, empty if not a tagged version
	BuildTag string
	// BuildTime set at build time
	BuildTime string
	// BuildSHA set at build time
	BuildSHA string
)

type version struct {
	tag  string
	time string
	sha  string
}

func getVersion() version {
	tag := BuildTag
	if tag == "" {
		tag = "dev"
	}
	sha := BuildSHA
	if sha == "" {
		sha = "unknown"
	}
	return version{tag: tag, time: BuildTime, sha: sha}
}

// String returns <tag>-<sha>.
func (v version) String() string {
	return fmt.Sprintf("%s-%s", v.tag, v.sha)
}
