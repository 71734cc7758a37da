// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import "fmt"

var (
	// commitSHA is the source revision that produced this build,
	// set during build via -ldflags.
	commitSHA string
	// latestVersion is the version tag that produced this build,
	// set during build via -ldflags.
	latestVersion string
	// date is the build date in ISO8601 format, set during build via -ldflags.
	date string
)

// Info holds build information.
type Info struct {
	GitCommit  string `json:"gitCommit"`
	GitVersion string `json:"gitVersion"`
	BuildDate  string `json:"buildDate"`
}

// Get creates and initialized Info object.
func Get() Info {
	return Info{
		GitCommit:  commitSHA,
		GitVersion: latestVersion,
		BuildDate:  date,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("git-commit=%s, git-version=%s, build-date=%s",
		i.GitCommit, i.GitVersion, i.BuildDate)
}
