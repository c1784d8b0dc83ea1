// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the version metadata linked into a binary with -ldflags -X.
// Any part left empty at link time prints as N/A.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo trims the linked values and stores them as given.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// HasVersion reports whether a version was linked into the binary.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != ""
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// String formats the metadata as "version (date, commit)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
