// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// notAvailable replaces build values the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags into the
// server and quarantinectl binaries.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the version the binary was built with, or "" for a
// local build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// VersionOr returns the build version, or fallback when none was injected.
func (a AppBuildInfo) VersionOr(fallback string) string {
	if a.buildVersion == "" {
		return fallback
	}
	return a.buildVersion
}

// Print writes the three build lines to w. Missing values print as N/A.
func (a AppBuildInfo) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.VersionOr(notAvailable),
		orNotAvailable(a.buildDate),
		orNotAvailable(a.buildCommit),
	)
	return err
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
