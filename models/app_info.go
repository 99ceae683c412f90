// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const notAvailable = "N/A"

// AppInfo describes the running binary. It is served by /api/version and
// printed on start.
//
// Build values are injected by linker flags; empty ones are reported as
// "N/A".
type AppInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// NewAppInfo constructs [AppInfo], replacing empty values with "N/A".
func NewAppInfo(version, buildDate, buildCommit string) AppInfo {
	return AppInfo{
		Version:     orNotAvailable(version),
		BuildDate:   orNotAvailable(buildDate),
		BuildCommit: orNotAvailable(buildCommit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
