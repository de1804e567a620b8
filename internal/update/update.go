// Package update checks for and applies new releases of the chatkit
// demo binary.
package update

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
)

const repo = "okampo/chatkit"

// Result holds the outcome of an update check or apply.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	Applied         bool
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("creating github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source: source,
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
	})
	if err != nil {
		return nil, fmt.Errorf("creating updater: %w", err)
	}
	return updater, nil
}

// newerThan reports whether the release is newer than current. A current
// version that isn't valid semver (e.g. "dev") counts any release as
// newer.
func newerThan(latest *selfupdate.Release, current string) bool {
	if _, err := semver.NewVersion(current); err != nil {
		return true
	}
	return latest.GreaterThan(current)
}

// Check queries GitHub for the latest release and reports whether an
// update is available. Nothing is downloaded.
func Check(ctx context.Context, currentVersion string) (*Result, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("checking for updates: %w", err)
	}

	res := &Result{CurrentVersion: currentVersion}
	if found {
		res.LatestVersion = latest.Version()
		res.UpdateAvailable = newerThan(latest, currentVersion)
	}
	return res, nil
}

// Apply downloads and installs the latest release, replacing the current
// binary in-place. When already up to date it reports that without
// touching the binary.
func Apply(ctx context.Context, currentVersion string) (*Result, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("checking for updates: %w", err)
	}

	res := &Result{CurrentVersion: currentVersion}
	if !found {
		return res, nil
	}
	res.LatestVersion = latest.Version()
	if !newerThan(latest, currentVersion) {
		return res, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("finding executable path: %w", err)
	}
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return nil, fmt.Errorf("applying update: %w", err)
	}

	res.UpdateAvailable = true
	res.Applied = true
	return res, nil
}
