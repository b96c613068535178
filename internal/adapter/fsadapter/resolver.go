package fsadapter

import (
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dataDirName        = "nas-weather-data"
	defaultMountPath   = "/" + dataDirName
	alternateMountPath = "/Volumes/" + dataDirName
)

// RootCandidates returns the locations searched for the data hierarchy, in order.
func RootCandidates(envPath, deployDir string) []string {
	var candidates []string
	if envPath != "" {
		candidates = append(candidates, envPath)
	}

	candidates = append(candidates, defaultMountPath, alternateMountPath)
	if deployDir != "" {
		candidates = append(candidates, filepath.Join(deployDir, dataDirName))
	}

	return candidates
}

// ResolveRoot returns the first candidate that exists. If none does, the first
// candidate is returned anyway and requests against it fail later with not found.
func ResolveRoot(fs afero.Fs, candidates []string) string {
	for _, candidate := range candidates {
		// Permission errors count as absence.
		if exists, err := afero.Exists(fs, candidate); err == nil && exists {
			return candidate
		}
	}

	if len(candidates) == 0 {
		return defaultMountPath
	}

	return candidates[0]
}
