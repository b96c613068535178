package entity

import "math"

const bytesInMB = 1024 * 1024

// File represents a single CSV file found under a town.
type File struct {
	Filename  string  `json:"filename"`
	Path      string  `json:"path"`       // Absolute path to the file on disk
	Size      int64   `json:"size"`       // The size of the file in bytes
	SizeMB    float64 `json:"size_mb"`    // Size in MiB rounded to 2 decimals
	StartDate string  `json:"start_date"` // Second to last underscore token of the name
	EndDate   string  `json:"end_date"`   // Last underscore token of the name
	Modified  float64 `json:"modified"`   // Unix time in seconds
}

// FileNameMeta is what the naming convention tells about a file.
type FileNameMeta struct {
	Variable  string
	StartDate string
	EndDate   string
}

// SizeMB converts bytes to MiB rounded to 2 decimals.
func SizeMB(size int64) float64 {
	return math.Round(float64(size)/bytesInMB*100) / 100
}
