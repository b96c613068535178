package entity

// Preview holds the first lines of a file and the encoding they were decoded with.
type Preview struct {
	Lines    []string
	Encoding string
	Size     int64
	SizeMB   float64
}
