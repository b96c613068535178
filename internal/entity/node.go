package entity

// Node is a directory at one level of the hierarchy (forecast type, city, district or town).
type Node struct {
	Name string `json:"name"` // NFC normalized directory name
	Path string `json:"path"`
}

// Variable is a subdirectory of a town holding CSV files of one weather quantity.
type Variable struct {
	Name      string `json:"name"`
	FileCount int    `json:"file_count"`
	Path      string `json:"path"`
}

// Location identifies a variable directory by its chain of path segments.
type Location struct {
	ForecastType string
	City         string
	District     string
	Town         string
	Variable     string
}

// Segments returns the path segments in hierarchy order.
func (l Location) Segments() []string {
	return []string{l.ForecastType, l.City, l.District, l.Town, l.Variable}
}
