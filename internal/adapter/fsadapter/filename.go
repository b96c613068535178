package fsadapter

import (
	"path/filepath"
	"strings"

	"github.com/jgivc/weatherdata/internal/entity"
)

const (
	csvExt        = ".csv"
	nameSeparator = "_"

	// UncategorizedVariable groups flat files whose names carry no variable token.
	UncategorizedVariable = "기타"
)

/*
ParseFileName extracts metadata from names shaped like <prefix>_<variable>_<startdate>_<enddate>.csv.

  - Variable is the second token, or UncategorizedVariable when there is only one.
  - StartDate is the second to last token, empty when there is only one.
  - EndDate is the last token.
*/
func ParseFileName(name string) entity.FileNameMeta {
	tokens := strings.Split(strings.TrimSuffix(name, csvExt), nameSeparator)

	meta := entity.FileNameMeta{
		Variable: UncategorizedVariable,
		EndDate:  tokens[len(tokens)-1],
	}

	if len(tokens) >= 2 {
		meta.Variable = NormalizeName(tokens[1])
		meta.StartDate = tokens[len(tokens)-2]
	}

	return meta
}

// InferVariable returns the variable of a file from its path relative to the town.
// A variable directory always wins over the filename token.
func InferVariable(relPath string) string {
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	if len(parts) > 1 {
		return NormalizeName(parts[0])
	}

	return ParseFileName(parts[0]).Variable
}

func isCSV(name string) bool {
	return strings.HasSuffix(name, csvExt)
}
