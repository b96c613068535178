package httphandler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
)

const (
	paramForecastType = "forecast_type"
	paramCity         = "city"
	paramDistrict     = "district"
	paramTown         = "town"
	paramVariable     = "variable"
	paramFilename     = "filename"
	paramLines        = "lines"

	defaultPreviewLines = 30
	minPreviewLines     = 1
	maxPreviewLines     = 200
)

// query collects required parameters and reports all problems at once.
type query struct {
	values   url.Values
	problems []string
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) required(name string) string {
	v := q.values.Get(name)
	if v == "" {
		q.problems = append(q.problems, "missing query parameter: "+name)
	}

	return v
}

func (q *query) town() entity.Location {
	return entity.Location{
		ForecastType: q.required(paramForecastType),
		City:         q.required(paramCity),
		District:     q.required(paramDistrict),
		Town:         q.required(paramTown),
	}
}

func (q *query) variable() entity.Location {
	loc := q.town()
	loc.Variable = q.required(paramVariable)

	return loc
}

func (q *query) lines() int {
	v := q.values.Get(paramLines)
	if v == "" {
		return defaultPreviewLines
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < minPreviewLines || n > maxPreviewLines {
		q.problems = append(q.problems, "query parameter lines must be an integer between "+
			strconv.Itoa(minPreviewLines)+" and "+strconv.Itoa(maxPreviewLines))

		return defaultPreviewLines
	}

	return n
}

func (q *query) err() error {
	if len(q.problems) == 0 {
		return nil
	}

	return common.BadRequestError("%s", strings.Join(q.problems, "; "))
}
