package cli

import (
	"time"

	"timebot/internal/store"
	"timebot/internal/week"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// currentWeekFetchParams builds fetch parameters bounded to the current
// calendar week.
func currentWeekFetchParams() store.FetchParams {
	start, end := week.Range(timeNow())
	return store.FetchParams{
		StartDate: start,
		EndDate:   end,
	}
}
