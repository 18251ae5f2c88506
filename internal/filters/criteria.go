package filters

import (
	"time"

	"github.com/loxinchi/NEO-project/internal/model"
)

// Criteria holds optional query bounds; nil fields are ignored.
type Criteria struct {
	Date        *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	DistanceMin *float64
	DistanceMax *float64
	VelocityMin *float64
	VelocityMax *float64
	DiameterMin *float64
	DiameterMax *float64
	Hazardous   *bool
}

// Create turns criteria into filters. Dates are compared by calendar day only.
func Create(c Criteria) []Filter {
	var fs []Filter

	addDate := func(op Op, t *time.Time) {
		if t == nil {
			return
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		fs = append(fs, AttributeFilter[time.Time]{name: "date", op: op, value: day, get: date, cmp: compareTime})
	}
	addFloat := func(name string, op Op, v *float64, get attribute[float64]) {
		if v == nil {
			return
		}
		fs = append(fs, AttributeFilter[float64]{name: name, op: op, value: *v, get: get, cmp: compareFloat})
	}

	addDate(Eq, c.Date)
	addDate(Ge, c.StartDate)
	addDate(Le, c.EndDate)
	addFloat("distance", Ge, c.DistanceMin, distance)
	addFloat("distance", Le, c.DistanceMax, distance)
	addFloat("velocity", Ge, c.VelocityMin, velocity)
	addFloat("velocity", Le, c.VelocityMax, velocity)
	addFloat("diameter", Ge, c.DiameterMin, diameter)
	addFloat("diameter", Le, c.DiameterMax, diameter)
	if c.Hazardous != nil {
		fs = append(fs, AttributeFilter[bool]{name: "hazardous", op: Eq, value: *c.Hazardous, get: hazardous, cmp: compareBool})
	}
	return fs
}

// Limit returns at most n approaches; n <= 0 means all of them.
func Limit(approaches []*model.CloseApproach, n int) []*model.CloseApproach {
	if n <= 0 || n >= len(approaches) {
		return approaches
	}
	return approaches[:n]
}
