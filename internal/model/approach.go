package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ApproachParams holds the raw fields of one close-approach row.
type ApproachParams struct {
	Time        string
	Designation string
	Distance    string
	Velocity    string
	NEO         *NearEarthObject
}

// CloseApproach is one close approach to Earth by an NEO.
type CloseApproach struct {
	time        time.Time
	designation string
	distance    float64
	velocity    float64
	neo         *NearEarthObject
}

// NewCloseApproach parses the raw fields of a close approach. Any field that
// fails to parse returns a *ParseError and no record.
func NewCloseApproach(p ApproachParams) (*CloseApproach, error) {
	t, err := ParseApproachTime(p.Time)
	if err != nil {
		return nil, err
	}
	distance, err := parseMeasure("distance", p.Distance)
	if err != nil {
		return nil, err
	}
	velocity, err := parseMeasure("velocity", p.Velocity)
	if err != nil {
		return nil, err
	}
	return &CloseApproach{
		time:        t,
		designation: p.Designation,
		distance:    distance,
		velocity:    velocity,
		neo:         p.NEO,
	}, nil
}

// parseMeasure parses a numeric field, treating an empty value as 0.
func parseMeasure(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: s, Err: err}
	}
	return v, nil
}

// Time returns the approach time in UTC.
func (c *CloseApproach) Time() time.Time { return c.time }

// Designation returns the designation of the NEO this approach was recorded for.
func (c *CloseApproach) Designation() string { return c.designation }

// Distance returns the nominal approach distance in au.
func (c *CloseApproach) Distance() float64 { return c.distance }

// Velocity returns the relative approach velocity in km/s.
func (c *CloseApproach) Velocity() float64 { return c.velocity }

// NEO returns the linked NEO, or nil before linking.
func (c *CloseApproach) NEO() *NearEarthObject { return c.neo }

// Link sets the back-reference to the NEO. The designation is left untouched.
func (c *CloseApproach) Link(neo *NearEarthObject) { c.neo = neo }

// FormattedTime renders the approach time as "YYYY-Mon-DD HH:MM".
func (c *CloseApproach) FormattedTime() string { return FormatApproachTime(c.time) }

func (c *CloseApproach) String() string {
	return fmt.Sprintf("On %s, '%s' approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		c.FormattedTime(), c.designation, c.distance, c.velocity)
}

// GoString renders the approach for %#v.
func (c *CloseApproach) GoString() string {
	neo := "nil"
	if c.neo != nil {
		neo = fmt.Sprintf("%q", c.neo.Designation())
	}
	return fmt.Sprintf("CloseApproach(time=%q, distance=%.2f, velocity=%.2f, neo=%s)",
		c.FormattedTime(), c.distance, c.velocity, neo)
}

// SerializedApproach is the export form of a CloseApproach.
type SerializedApproach struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKmS float64 `json:"velocity_km_s"`
}

// Serialize returns the export form.
func (c *CloseApproach) Serialize() SerializedApproach {
	return SerializedApproach{
		DatetimeUTC: c.FormattedTime(),
		DistanceAU:  c.distance,
		VelocityKmS: c.velocity,
	}
}
