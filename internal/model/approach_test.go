package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloseApproach_TimeRoundTrip(t *testing.T) {
	ca, err := NewCloseApproach(ApproachParams{Time: "2000-Jan-01 00:00"})
	require.NoError(t, err)

	assert.Equal(t, "2000-Jan-01 00:00", ca.FormattedTime())
	assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), ca.Time())
}

func TestNewCloseApproach_SecondsDropped(t *testing.T) {
	ca, err := NewCloseApproach(ApproachParams{Time: "2020-Dec-31 23:59:42"})
	require.NoError(t, err)

	assert.Equal(t, "2020-Dec-31 23:59", ca.FormattedTime())
	assert.Zero(t, ca.Time().Second())
}

func TestNewCloseApproach_DefaultsToZero(t *testing.T) {
	ca, err := NewCloseApproach(ApproachParams{Time: "1900-Feb-03 04:05"})
	require.NoError(t, err)

	assert.Zero(t, ca.Distance())
	assert.Zero(t, ca.Velocity())
	assert.Empty(t, ca.Designation())
	assert.Nil(t, ca.NEO())
}

func TestNewCloseApproach_Serialize(t *testing.T) {
	ca, err := NewCloseApproach(ApproachParams{
		Time:        "2000-Jan-01 00:00",
		Designation: "2015 CL",
		Distance:    "0.15",
		Velocity:    "5.0",
	})
	require.NoError(t, err)

	assert.Equal(t, SerializedApproach{
		DatetimeUTC: "2000-Jan-01 00:00",
		DistanceAU:  0.15,
		VelocityKmS: 5.0,
	}, ca.Serialize())
}

func TestNewCloseApproach_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		p     ApproachParams
		field string
	}{
		{name: "bad time", p: ApproachParams{Time: "not-a-date"}, field: "time"},
		{name: "empty time", p: ApproachParams{Time: ""}, field: "time"},
		{name: "numeric month", p: ApproachParams{Time: "2000-01-01 00:00"}, field: "time"},
		{name: "bad distance", p: ApproachParams{Time: "2000-Jan-01 00:00", Distance: "far"}, field: "distance"},
		{name: "bad velocity", p: ApproachParams{Time: "2000-Jan-01 00:00", Velocity: "fast"}, field: "velocity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ca, err := NewCloseApproach(tt.p)
			require.Error(t, err)
			assert.Nil(t, ca)
			assert.True(t, errors.Is(err, ErrParse))

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestCloseApproach_Link(t *testing.T) {
	neo := NewNearEarthObject(NEOParams{Designation: "2015 CL"})
	ca, err := NewCloseApproach(ApproachParams{Time: "2000-Jan-01 00:00", Designation: "2015 CL"})
	require.NoError(t, err)

	ca.Link(neo)

	assert.Same(t, neo, ca.NEO())
	assert.Equal(t, "2015 CL", ca.Designation())
}

func TestCloseApproach_String(t *testing.T) {
	ca, err := NewCloseApproach(ApproachParams{
		Time:        "2000-Jan-01 00:00",
		Designation: "2015 CL",
		Distance:    "0.144929",
		Velocity:    "12.4552",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"On 2000-Jan-01 00:00, '2015 CL' approaches Earth at a distance of 0.14 au and a velocity of 12.46 km/s.",
		ca.String())

	anon, err := NewCloseApproach(ApproachParams{Time: "2000-Jan-01 00:00"})
	require.NoError(t, err)
	assert.Equal(t,
		"On 2000-Jan-01 00:00, '' approaches Earth at a distance of 0.00 au and a velocity of 0.00 km/s.",
		anon.String())
}

func TestKilometers_Text(t *testing.T) {
	k, err := ParseKilometers(Kilometers(0).Text())
	require.NoError(t, err)
	assert.True(t, k.Known())
	assert.Equal(t, Kilometers(0), k)

	nan, err := ParseKilometers(NewNearEarthObject(NEOParams{Designation: "x"}).Serialize().DiameterKm.Text())
	require.NoError(t, err)
	assert.False(t, nan.Known())

	_, err = ParseKilometers("wide")
	assert.ErrorIs(t, err, ErrParse)
}
