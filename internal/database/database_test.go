package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxinchi/NEO-project/internal/filters"
	"github.com/loxinchi/NEO-project/internal/logger"
	"github.com/loxinchi/NEO-project/internal/model"
)

func fixture(t *testing.T) ([]*model.NearEarthObject, []*model.CloseApproach) {
	t.Helper()
	neos := []*model.NearEarthObject{
		model.NewNearEarthObject(model.NEOParams{Designation: "433", Name: "Eros", Diameter: "16.84"}),
		model.NewNearEarthObject(model.NEOParams{Designation: "2015 CL"}),
		model.NewNearEarthObject(model.NEOParams{Designation: "2002 PB", Hazardous: "Y"}),
	}
	rows := []model.ApproachParams{
		{Designation: "2015 CL", Time: "2000-Jan-01 00:00", Distance: "0.144929", Velocity: "12.4552"},
		{Designation: "2002 PB", Time: "2000-Jan-01 09:36", Distance: "0.0712", Velocity: "8.05"},
		{Designation: "433", Time: "2000-Jan-05 14:24", Distance: "0.31", Velocity: "5.82"},
		{Designation: "2015 CL", Time: "2011-Mar-02 03:00", Distance: "0.4", Velocity: "13"},
		{Designation: "9999 ZZ", Time: "2001-Jan-01 00:00", Distance: "0.5", Velocity: "3"},
	}
	var approaches []*model.CloseApproach
	for _, r := range rows {
		ca, err := model.NewCloseApproach(r)
		require.NoError(t, err)
		approaches = append(approaches, ca)
	}
	return neos, approaches
}

func TestNew_LinksApproaches(t *testing.T) {
	neos, approaches := fixture(t)
	db := New(neos, approaches, logger.Discard())

	cl, ok := db.GetByDesignation("2015 CL")
	require.True(t, ok)
	require.Len(t, cl.Approaches(), 2)
	assert.Same(t, approaches[0], cl.Approaches()[0])
	assert.Same(t, approaches[3], cl.Approaches()[1])
	assert.Same(t, cl, approaches[0].NEO())

	eros, _ := db.GetByDesignation("433")
	assert.Len(t, eros.Approaches(), 1)

	// designation survives linking
	assert.Equal(t, "2015 CL", approaches[0].Designation())
}

func TestNew_Orphans(t *testing.T) {
	neos, approaches := fixture(t)
	db := New(neos, approaches, logger.Discard())

	require.Len(t, db.Orphans(), 1)
	assert.Equal(t, "9999 ZZ", db.Orphans()[0].Designation())
	assert.Nil(t, db.Orphans()[0].NEO())
}

func TestGetByName(t *testing.T) {
	neos, approaches := fixture(t)
	db := New(neos, approaches, logger.Discard())

	eros, ok := db.GetByName("Eros")
	require.True(t, ok)
	assert.Equal(t, "433", eros.Designation())

	_, ok = db.GetByName("")
	assert.False(t, ok)
	_, ok = db.GetByName("Apophis")
	assert.False(t, ok)
}

func TestNew_DuplicateDesignationFirstWins(t *testing.T) {
	first := model.NewNearEarthObject(model.NEOParams{Designation: "dup", Name: "One"})
	second := model.NewNearEarthObject(model.NEOParams{Designation: "dup", Name: "Two"})
	db := New([]*model.NearEarthObject{first, second}, nil, logger.Discard())

	got, ok := db.GetByDesignation("dup")
	require.True(t, ok)
	assert.Same(t, first, got)
	_, ok = db.GetByName("Two")
	assert.False(t, ok)
}

func TestQuery(t *testing.T) {
	neos, approaches := fixture(t)
	db := New(neos, approaches, logger.Discard())

	assert.Len(t, db.Query(), 5)

	maxDist := 0.2
	near := db.Query(filters.Create(filters.Criteria{DistanceMax: &maxDist})...)
	require.Len(t, near, 2)
	assert.Equal(t, "2015 CL", near[0].Designation())
	assert.Equal(t, "2002 PB", near[1].Designation())

	yes := true
	pha := db.Query(filters.Create(filters.Criteria{Hazardous: &yes})...)
	require.Len(t, pha, 1)
	assert.Equal(t, "2002 PB", pha[0].Designation())
}

func TestStats(t *testing.T) {
	neos, approaches := fixture(t)
	db := New(neos, approaches, logger.Discard())

	assert.Equal(t, Stats{
		NEOs:             3,
		NamedNEOs:        1,
		NEOsWithDiameter: 1,
		HazardousNEOs:    1,
		NEOsWithApproach: 3,
		Approaches:       5,
		LinkedApproaches: 4,
		OrphanApproaches: 1,
	}, db.Stats())
}
