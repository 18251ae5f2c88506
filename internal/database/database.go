// Package database links close approaches to their NEOs and answers lookups
// and queries over the linked, in-memory set.
package database

import (
	"log/slog"

	"github.com/loxinchi/NEO-project/internal/filters"
	"github.com/loxinchi/NEO-project/internal/model"
)

// NEODatabase owns the loaded NEOs and close approaches.
type NEODatabase struct {
	neos       []*model.NearEarthObject
	approaches []*model.CloseApproach
	orphans    []*model.CloseApproach

	byDesignation map[string]*model.NearEarthObject
	byName        map[string]*model.NearEarthObject
}

// New indexes the NEOs and links each approach to the NEO with its
// designation, exactly once. Approaches with an unknown designation stay
// unlinked and are reported by Orphans. When two NEOs share a designation or
// name the first one wins.
func New(neos []*model.NearEarthObject, approaches []*model.CloseApproach, logger *slog.Logger) *NEODatabase {
	db := &NEODatabase{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*model.NearEarthObject, len(neos)),
		byName:        make(map[string]*model.NearEarthObject),
	}

	for _, neo := range neos {
		des := neo.Designation()
		if _, dup := db.byDesignation[des]; dup {
			logger.Warn("duplicate designation", "designation", des)
			continue
		}
		db.byDesignation[des] = neo
		if name, ok := neo.Name(); ok {
			if _, dup := db.byName[name]; !dup {
				db.byName[name] = neo
			}
		}
	}

	for _, ca := range approaches {
		neo, ok := db.byDesignation[ca.Designation()]
		if !ok {
			db.orphans = append(db.orphans, ca)
			continue
		}
		ca.Link(neo)
		neo.AddApproach(ca)
	}

	if len(db.orphans) > 0 {
		logger.Warn("close approaches without a matching neo", "count", len(db.orphans))
	}
	logger.Debug("database linked",
		"neos", len(neos),
		"approaches", len(approaches),
		"orphans", len(db.orphans),
	)
	return db
}

// GetByDesignation returns the NEO with the given primary designation.
func (db *NEODatabase) GetByDesignation(designation string) (*model.NearEarthObject, bool) {
	neo, ok := db.byDesignation[designation]
	return neo, ok
}

// GetByName returns the NEO with the given IAU name. An empty name never matches.
func (db *NEODatabase) GetByName(name string) (*model.NearEarthObject, bool) {
	if name == "" {
		return nil, false
	}
	neo, ok := db.byName[name]
	return neo, ok
}

// Query returns, in load order, the approaches that match every filter.
func (db *NEODatabase) Query(fs ...filters.Filter) []*model.CloseApproach {
	var out []*model.CloseApproach
	for _, ca := range db.approaches {
		if filters.MatchAll(ca, fs) {
			out = append(out, ca)
		}
	}
	return out
}

// NEOs returns every loaded NEO in load order.
func (db *NEODatabase) NEOs() []*model.NearEarthObject { return db.neos }

// Approaches returns every loaded approach in load order.
func (db *NEODatabase) Approaches() []*model.CloseApproach { return db.approaches }

// Orphans returns the approaches that could not be linked.
func (db *NEODatabase) Orphans() []*model.CloseApproach { return db.orphans }
