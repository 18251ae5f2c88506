// Package filters builds the predicates used to query close approaches.
package filters

import (
	"fmt"
	"time"

	"github.com/loxinchi/NEO-project/internal/model"
)

// Filter decides whether a close approach belongs in a query result.
type Filter interface {
	Match(ca *model.CloseApproach) bool
}

// Op compares an attribute against a bound.
type Op int

const (
	Eq Op = iota
	Ge
	Le
)

func (o Op) String() string {
	switch o {
	case Eq:
		return "=="
	case Ge:
		return ">="
	case Le:
		return "<="
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// attribute extracts a comparable value; ok is false when the approach has none.
type attribute[T any] func(ca *model.CloseApproach) (v T, ok bool)

// AttributeFilter compares one attribute of an approach with a value.
type AttributeFilter[T any] struct {
	name  string
	op    Op
	value T
	get   attribute[T]
	cmp   func(a, b T) int
}

// Match reports whether the approach's attribute satisfies op against the value.
func (f AttributeFilter[T]) Match(ca *model.CloseApproach) bool {
	v, ok := f.get(ca)
	if !ok {
		return false
	}
	c := f.cmp(v, f.value)
	switch f.op {
	case Eq:
		return c == 0
	case Ge:
		return c >= 0
	case Le:
		return c <= 0
	}
	return false
}

func (f AttributeFilter[T]) String() string {
	return fmt.Sprintf("%s %s %v", f.name, f.op, f.value)
}

// MatchAll reports whether every filter matches.
func MatchAll(ca *model.CloseApproach, fs []Filter) bool {
	for _, f := range fs {
		if !f.Match(ca) {
			return false
		}
	}
	return true
}

func date(ca *model.CloseApproach) (time.Time, bool) {
	t := ca.Time().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

func distance(ca *model.CloseApproach) (float64, bool) { return ca.Distance(), true }

func velocity(ca *model.CloseApproach) (float64, bool) { return ca.Velocity(), true }

func diameter(ca *model.CloseApproach) (float64, bool) {
	neo := ca.NEO()
	if neo == nil || !neo.HasDiameter() {
		return 0, false
	}
	return neo.Diameter(), true
}

func hazardous(ca *model.CloseApproach) (bool, bool) {
	neo := ca.NEO()
	if neo == nil {
		return false, false
	}
	return neo.Hazardous(), true
}

func compareTime(a, b time.Time) int { return a.Compare(b) }

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	return 1
}
