// Package model defines the near-Earth object and close-approach records.
package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// hazardousMarker is the only flag value that marks an NEO as potentially hazardous.
const hazardousMarker = "Y"

// NEOParams holds the raw fields of one row of the NEO catalogue.
type NEOParams struct {
	Designation string
	Name        string
	Hazardous   string
	Diameter    string
}

// NearEarthObject is a near-Earth object identified by its primary designation.
type NearEarthObject struct {
	designation string
	name        string
	diameter    float64
	hazardous   bool
	approaches  []*CloseApproach
}

// NewNearEarthObject builds an NEO from raw catalogue fields. It never fails:
// an empty name is absent, an empty or unusable diameter is NaN, and any
// hazard flag other than "Y" is false.
func NewNearEarthObject(p NEOParams) *NearEarthObject {
	return &NearEarthObject{
		designation: p.Designation,
		name:        strings.TrimSpace(p.Name),
		diameter:    parseDiameter(p.Diameter),
		hazardous:   p.Hazardous == hazardousMarker,
	}
}

// parseDiameter maps missing, zero and non-numeric input to NaN.
func parseDiameter(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return math.NaN()
	}
	return v
}

// Designation returns the primary designation.
func (n *NearEarthObject) Designation() string { return n.designation }

// Name returns the IAU name and whether the NEO has one.
func (n *NearEarthObject) Name() (string, bool) { return n.name, n.name != "" }

// Diameter returns the diameter in kilometers, NaN when unknown.
func (n *NearEarthObject) Diameter() float64 { return n.diameter }

// HasDiameter reports whether the diameter is known.
func (n *NearEarthObject) HasDiameter() bool { return !math.IsNaN(n.diameter) }

// Hazardous reports whether the NEO is potentially hazardous.
func (n *NearEarthObject) Hazardous() bool { return n.hazardous }

// Approaches returns the linked close approaches in link order.
func (n *NearEarthObject) Approaches() []*CloseApproach {
	out := make([]*CloseApproach, len(n.approaches))
	copy(out, n.approaches)
	return out
}

// AddApproach appends a close approach to this NEO.
func (n *NearEarthObject) AddApproach(ca *CloseApproach) {
	n.approaches = append(n.approaches, ca)
}

// FullName returns "<designation> (<name>)", or just the designation when unnamed.
func (n *NearEarthObject) FullName() string {
	if name, ok := n.Name(); ok {
		return fmt.Sprintf("%s (%s)", n.designation, name)
	}
	return n.designation
}

func (n *NearEarthObject) String() string {
	diameter := "an unknown diameter"
	if n.HasDiameter() {
		diameter = fmt.Sprintf("a diameter of %.3f km", n.diameter)
	}
	status := "is not"
	if n.hazardous {
		status = "is"
	}
	return fmt.Sprintf("NEO %s has %s and %s potentially hazardous. It has %d recorded close approaches.",
		n.FullName(), diameter, status, len(n.approaches))
}

// GoString renders the NEO for %#v.
func (n *NearEarthObject) GoString() string {
	return fmt.Sprintf("NearEarthObject(designation=%q, name=%q, diameter=%.3f, hazardous=%t, approaches=%d)",
		n.designation, n.name, n.diameter, n.hazardous, len(n.approaches))
}

// SerializedNEO is the export form of a NearEarthObject.
type SerializedNEO struct {
	Designation          string     `json:"designation"`
	Name                 string     `json:"name"`
	DiameterKm           Kilometers `json:"diameter_km"`
	PotentiallyHazardous bool       `json:"potentially_hazardous"`
}

// Serialize returns the export form. An absent name becomes "".
func (n *NearEarthObject) Serialize() SerializedNEO {
	return SerializedNEO{
		Designation:          n.designation,
		Name:                 n.name,
		DiameterKm:           Kilometers(n.diameter),
		PotentiallyHazardous: n.hazardous,
	}
}
