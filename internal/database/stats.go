package database

// Stats holds counts over the loaded data set.
type Stats struct {
	NEOs             int `json:"neos"`
	NamedNEOs        int `json:"named_neos"`
	NEOsWithDiameter int `json:"neos_with_diameter"`
	HazardousNEOs    int `json:"hazardous_neos"`
	NEOsWithApproach int `json:"neos_with_approach"`
	Approaches       int `json:"approaches"`
	LinkedApproaches int `json:"linked_approaches"`
	OrphanApproaches int `json:"orphan_approaches"`
}

// Stats counts the loaded records.
func (db *NEODatabase) Stats() Stats {
	st := Stats{
		NEOs:             len(db.neos),
		Approaches:       len(db.approaches),
		OrphanApproaches: len(db.orphans),
	}
	st.LinkedApproaches = st.Approaches - st.OrphanApproaches

	for _, neo := range db.neos {
		if _, ok := neo.Name(); ok {
			st.NamedNEOs++
		}
		if neo.HasDiameter() {
			st.NEOsWithDiameter++
		}
		if neo.Hazardous() {
			st.HazardousNEOs++
		}
		if len(neo.Approaches()) > 0 {
			st.NEOsWithApproach++
		}
	}
	return st
}
