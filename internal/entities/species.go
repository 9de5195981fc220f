package entities

// SealedKinGroupName is the kin group whose members cannot breed at all.
const SealedKinGroupName = "sealed"

// Species is one catalog entry of the bestiary: everything the calculator
// and the browse endpoints need to know about a creature species.
type Species struct {
	// ID is the bestiary number, assigned upstream and stable forever.
	ID int `json:"id"`

	// Name is the lowercase species name, unique in the catalog.
	Name string `json:"name"`

	// PortraitURL points at the species portrait, when upstream has one.
	PortraitURL string `json:"portrait_url,omitempty"`

	// BaseStats holds the six base stat values in axis order. Display
	// only; the breeding math cares about perfect flags, not magnitudes.
	BaseStats [NumStatAxes]int `json:"base_stats"`

	// FemaleRatio is the percentage chance of an individual being female.
	// -1 means sexless, 0 male-only, 100 female-only.
	FemaleRatio float64 `json:"female_ratio"`

	// IsBreedable is false for species in the sealed kin group.
	IsBreedable bool `json:"is_breedable"`

	// IsUniversalDonor marks the archetype that breeds with any breedable
	// species and contributes no talent of its own.
	IsUniversalDonor bool `json:"is_universal_donor"`

	// KinGroups the species belongs to (one or two).
	KinGroups []KinGroup `json:"kin_groups"`

	// Talents the species can carry. Slot order is stable: regular slots
	// first (primary, then secondary when present), hidden slot last.
	Talents []TalentSlot `json:"talents"`
}

// RegularTalents returns the names of the species' regular talent slots,
// in slot order.
func (s *Species) RegularTalents() []string {
	var names []string
	for _, t := range s.Talents {
		if !t.IsHidden {
			names = append(names, t.Name)
		}
	}
	return names
}

// SharesKinGroup reports whether two species have a kin group in common.
func (s *Species) SharesKinGroup(other *Species) bool {
	for _, a := range s.KinGroups {
		for _, b := range other.KinGroups {
			if a.ID == b.ID {
				return true
			}
		}
	}
	return false
}

// TalentSlot is one talent a species can carry.
type TalentSlot struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

// KinGroup determines breeding compatibility: two species can pair when
// they share at least one kin group.
type KinGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Temperament is one entry of the personality-trait catalog. Each raises
// one stat and lowers another, or neither for the neutral ones.
type Temperament struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	RaisedStat  string `json:"raised_stat,omitempty"`
	LoweredStat string `json:"lowered_stat,omitempty"`
}
