package fitness

import (
	"fmt"
	"sort"
)

type Sport string

const (
	SportGeneral       Sport = "general"
	SportFootball      Sport = "football"
	SportBasketball    Sport = "basketball"
	SportSwimming      Sport = "swimming"
	SportRunning       Sport = "running"
	SportCycling       Sport = "cycling"
	SportTennis        Sport = "tennis"
	SportGymnastics    Sport = "gymnastics"
	SportWeightlifting Sport = "weightlifting"
	SportMartialArts   Sport = "martial_arts"
	SportRugby         Sport = "rugby"
)

// BMIBand is an ordered [Min, Max] pair of BMI values.
type BMIBand [2]float64

// SportProfile holds the BMI thresholds that replace the generic bands for
// one sport.
type SportProfile struct {
	Sport                Sport   `json:"sport"`
	UnderweightThreshold float64 `json:"underweight_threshold"`
	NormalRange          BMIBand `json:"normal_range"`
	OverweightRange      BMIBand `json:"overweight_range"`
	ObeseThreshold       float64 `json:"obese_threshold"`
	Description          string  `json:"description"`
}

// Rows must be contiguous: each band starts exactly where the previous one
// ends. validateSportTable enforces this at init.
var sportTable = map[Sport]SportProfile{
	SportGeneral: {
		UnderweightThreshold: 18.5,
		NormalRange:          BMIBand{18.5, 24.9},
		OverweightRange:      BMIBand{24.9, 30},
		ObeseThreshold:       30,
		Description:          "Standard WHO adult ranges for people without a specific sport focus.",
	},
	SportFootball: {
		UnderweightThreshold: 19,
		NormalRange:          BMIBand{19, 25},
		OverweightRange:      BMIBand{25, 28.5},
		ObeseThreshold:       28.5,
		Description:          "Field players balance sprint speed and contact strength; moderate lean mass is expected.",
	},
	SportBasketball: {
		UnderweightThreshold: 19.5,
		NormalRange:          BMIBand{19.5, 25.5},
		OverweightRange:      BMIBand{25.5, 29},
		ObeseThreshold:       29,
		Description:          "Tall frames carry more absolute mass; ranges allow for muscular post players.",
	},
	SportSwimming: {
		UnderweightThreshold: 19,
		NormalRange:          BMIBand{19, 25},
		OverweightRange:      BMIBand{25, 28.5},
		ObeseThreshold:       28.5,
		Description:          "Swimmers benefit from upper-body muscle and some buoyant mass.",
	},
	SportRunning: {
		UnderweightThreshold: 17.5,
		NormalRange:          BMIBand{17.5, 22.5},
		OverweightRange:      BMIBand{22.5, 26},
		ObeseThreshold:       26,
		Description:          "Distance running favours a light frame; lower normal band than the general population.",
	},
	SportCycling: {
		UnderweightThreshold: 18,
		NormalRange:          BMIBand{18, 23},
		OverweightRange:      BMIBand{23, 26.5},
		ObeseThreshold:       26.5,
		Description:          "Power-to-weight ratio dominates climbing performance; lean ranges apply.",
	},
	SportTennis: {
		UnderweightThreshold: 19,
		NormalRange:          BMIBand{19, 24.5},
		OverweightRange:      BMIBand{24.5, 28},
		ObeseThreshold:       28,
		Description:          "Repeated lateral sprints reward agility over bulk.",
	},
	SportGymnastics: {
		UnderweightThreshold: 17,
		NormalRange:          BMIBand{17, 22},
		OverweightRange:      BMIBand{22, 25},
		ObeseThreshold:       25,
		Description:          "Compact, light bodies with high relative strength; the lowest bands in the table.",
	},
	SportWeightlifting: {
		UnderweightThreshold: 20,
		NormalRange:          BMIBand{20, 28},
		OverweightRange:      BMIBand{28, 32},
		ObeseThreshold:       32,
		Description:          "High muscle mass raises BMI without excess fat; generic bands overstate risk.",
	},
	SportMartialArts: {
		UnderweightThreshold: 19,
		NormalRange:          BMIBand{19, 25},
		OverweightRange:      BMIBand{25, 29},
		ObeseThreshold:       29,
		Description:          "Weight-class sports; athletes sit across the range but keep body fat low.",
	},
	SportRugby: {
		UnderweightThreshold: 21,
		NormalRange:          BMIBand{21, 30},
		OverweightRange:      BMIBand{30, 34},
		ObeseThreshold:       34,
		Description:          "Collision sport with heavy forwards; normal extends well past the generic cut-off.",
	},
}

func init() {
	if err := validateSportTable(sportTable); err != nil {
		panic(err)
	}
}

// validateSportTable checks that every row's bands are increasing and
// contiguous so that ClassifySport is monotonic in BMI.
func validateSportTable(table map[Sport]SportProfile) error {
	if _, ok := table[SportGeneral]; !ok {
		return fmt.Errorf("sport table: missing %q row", SportGeneral)
	}
	for sport, p := range table {
		switch {
		case p.UnderweightThreshold != p.NormalRange[0]:
			return fmt.Errorf("sport table %q: underweight threshold %v does not meet normal range %v", sport, p.UnderweightThreshold, p.NormalRange)
		case p.NormalRange[1] != p.OverweightRange[0]:
			return fmt.Errorf("sport table %q: normal range %v does not meet overweight range %v", sport, p.NormalRange, p.OverweightRange)
		case p.OverweightRange[1] != p.ObeseThreshold:
			return fmt.Errorf("sport table %q: overweight range %v does not meet obese threshold %v", sport, p.OverweightRange, p.ObeseThreshold)
		case p.NormalRange[0] >= p.NormalRange[1] || p.OverweightRange[0] >= p.OverweightRange[1]:
			return fmt.Errorf("sport table %q: bands must be strictly increasing", sport)
		}
	}
	return nil
}

// LookupSport returns the profile for s, or the general profile when s is
// not in the table.
func LookupSport(s Sport) SportProfile {
	p, ok := sportTable[s]
	if !ok {
		s = SportGeneral
		p = sportTable[s]
	}
	p.Sport = s
	return p
}

// Sports lists every sport profile ordered by name, general first.
func Sports() []SportProfile {
	out := make([]SportProfile, 0, len(sportTable))
	for s := range sportTable {
		out = append(out, LookupSport(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sport == SportGeneral || out[j].Sport == SportGeneral {
			return out[i].Sport == SportGeneral
		}
		return out[i].Sport < out[j].Sport
	})
	return out
}
