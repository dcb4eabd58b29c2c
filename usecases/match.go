package usecases

import (
	"math"
	"strings"

	"estate-server/entities"
)

// Match score weights. The aggregate normalizes over their sum (90).
const (
	weightBudget   = 40.0
	weightLocation = 30.0
	weightBedrooms = 20.0
)

// MatchScore computes how well a property fits a user's stated
// preferences as a 0-100 percentage. Pure function; returns false when
// either side is missing, which callers render as "no score".
//
// Scoring:
//   - budget: 1.0 if the property's min price fits the budget, 0.5 if
//     within 10% over, else 0
//   - location: 1.0 on an exact match, else 0.3
//   - bedrooms: 1.0 if equal to the property's min, 0.6 if off by one,
//     else 0
func MatchScore(pref *entities.Profile, p *entities.Property) (int, bool) {
	if pref == nil || p == nil {
		return 0, false
	}
	if pref.Budget <= 0 && pref.PreferredLocation == "" && pref.Bedrooms == 0 {
		return 0, false
	}

	var budgetScore float64
	switch {
	case p.PriceMin <= pref.Budget:
		budgetScore = 1.0
	case p.PriceMin <= pref.Budget*1.1:
		budgetScore = 0.5
	}

	locationScore := 0.3
	if strings.EqualFold(strings.TrimSpace(p.Location), strings.TrimSpace(pref.PreferredLocation)) {
		locationScore = 1.0
	}

	var bedroomScore float64
	switch diff := pref.Bedrooms - p.BedroomsMin; {
	case diff == 0:
		bedroomScore = 1.0
	case diff == 1 || diff == -1:
		bedroomScore = 0.6
	}

	total := weightBudget*budgetScore + weightLocation*locationScore + weightBedrooms*bedroomScore
	score := math.Round(100 * total / (weightBudget + weightLocation + weightBedrooms))
	return int(score), true
}
