// Package roster classifies roster entries into league categories and backs
// the legend/summary counts and the single-select category filter.
package roster

import (
	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
)

// League roster caps.
const (
	TotalMax         = 31
	SeniorMax        = 20
	SupplementalMax  = 11
	DPMax            = 3
	U22Max           = 3
	InternationalCap = 4
)

// Counts are the aggregate roster-slot numbers shown in the legend.
type Counts struct {
	TotalOnRoster      int `json:"total_on_roster"`
	TotalMax           int `json:"total_max"`
	SeniorRoster       int `json:"senior_roster"`
	SeniorMax          int `json:"senior_max"`
	SupplementalRoster int `json:"supplemental_roster"`
	SupplementalMax    int `json:"supplemental_max"`
	DPSpots            int `json:"dp_spots"`
	DPMax              int `json:"dp_max"`
	U22Count           int `json:"u22_count"`
	U22Max             int `json:"u22_max"`
	TAMCount           int `json:"tam_count"`
	InternationalCount int `json:"international_count"`
	InternationalMax   int `json:"international_max"`
	OpenInternational  int `json:"open_international"`
	OnLoanCount        int `json:"on_loan_count"`
	OffRoster          int `json:"off_roster"`
	UnavailableCount   int `json:"unavailable_count"`
	SEICount           int `json:"sei_count"`
}

// CalculateCounts reduces the roster entries into slot counts. The
// international cap varies by league, so it is a parameter; pass
// InternationalCap for the default rules.
func CalculateCounts(entries []models.RosterEntry, internationalCap int) Counts {
	c := Counts{
		TotalMax:         TotalMax,
		SeniorMax:        SeniorMax,
		SupplementalMax:  SupplementalMax,
		DPMax:            DPMax,
		U22Max:           U22Max,
		InternationalMax: internationalCap,
	}

	for _, e := range entries {
		if !e.OffRoster {
			c.TotalOnRoster++
			if e.Supplemental {
				c.SupplementalRoster++
			} else {
				c.SeniorRoster++
			}
		} else {
			c.OffRoster++
		}
		switch e.Designation {
		case models.DesignationDP:
			c.DPSpots++
		case models.DesignationU22:
			c.U22Count++
		case models.DesignationTAM:
			c.TAMCount++
		case models.DesignationSEI:
			c.SEICount++
		}
		if e.International {
			c.InternationalCount++
		}
		if e.OnLoan {
			c.OnLoanCount++
		}
		if e.Unavailable {
			c.UnavailableCount++
		}
	}

	c.OpenInternational = internationalCap - c.InternationalCount
	if c.OpenInternational < 0 {
		c.OpenInternational = 0
	}

	return c
}
