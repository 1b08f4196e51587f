package roster

import (
	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
)

// FilterKey is one of the single-select legend filter categories. FilterNone
// means no filter is active.
type FilterKey string

const (
	FilterNone          FilterKey = ""
	FilterSenior        FilterKey = "senior"
	FilterSupplemental  FilterKey = "supplemental"
	FilterTAM           FilterKey = "tam"
	FilterUnavailable   FilterKey = "unavailable"
	FilterSEI           FilterKey = "sei"
	FilterOnLoan        FilterKey = "on_loan"
	FilterDP            FilterKey = "dp"
	FilterU22           FilterKey = "u22"
	FilterInternational FilterKey = "international"
	FilterOffRoster     FilterKey = "off_roster"

	// Reserve-squad filters.
	FilterAcademy FilterKey = "academy"
	FilterLoanee  FilterKey = "loanee"
)

// Valid reports whether f is a recognized filter key.
func (f FilterKey) Valid() bool {
	switch f {
	case FilterNone, FilterSenior, FilterSupplemental, FilterTAM,
		FilterUnavailable, FilterSEI, FilterOnLoan, FilterDP, FilterU22,
		FilterInternational, FilterOffRoster, FilterAcademy, FilterLoanee:
		return true
	}
	return false
}

// MatchesFilter reports whether a roster entry falls in the given filter
// category. FilterNone (and unrecognized keys) match everything, so a stale
// filter de-emphasizes nothing rather than blanking the view.
func MatchesFilter(e models.RosterEntry, f FilterKey) bool {
	switch f {
	case FilterSenior:
		return !e.Supplemental && !e.OffRoster
	case FilterSupplemental:
		return e.Supplemental
	case FilterTAM:
		return e.Designation == models.DesignationTAM
	case FilterUnavailable:
		return e.Unavailable
	case FilterSEI:
		return e.Designation == models.DesignationSEI
	case FilterOnLoan:
		return e.OnLoan
	case FilterDP:
		return e.Designation == models.DesignationDP
	case FilterU22:
		return e.Designation == models.DesignationU22
	case FilterInternational:
		return e.International
	case FilterOffRoster:
		return e.OffRoster
	case FilterAcademy:
		return e.Academy
	case FilterLoanee:
		return e.Loanee
	}
	return true
}

// Toggle implements the legend's single-select semantics: clicking the active
// filter clears it, clicking another replaces it.
func Toggle(current, clicked FilterKey) FilterKey {
	if clicked == current {
		return FilterNone
	}
	return clicked
}
