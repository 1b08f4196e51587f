package models

// TeamContext selects one of the two disjoint roster namespaces.
type TeamContext string

const (
	TeamFirst    TeamContext = "first_team"
	TeamReserves TeamContext = "reserves"
)

// Designation is a player's primary roster designation. Every entry carries
// exactly one; SEN is the default.
type Designation string

const (
	DesignationDP   Designation = "DP"
	DesignationTAM  Designation = "TAM"
	DesignationU22  Designation = "U22"
	DesignationHG   Designation = "HG"
	DesignationINT  Designation = "INT"
	DesignationSEN  Designation = "SEN"
	DesignationSUP  Designation = "SUP"
	DesignationLOAN Designation = "LOAN"
	DesignationDEF  Designation = "DEF"
	DesignationSEI  Designation = "SEI"
)

// RosterEntry is one player's static roster classification, keyed by name and
// independent of season stats. Academy and Loanee apply only to the reserve
// squad namespace.
type RosterEntry struct {
	Name         string      `json:"name"`
	Designation  Designation `json:"designation"`
	International bool       `json:"international,omitempty"`
	Supplemental  bool       `json:"supplemental,omitempty"`
	OffRoster     bool       `json:"off_roster,omitempty"`
	Unavailable   bool       `json:"unavailable,omitempty"`
	OnLoan        bool       `json:"on_loan,omitempty"`

	Academy bool `json:"academy,omitempty"`
	Loanee  bool `json:"loanee,omitempty"`
}
