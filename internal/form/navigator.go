package form

import (
	"fmt"

	"tcintake/pkg/domain"
)

// Dependency gates access to a section on another section being completed
// and a record-level condition holding.
type Dependency struct {
	Section   domain.Section
	Condition func(domain.TransactionRecord) bool
}

type sectionConfig struct {
	dependencies   []Dependency
	validateAccess func(domain.TransactionRecord) bool
}

// SectionValidator is the slice of the validation engine the navigator needs
// to re-validate earlier sections during access checks.
type SectionValidator interface {
	ValidateSection(section domain.Section, record domain.TransactionRecord) domain.FieldResult
}

// Navigator owns the section dependency graph: which sections are reachable
// given the record and the completed set, and how the cursor may move.
type Navigator struct {
	validator SectionValidator
	configs   map[domain.Section]sectionConfig
}

// NewNavigator builds a navigator over the default dependency graph.
func NewNavigator(validator SectionValidator) *Navigator {
	hasAddress := func(r domain.TransactionRecord) bool { return r.PropertyAddress != "" }
	return &Navigator{
		validator: validator,
		configs: map[domain.Section]sectionConfig{
			domain.SectionRole: {},
			domain.SectionProperty: {
				dependencies: []Dependency{
					{domain.SectionRole, func(r domain.TransactionRecord) bool { return r.Role != domain.RoleUnset }},
				},
			},
			domain.SectionClient: {
				dependencies: []Dependency{
					{domain.SectionProperty, func(r domain.TransactionRecord) bool {
						return r.PropertyAddress != "" && r.SalePrice != ""
					}},
				},
				validateAccess: func(r domain.TransactionRecord) bool { return len(r.Clients) > 0 },
			},
			domain.SectionCommission: {
				dependencies: []Dependency{
					{domain.SectionClient, firstClientNamed},
				},
			},
			domain.SectionPropertyDetails: {
				dependencies: []Dependency{{domain.SectionProperty, hasAddress}},
			},
			domain.SectionWarranty: {
				dependencies: []Dependency{{domain.SectionProperty, hasAddress}},
			},
			domain.SectionTitleCompany: {
				dependencies: []Dependency{{domain.SectionProperty, hasAddress}},
			},
			domain.SectionDocuments: {
				dependencies: []Dependency{
					{domain.SectionProperty, hasAddress},
					{domain.SectionClient, firstClientNamed},
				},
			},
			domain.SectionAdditionalInfo: {
				dependencies: []Dependency{{domain.SectionProperty, hasAddress}},
			},
			domain.SectionSignature: {
				dependencies: []Dependency{
					{domain.SectionDocuments, func(r domain.TransactionRecord) bool { return r.AcknowledgeDocuments }},
				},
			},
		},
	}
}

func firstClientNamed(r domain.TransactionRecord) bool {
	return len(r.Clients) > 0 && r.Clients[0].Name != ""
}

// CanAccessSection reports whether the section is reachable: the intro and
// role sections always are; otherwise every dependency must name a completed
// section and its condition must hold against the record.
func (n *Navigator) CanAccessSection(section domain.Section, record domain.TransactionRecord, completed []domain.Section) bool {
	if section == domain.SectionIntro || section == domain.SectionRole {
		return true
	}
	config, ok := n.configs[section]
	if !ok {
		return false
	}
	for _, dep := range config.dependencies {
		if !containsSection(completed, dep.Section) || !dep.Condition(record) {
			return false
		}
	}
	if config.validateAccess != nil && !config.validateAccess(record) {
		return false
	}
	return true
}

// AccessError describes why a section cannot be entered.
type AccessError struct {
	IsValid bool
	Error   string
}

// ValidateSectionAccess combines the reachability check with a re-validation
// of every earlier section; the first failing section is named in the error.
func (n *Navigator) ValidateSectionAccess(section domain.Section, record domain.TransactionRecord, completed []domain.Section) AccessError {
	if !n.CanAccessSection(section, record, completed) {
		return AccessError{Error: "Please complete previous sections before accessing this one."}
	}
	for s := domain.SectionRole; s < section; s++ {
		if result := n.validator.ValidateSection(s, record); !result.IsValid {
			return AccessError{Error: fmt.Sprintf("Please complete the %s section before proceeding.", s)}
		}
	}
	return AccessError{IsValid: true}
}

// NextSection returns the next reachable section, or the current one when
// the next is out of range or gated; the caller surfaces the refusal.
func (n *Navigator) NextSection(current domain.Section, record domain.TransactionRecord, completed []domain.Section) domain.Section {
	next := current + 1
	if next >= domain.SectionCount {
		return current
	}
	if !n.CanAccessSection(next, record, completed) {
		return current
	}
	return next
}

// PreviousSection steps back, bottoming out at the intro.
func (n *Navigator) PreviousSection(current domain.Section) domain.Section {
	if current-1 < domain.SectionIntro {
		return domain.SectionIntro
	}
	return current - 1
}

// Progress summarizes completion across the numbered sections.
type Progress struct {
	TotalSections  int     `json:"totalSections"`
	CompletedCount int     `json:"completedCount"`
	Percentage     float64 `json:"percentage"`
}

// SectionProgress computes the completion summary for the completed set. The
// record is accepted alongside the completed set like the other navigation
// calls; completion is tracked explicitly, so only the set drives the result.
func (n *Navigator) SectionProgress(_ domain.TransactionRecord, completed []domain.Section) Progress {
	count := len(completed)
	return Progress{
		TotalSections:  domain.SectionCount,
		CompletedCount: count,
		Percentage:     float64(count) / float64(domain.SectionCount) * 100,
	}
}

func containsSection(sections []domain.Section, target domain.Section) bool {
	for _, s := range sections {
		if s == target {
			return true
		}
	}
	return false
}
