package form

import (
	"strings"
	"testing"

	"tcintake/internal/validation"
	"tcintake/pkg/domain"
)

func navRecord() domain.TransactionRecord {
	r := domain.DefaultRecord()
	r.Role = domain.RoleListingAgent
	r.PropertyAddress = "123 Main St"
	r.SalePrice = "600000"
	r.Clients = []domain.ClientInfo{{
		Name:          "Jane Doe",
		Address:       "456 Oak Ave",
		Email:         "jane@example.com",
		Phone:         "2155551234",
		MaritalStatus: domain.MaritalSingle,
		Designation:   domain.DesignationSeller,
	}}
	return r
}

func sections(list ...domain.Section) []domain.Section { return list }

func TestIntroAndRoleAlwaysAccessible(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	empty := domain.DefaultRecord()
	if !nav.CanAccessSection(domain.SectionIntro, empty, nil) {
		t.Fatalf("intro must always be reachable")
	}
	if !nav.CanAccessSection(domain.SectionRole, empty, nil) {
		t.Fatalf("role must always be reachable")
	}
}

func TestAccessRequiresCompletedDependencies(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	r := navRecord()

	cases := []struct {
		name      string
		section   domain.Section
		record    domain.TransactionRecord
		completed []domain.Section
		want      bool
	}{
		{"property without role completion", domain.SectionProperty, r, nil, false},
		{"property with role completed", domain.SectionProperty, r, sections(domain.SectionRole), true},
		{"client needs property data", domain.SectionClient, domain.DefaultRecord(), sections(domain.SectionRole, domain.SectionProperty), false},
		{"client with property data", domain.SectionClient, r, sections(domain.SectionRole, domain.SectionProperty), true},
		{"commission needs a named client", domain.SectionCommission, r, sections(domain.SectionRole, domain.SectionProperty, domain.SectionClient), true},
		{"documents need property and client", domain.SectionDocuments, r, sections(domain.SectionProperty), false},
		{"documents reachable", domain.SectionDocuments, r, sections(domain.SectionProperty, domain.SectionClient), true},
		{"signature needs acknowledgment", domain.SectionSignature, r, sections(domain.SectionDocuments), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nav.CanAccessSection(tc.section, tc.record, tc.completed); got != tc.want {
				t.Fatalf("CanAccessSection(%v) = %v, want %v", tc.section, got, tc.want)
			}
		})
	}
}

func TestSignatureGatedOnAcknowledgment(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	r := navRecord()
	completed := sections(domain.SectionDocuments)

	if nav.CanAccessSection(domain.SectionSignature, r, completed) {
		t.Fatalf("signature reachable without acknowledgment")
	}
	r.AcknowledgeDocuments = true
	if !nav.CanAccessSection(domain.SectionSignature, r, completed) {
		t.Fatalf("signature should be reachable once documents are acknowledged")
	}
}

func TestRoleConditionGatesProperty(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	r := domain.DefaultRecord()
	// Completion alone is not enough; the record condition must also hold.
	if nav.CanAccessSection(domain.SectionProperty, r, sections(domain.SectionRole)) {
		t.Fatalf("property reachable without a selected role")
	}
}

func TestValidateSectionAccessMessages(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	r := navRecord()

	res := nav.ValidateSectionAccess(domain.SectionCommission, r, nil)
	if res.IsValid {
		t.Fatalf("gated section should fail access validation")
	}
	if res.Error != "Please complete previous sections before accessing this one." {
		t.Fatalf("error = %q", res.Error)
	}

	// Reachable, but an earlier section no longer validates.
	r2 := navRecord()
	r2.PropertyAddress = " " // reachability uses raw presence, validation trims
	res = nav.ValidateSectionAccess(domain.SectionClient, r2, sections(domain.SectionRole, domain.SectionProperty))
	if res.IsValid {
		t.Fatalf("invalid earlier section should block access")
	}
	if !strings.Contains(res.Error, "Property") {
		t.Fatalf("error should name the failing section, got %q", res.Error)
	}

	res = nav.ValidateSectionAccess(domain.SectionClient, r, sections(domain.SectionRole, domain.SectionProperty))
	if !res.IsValid {
		t.Fatalf("access should validate, got %q", res.Error)
	}
}

func TestNextSectionStaysOnGate(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	r := navRecord()

	if got := nav.NextSection(domain.SectionRole, r, nil); got != domain.SectionRole {
		t.Fatalf("next should stay when the gate is shut, got %v", got)
	}
	if got := nav.NextSection(domain.SectionRole, r, sections(domain.SectionRole)); got != domain.SectionProperty {
		t.Fatalf("next = %v, want property", got)
	}
	if got := nav.NextSection(domain.SectionSignature, r, nil); got != domain.SectionSignature {
		t.Fatalf("next past the last section must not advance, got %v", got)
	}
}

func TestPreviousSectionFloorsAtIntro(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	if got := nav.PreviousSection(domain.SectionProperty); got != domain.SectionRole {
		t.Fatalf("previous = %v, want role", got)
	}
	if got := nav.PreviousSection(domain.SectionIntro); got != domain.SectionIntro {
		t.Fatalf("previous from intro = %v, want intro", got)
	}
}

func TestSectionProgress(t *testing.T) {
	nav := NewNavigator(validation.NewEngine())
	record := domain.DefaultRecord()
	p := nav.SectionProgress(record, sections(domain.SectionRole, domain.SectionProperty, domain.SectionClient, domain.SectionCommission, domain.SectionPropertyDetails))
	if p.TotalSections != 10 || p.CompletedCount != 5 {
		t.Fatalf("progress = %+v", p)
	}
	if p.Percentage != 50 {
		t.Fatalf("percentage = %v, want 50", p.Percentage)
	}

	empty := nav.SectionProgress(record, nil)
	if empty.Percentage != 0 || empty.CompletedCount != 0 {
		t.Fatalf("empty progress = %+v", empty)
	}
}
