package domain

// Section indexes one step of the multi-section intake form. The intro page
// sits at -1; the numbered sections run 0 through 9.
type Section int

// Form sections in navigation order.
const (
	SectionIntro           Section = -1
	SectionRole            Section = 0
	SectionProperty        Section = 1
	SectionClient          Section = 2
	SectionCommission      Section = 3
	SectionPropertyDetails Section = 4
	SectionWarranty        Section = 5
	SectionTitleCompany    Section = 6
	SectionDocuments       Section = 7
	SectionAdditionalInfo  Section = 8
	SectionSignature       Section = 9
)

// SectionCount is the number of numbered sections (the intro excluded).
const SectionCount = 10

var sectionNames = map[Section]string{
	SectionIntro:           "Introduction",
	SectionRole:            "Role",
	SectionProperty:        "Property",
	SectionClient:          "Client",
	SectionCommission:      "Commission",
	SectionPropertyDetails: "Property Details",
	SectionWarranty:        "Warranty",
	SectionTitleCompany:    "Title Company",
	SectionDocuments:       "Documents",
	SectionAdditionalInfo:  "Additional Info",
	SectionSignature:       "Signature",
}

// String returns the display name of the section.
func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the section is a numbered form section.
func (s Section) Valid() bool {
	return s >= SectionRole && s < SectionCount
}
