package domain

// Role-scoped compliance checklists. The documents section presents the list
// matching the selected role; acknowledgment covers the whole list.
var (
	buyersAgentDocuments = []string{
		"Agreement of Sale & Addenda",
		"Attorney Review Clause",
		"Deposit Money Notice",
		"Buyer's Agency Contract",
		"Estimated Closing Costs",
		"KW Affiliate Services Disclosure",
		"Consumer Notice",
		"Seller's Property Disclosure",
		"Prequalification Letter",
		"Proof of Funds",
		"Commission Agreement",
		"Wire Fraud Advisory",
		"KW Home Warranty Waiver",
	}

	listingAgentDocuments = []string{
		"Listing Agreement",
		"Seller's Property Disclosure",
		"Agreement of Sale",
		"Estimated Seller Proceeds",
		"Title Documents",
		"KW Affiliate Services Disclosure",
		"Wire Fraud Advisory",
		"Commission Agreement",
	}

	dualAgentDocuments = []string{
		"Agreement of Sale & Addenda",
		"Dual Agency Disclosure",
		"Deposit Money Notice",
		"Attorney Review Clause",
		"Buyer's Agency Contract",
		"Buyer's Estimated Costs",
		"Prequalification Letter",
		"Proof of Funds",
		"Listing Agreement",
		"Seller's Property Disclosure",
		"Estimated Seller Proceeds",
		"Title Documents",
		"KW Affiliate Services Disclosure",
		"Consumer Notice",
		"Wire Fraud Advisory",
		"Commission Agreement",
		"KW Home Warranty Waiver",
	}
)

// RequiredDocumentsForRole returns the compliance document checklist for the
// role. The returned slice is a copy; callers may mutate it freely.
func RequiredDocumentsForRole(role AgentRole) []string {
	var docs []string
	switch role {
	case RoleBuyersAgent:
		docs = buyersAgentDocuments
	case RoleListingAgent:
		docs = listingAgentDocuments
	case RoleDualAgent:
		docs = dualAgentDocuments
	default:
		return nil
	}
	return append([]string(nil), docs...)
}
