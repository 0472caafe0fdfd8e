// Package domain defines the core entities, value types, validation
// primitives, and persistence contracts used by tcintake.
package domain

import "time"

// AgentRole identifies which side of the transaction the submitting agent
// represents. The empty value means no role has been selected yet.
type AgentRole string

// Supported agent roles. Role selection drives required fields downstream
// and the number of clients a record may carry.
const (
	// RoleBuyersAgent represents the buyer's side only.
	RoleBuyersAgent AgentRole = "Buyer's Agent"
	// RoleListingAgent represents the seller's side only.
	RoleListingAgent AgentRole = "Listing Agent"
	// RoleDualAgent represents both sides of the same transaction.
	RoleDualAgent AgentRole = "Dual Agent"
	// RoleUnset is the mount-time default before a role is chosen.
	RoleUnset AgentRole = ""
)

// Valid reports whether the role is one of the selectable roles.
func (r AgentRole) Valid() bool {
	switch r {
	case RoleBuyersAgent, RoleListingAgent, RoleDualAgent:
		return true
	}
	return false
}

// MaxClients returns the client cap for the role: dual agency allows both
// sides on one record, single-sided roles allow a client plus co-client.
func MaxClients(role AgentRole) int {
	if role == RoleDualAgent {
		return 4
	}
	return 2
}

// DefaultDesignation returns the client designation implied by the role.
// Dual agency has no implied designation; the agent assigns one per client.
func DefaultDesignation(role AgentRole) ClientDesignation {
	switch role {
	case RoleBuyersAgent:
		return DesignationBuyer
	case RoleListingAgent:
		return DesignationSeller
	}
	return DesignationUnset
}

// MaritalStatus captures the client's marital status as collected for deed
// preparation.
type MaritalStatus string

// Recognized marital statuses.
const (
	MaritalSingle  MaritalStatus = "Single"
	MaritalMarried MaritalStatus = "Married"
	MaritalDivorce MaritalStatus = "Divorce"
	MaritalWidowed MaritalStatus = "Widowed"
)

// ClientDesignation marks which side of the transaction a client belongs to.
// It is meaningful only under dual agency; single-sided roles force it.
type ClientDesignation string

// Client designations.
const (
	DesignationBuyer  ClientDesignation = "Buyer"
	DesignationSeller ClientDesignation = "Seller"
	DesignationUnset  ClientDesignation = ""
)

// CommissionBase selects the amount commission percentages are computed
// against.
type CommissionBase string

// Commission bases.
const (
	// BaseSalePrice computes percentages against the full sale price.
	BaseSalePrice CommissionBase = "Sale Price"
	// BaseNetProceeds computes percentages against sale price minus seller assist.
	BaseNetProceeds CommissionBase = "Net Proceeds (After Seller's Assistance)"
)

// CommissionType distinguishes the representation an agent edits directly.
type CommissionType string

// Commission input representations.
const (
	CommissionPercentage CommissionType = "Percentage"
	CommissionFixed      CommissionType = "Fixed"
)

// TCFeePaidBy identifies who covers the transaction-coordination fee.
type TCFeePaidBy string

// TC fee payers.
const (
	TCFeeClient TCFeePaidBy = "Client"
	TCFeeAgent  TCFeePaidBy = "Agent"
)

// AccessType describes how the property is accessed for showings.
type AccessType string

// Property access methods.
const (
	AccessComboLockbox      AccessType = "Combo Lockbox"
	AccessElectronicLockbox AccessType = "Electronic Lockbox"
	AccessKeypad            AccessType = "Keypad"
	AccessAppointmentOnly   AccessType = "Appointment Only"
)

// PropertyStatus describes the property's occupancy.
type PropertyStatus string

// Property occupancy statuses.
const (
	PropertyVacant   PropertyStatus = "Vacant"
	PropertyOccupied PropertyStatus = "Occupied"
)

// WinterizedStatus records whether a vacant property has been winterized.
type WinterizedStatus string

// Winterization statuses.
const (
	WinterizedYes           WinterizedStatus = "Yes"
	WinterizedNo            WinterizedStatus = "No"
	WinterizedNotApplicable WinterizedStatus = "not_applicable"
)

// WarrantyPaidBy identifies who pays for a purchased home warranty.
type WarrantyPaidBy string

// Warranty payers.
const (
	WarrantySeller WarrantyPaidBy = "Seller"
	WarrantyBuyer  WarrantyPaidBy = "Buyer"
	WarrantyAgent  WarrantyPaidBy = "Agent"
)

// SubmissionStatus tracks a submitted record through backend review.
type SubmissionStatus string

// Submission statuses. A record is created as pending; later states are
// assigned server-side.
const (
	StatusPending   SubmissionStatus = "pending"
	StatusSubmitted SubmissionStatus = "submitted"
	StatusApproved  SubmissionStatus = "approved"
	StatusRejected  SubmissionStatus = "rejected"
)

// ClientInfo holds the per-client contact and deed-preparation data.
type ClientInfo struct {
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	MaritalStatus MaritalStatus     `json:"maritalStatus"`
	Designation   ClientDesignation `json:"designation"`
}

// BlankClient returns an empty client entry carrying the role-appropriate
// default designation.
func BlankClient(role AgentRole) ClientInfo {
	return ClientInfo{
		MaritalStatus: MaritalSingle,
		Designation:   DefaultDesignation(role),
	}
}

// TransactionRecord is the form's working document: a flat set of typed
// fields grouped conceptually into role, property, access, client, commission,
// legal, warranty, title, document, and signature data. Components treat
// records as immutable snapshots; updates produce a new copy.
type TransactionRecord struct {
	Role AgentRole `json:"role"`

	// Property core
	MLSNumber       string         `json:"mlsNumber"`
	PropertyAddress string         `json:"propertyAddress"`
	SalePrice       string         `json:"salePrice"`
	PropertyStatus  PropertyStatus `json:"propertyStatus"`

	// Property access
	AccessType       AccessType       `json:"accessType"`
	AccessCode       string           `json:"accessCode,omitempty"`
	UpdateMLSStatus  bool             `json:"updateMlsStatus,omitempty"`
	WinterizedStatus WinterizedStatus `json:"winterizedStatus"`

	// Location and governance
	MunicipalityTownship string `json:"municipalityTownship"`
	HOA                  string `json:"hoa"`
	ResaleCertRequired   bool   `json:"resaleCertRequired"`
	CORequired           bool   `json:"coRequired"`

	Clients []ClientInfo `json:"clients"`

	// Commission and referral
	CommissionBase              CommissionBase `json:"commissionBase"`
	SellerAssist                string         `json:"sellerAssist"`
	TotalCommission             string         `json:"totalCommission"`
	TotalCommissionFixed        string         `json:"totalCommissionFixed"`
	ListingAgentCommissionType  CommissionType `json:"listingAgentCommissionType"`
	ListingAgentCommission      string         `json:"listingAgentCommission"`
	ListingAgentCommissionFixed string         `json:"listingAgentCommissionFixed"`
	BuyersAgentCommissionType   CommissionType `json:"buyersAgentCommissionType"`
	BuyersAgentCommission       string         `json:"buyersAgentCommission"`
	BuyersAgentCommissionFixed  string         `json:"buyersAgentCommissionFixed"`
	BuyerPaidCommission         string         `json:"buyerPaidCommission"`
	ReferralParty               string         `json:"referralParty"`
	BrokerEIN                   string         `json:"brokerEIN"`
	ReferralFee                 string         `json:"referralFee"`

	// Manual edit tracking per commission pair. A set flag records that the
	// fixed amount was hand-edited and suppresses auto-recompute until the
	// value is normalized on blur.
	IsManualTotalFixed   bool `json:"isManualTotalFixed,omitempty"`
	IsManualListingFixed bool `json:"isManualListingFixed,omitempty"`
	IsManualBuyersFixed  bool `json:"isManualBuyersFixed,omitempty"`

	// Legal requirements
	FirstRightOfRefusal     bool   `json:"firstRightOfRefusal"`
	FirstRightOfRefusalName string `json:"firstRightOfRefusalName"`
	AttorneyRepresentation  bool   `json:"attorneyRepresentation"`
	AttorneyName            string `json:"attorneyName"`

	// Warranty
	HomeWarrantyPurchased bool           `json:"homeWarrantyPurchased"`
	HomeWarrantyCompany   string         `json:"homeWarrantyCompany"`
	WarrantyCost          string         `json:"warrantyCost"`
	WarrantyPaidBy        WarrantyPaidBy `json:"warrantyPaidBy"`

	// Title and settlement
	TitleCompany string      `json:"titleCompany"`
	TCFeePaidBy  TCFeePaidBy `json:"tcFeePaidBy"`

	UpdateMLS bool `json:"updateMLS"`

	// Documents
	RequiredDocuments    []string `json:"requiredDocuments"`
	AcknowledgeDocuments bool     `json:"acknowledgeDocuments"`

	// Additional information
	SpecialInstructions string `json:"specialInstructions"`
	UrgentIssues        string `json:"urgentIssues"`
	AdditionalNotes     string `json:"additionalNotes"`

	// Signature
	AgentName           string `json:"agentName"`
	DateSubmitted       string `json:"dateSubmitted"`
	ConfirmSubmission   bool   `json:"confirmSubmission"`
	AgentSignature      string `json:"agentSignature"`
	ConfirmationChecked bool   `json:"confirmationChecked"`
}

// DefaultRecord returns the mount-time record: a single blank client and the
// conventional defaults for every enumerated field.
func DefaultRecord() TransactionRecord {
	return TransactionRecord{
		Role:             RoleUnset,
		PropertyStatus:   PropertyVacant,
		AccessType:       AccessElectronicLockbox,
		WinterizedStatus: WinterizedNo,
		Clients:          []ClientInfo{BlankClient(RoleUnset)},
		CommissionBase:   BaseSalePrice,
		WarrantyPaidBy:   WarrantySeller,
		TCFeePaidBy:      TCFeeClient,

		ListingAgentCommissionType: CommissionPercentage,
		BuyersAgentCommissionType:  CommissionPercentage,
	}
}

// Clone returns a deep copy of the record. Slices are the only reference
// fields, so the copy shares nothing with the receiver.
func (r TransactionRecord) Clone() TransactionRecord {
	out := r
	out.Clients = append([]ClientInfo(nil), r.Clients...)
	out.RequiredDocuments = append([]string(nil), r.RequiredDocuments...)
	return out
}

// SubmissionRecord is the normalized, transaction-id-bearing snapshot sent to
// the backend and cached locally. It is immutable once created; resubmitting
// produces a new record with a new id.
type SubmissionRecord struct {
	TransactionRecord

	TransactionID  string           `json:"transactionId"`
	SubmissionDate string           `json:"submissionDate"`
	Status         SubmissionStatus `json:"status"`
}

// SubmittedAt parses the record's submission date. The zero time is returned
// for records whose date does not parse.
func (s SubmissionRecord) SubmittedAt() time.Time {
	t, err := time.Parse(time.RFC3339, s.SubmissionDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
