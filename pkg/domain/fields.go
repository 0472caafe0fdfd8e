package domain

// Field names a single field of the transaction record. Field identifiers
// match the record's wire (JSON) names and key the validation registry,
// reducer updates, and analytics events.
type Field string

// Transaction record fields.
const (
	FieldRole Field = "role"

	FieldMLSNumber       Field = "mlsNumber"
	FieldPropertyAddress Field = "propertyAddress"
	FieldSalePrice       Field = "salePrice"
	FieldPropertyStatus  Field = "propertyStatus"

	FieldAccessType       Field = "accessType"
	FieldAccessCode       Field = "accessCode"
	FieldUpdateMLSStatus  Field = "updateMlsStatus"
	FieldWinterizedStatus Field = "winterizedStatus"

	FieldMunicipalityTownship Field = "municipalityTownship"
	FieldHOA                  Field = "hoa"
	FieldResaleCertRequired   Field = "resaleCertRequired"
	FieldCORequired           Field = "coRequired"

	FieldClients Field = "clients"

	FieldCommissionBase              Field = "commissionBase"
	FieldSellerAssist                Field = "sellerAssist"
	FieldTotalCommission             Field = "totalCommission"
	FieldTotalCommissionFixed        Field = "totalCommissionFixed"
	FieldListingAgentCommission      Field = "listingAgentCommission"
	FieldListingAgentCommissionFixed Field = "listingAgentCommissionFixed"
	FieldBuyersAgentCommission       Field = "buyersAgentCommission"
	FieldBuyersAgentCommissionFixed  Field = "buyersAgentCommissionFixed"
	FieldBuyerPaidCommission         Field = "buyerPaidCommission"
	FieldReferralParty               Field = "referralParty"
	FieldBrokerEIN                   Field = "brokerEIN"
	FieldReferralFee                 Field = "referralFee"

	FieldFirstRightOfRefusal     Field = "firstRightOfRefusal"
	FieldFirstRightOfRefusalName Field = "firstRightOfRefusalName"
	FieldAttorneyRepresentation  Field = "attorneyRepresentation"
	FieldAttorneyName            Field = "attorneyName"

	FieldHomeWarrantyPurchased Field = "homeWarrantyPurchased"
	FieldHomeWarrantyCompany   Field = "homeWarrantyCompany"
	FieldWarrantyCost          Field = "warrantyCost"
	FieldWarrantyPaidBy        Field = "warrantyPaidBy"

	FieldTitleCompany Field = "titleCompany"
	FieldTCFeePaidBy  Field = "tcFeePaidBy"
	FieldUpdateMLS    Field = "updateMLS"

	FieldRequiredDocuments    Field = "requiredDocuments"
	FieldAcknowledgeDocuments Field = "acknowledgeDocuments"

	FieldSpecialInstructions Field = "specialInstructions"
	FieldUrgentIssues        Field = "urgentIssues"
	FieldAdditionalNotes     Field = "additionalNotes"

	FieldAgentName           Field = "agentName"
	FieldDateSubmitted       Field = "dateSubmitted"
	FieldConfirmSubmission   Field = "confirmSubmission"
	FieldAgentSignature      Field = "agentSignature"
	FieldConfirmationChecked Field = "confirmationChecked"
)

// Value extracts the named field from the record. Unknown fields yield nil.
func (f Field) Value(record TransactionRecord) any {
	switch f {
	case FieldRole:
		return record.Role
	case FieldMLSNumber:
		return record.MLSNumber
	case FieldPropertyAddress:
		return record.PropertyAddress
	case FieldSalePrice:
		return record.SalePrice
	case FieldPropertyStatus:
		return record.PropertyStatus
	case FieldAccessType:
		return record.AccessType
	case FieldAccessCode:
		return record.AccessCode
	case FieldUpdateMLSStatus:
		return record.UpdateMLSStatus
	case FieldWinterizedStatus:
		return record.WinterizedStatus
	case FieldMunicipalityTownship:
		return record.MunicipalityTownship
	case FieldHOA:
		return record.HOA
	case FieldResaleCertRequired:
		return record.ResaleCertRequired
	case FieldCORequired:
		return record.CORequired
	case FieldClients:
		return record.Clients
	case FieldCommissionBase:
		return record.CommissionBase
	case FieldSellerAssist:
		return record.SellerAssist
	case FieldTotalCommission:
		return record.TotalCommission
	case FieldTotalCommissionFixed:
		return record.TotalCommissionFixed
	case FieldListingAgentCommission:
		return record.ListingAgentCommission
	case FieldListingAgentCommissionFixed:
		return record.ListingAgentCommissionFixed
	case FieldBuyersAgentCommission:
		return record.BuyersAgentCommission
	case FieldBuyersAgentCommissionFixed:
		return record.BuyersAgentCommissionFixed
	case FieldBuyerPaidCommission:
		return record.BuyerPaidCommission
	case FieldReferralParty:
		return record.ReferralParty
	case FieldBrokerEIN:
		return record.BrokerEIN
	case FieldReferralFee:
		return record.ReferralFee
	case FieldFirstRightOfRefusal:
		return record.FirstRightOfRefusal
	case FieldFirstRightOfRefusalName:
		return record.FirstRightOfRefusalName
	case FieldAttorneyRepresentation:
		return record.AttorneyRepresentation
	case FieldAttorneyName:
		return record.AttorneyName
	case FieldHomeWarrantyPurchased:
		return record.HomeWarrantyPurchased
	case FieldHomeWarrantyCompany:
		return record.HomeWarrantyCompany
	case FieldWarrantyCost:
		return record.WarrantyCost
	case FieldWarrantyPaidBy:
		return record.WarrantyPaidBy
	case FieldTitleCompany:
		return record.TitleCompany
	case FieldTCFeePaidBy:
		return record.TCFeePaidBy
	case FieldUpdateMLS:
		return record.UpdateMLS
	case FieldRequiredDocuments:
		return record.RequiredDocuments
	case FieldAcknowledgeDocuments:
		return record.AcknowledgeDocuments
	case FieldSpecialInstructions:
		return record.SpecialInstructions
	case FieldUrgentIssues:
		return record.UrgentIssues
	case FieldAdditionalNotes:
		return record.AdditionalNotes
	case FieldAgentName:
		return record.AgentName
	case FieldDateSubmitted:
		return record.DateSubmitted
	case FieldConfirmSubmission:
		return record.ConfirmSubmission
	case FieldAgentSignature:
		return record.AgentSignature
	case FieldConfirmationChecked:
		return record.ConfirmationChecked
	}
	return nil
}
