package form

import "tcintake/pkg/domain"

// applyField writes a single field update into the record. Unknown fields
// and values of the wrong kind are ignored; an update may not leave the
// client list empty or the role outside its enumeration.
func applyField(record *domain.TransactionRecord, field domain.Field, value any) {
	switch field {
	case domain.FieldRole:
		role := domain.AgentRole(asString(value))
		if role == domain.RoleUnset || role.Valid() {
			record.Role = role
		}
	case domain.FieldMLSNumber:
		record.MLSNumber = asString(value)
	case domain.FieldPropertyAddress:
		record.PropertyAddress = asString(value)
	case domain.FieldSalePrice:
		record.SalePrice = asString(value)
	case domain.FieldPropertyStatus:
		record.PropertyStatus = domain.PropertyStatus(asString(value))
	case domain.FieldAccessType:
		record.AccessType = domain.AccessType(asString(value))
	case domain.FieldAccessCode:
		record.AccessCode = asString(value)
	case domain.FieldUpdateMLSStatus:
		record.UpdateMLSStatus = asBool(value)
	case domain.FieldWinterizedStatus:
		record.WinterizedStatus = domain.WinterizedStatus(asString(value))
	case domain.FieldMunicipalityTownship:
		record.MunicipalityTownship = asString(value)
	case domain.FieldHOA:
		record.HOA = asString(value)
	case domain.FieldResaleCertRequired:
		record.ResaleCertRequired = asBool(value)
	case domain.FieldCORequired:
		record.CORequired = asBool(value)
	case domain.FieldClients:
		if clients, ok := value.([]domain.ClientInfo); ok && len(clients) > 0 {
			record.Clients = append([]domain.ClientInfo(nil), clients...)
		}
	case domain.FieldCommissionBase:
		record.CommissionBase = domain.CommissionBase(asString(value))
	case domain.FieldSellerAssist:
		record.SellerAssist = asString(value)
	case domain.FieldTotalCommission:
		record.TotalCommission = asString(value)
	case domain.FieldTotalCommissionFixed:
		record.TotalCommissionFixed = asString(value)
	case domain.FieldListingAgentCommission:
		record.ListingAgentCommission = asString(value)
	case domain.FieldListingAgentCommissionFixed:
		record.ListingAgentCommissionFixed = asString(value)
	case domain.FieldBuyersAgentCommission:
		record.BuyersAgentCommission = asString(value)
	case domain.FieldBuyersAgentCommissionFixed:
		record.BuyersAgentCommissionFixed = asString(value)
	case domain.FieldBuyerPaidCommission:
		record.BuyerPaidCommission = asString(value)
	case domain.FieldReferralParty:
		record.ReferralParty = asString(value)
	case domain.FieldBrokerEIN:
		record.BrokerEIN = asString(value)
	case domain.FieldReferralFee:
		record.ReferralFee = asString(value)
	case domain.FieldFirstRightOfRefusal:
		record.FirstRightOfRefusal = asBool(value)
	case domain.FieldFirstRightOfRefusalName:
		record.FirstRightOfRefusalName = asString(value)
	case domain.FieldAttorneyRepresentation:
		record.AttorneyRepresentation = asBool(value)
	case domain.FieldAttorneyName:
		record.AttorneyName = asString(value)
	case domain.FieldHomeWarrantyPurchased:
		record.HomeWarrantyPurchased = asBool(value)
	case domain.FieldHomeWarrantyCompany:
		record.HomeWarrantyCompany = asString(value)
	case domain.FieldWarrantyCost:
		record.WarrantyCost = asString(value)
	case domain.FieldWarrantyPaidBy:
		record.WarrantyPaidBy = domain.WarrantyPaidBy(asString(value))
	case domain.FieldTitleCompany:
		record.TitleCompany = asString(value)
	case domain.FieldTCFeePaidBy:
		record.TCFeePaidBy = domain.TCFeePaidBy(asString(value))
	case domain.FieldUpdateMLS:
		record.UpdateMLS = asBool(value)
	case domain.FieldRequiredDocuments:
		if docs, ok := value.([]string); ok {
			record.RequiredDocuments = append([]string(nil), docs...)
		}
	case domain.FieldAcknowledgeDocuments:
		record.AcknowledgeDocuments = asBool(value)
	case domain.FieldSpecialInstructions:
		record.SpecialInstructions = asString(value)
	case domain.FieldUrgentIssues:
		record.UrgentIssues = asString(value)
	case domain.FieldAdditionalNotes:
		record.AdditionalNotes = asString(value)
	case domain.FieldAgentName:
		record.AgentName = asString(value)
	case domain.FieldDateSubmitted:
		record.DateSubmitted = asString(value)
	case domain.FieldConfirmSubmission:
		record.ConfirmSubmission = asBool(value)
	case domain.FieldAgentSignature:
		record.AgentSignature = asString(value)
	case domain.FieldConfirmationChecked:
		record.ConfirmationChecked = asBool(value)
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case domain.AgentRole:
		return string(v)
	case domain.PropertyStatus:
		return string(v)
	case domain.AccessType:
		return string(v)
	case domain.WinterizedStatus:
		return string(v)
	case domain.CommissionBase:
		return string(v)
	case domain.WarrantyPaidBy:
		return string(v)
	case domain.TCFeePaidBy:
		return string(v)
	case domain.MaritalStatus:
		return string(v)
	case domain.ClientDesignation:
		return string(v)
	}
	return ""
}

func asBool(value any) bool {
	b, _ := value.(bool)
	return b
}
