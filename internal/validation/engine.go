package validation

import (
	"fmt"
	"strconv"

	"tcintake/pkg/domain"
)

// Engine evaluates the fixed rule catalogue over fields, sections, and whole
// records. Construct it once and share it; it is stateless after construction.
type Engine struct {
	fieldRules    map[domain.Field][]domain.Rule
	sectionFields map[domain.Section][]domain.Field
	clientRules   []clientRule
	commissionCap float64
}

type clientRule struct {
	label string
	rule  domain.Rule
	value func(domain.ClientInfo) any
}

// Option configures optional engine behavior.
type Option func(*Engine)

// WithCommissionCap enables the advisory business rule that the total fixed
// commission may not exceed the given percentage of the sale price. The
// finding is a warning and never blocks submission.
func WithCommissionCap(maxPercent float64) Option {
	return func(e *Engine) {
		e.commissionCap = maxPercent
	}
}

// NewEngine builds an engine carrying the canonical rule registry.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		fieldRules:    defaultFieldRules(),
		sectionFields: defaultSectionFields(),
		clientRules:   defaultClientRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func notBuyersAgent(r domain.TransactionRecord) bool { return r.Role != domain.RoleBuyersAgent }
func warrantyPurchased(r domain.TransactionRecord) bool {
	return r.HomeWarrantyPurchased
}

func defaultFieldRules() map[domain.Field][]domain.Rule {
	return map[domain.Field][]domain.Rule{
		domain.FieldRole: {
			Required("Please select your role"),
			ValidRole("Please select a valid role"),
		},
		domain.FieldPropertyAddress: {Required("Property address is required")},
		domain.FieldSalePrice: {
			Required("Sale price is required"),
			Currency("Please enter a valid sale price"),
		},
		domain.FieldPropertyStatus: {Required("Property status is required")},
		domain.FieldClients:        {Required("At least one client is required")},
		domain.FieldCommissionBase: {
			When(notBuyersAgent, Required("Commission base is required")),
		},
		domain.FieldTotalCommission: {
			When(notBuyersAgent, Required("Total commission is required")),
			Currency("Please enter a valid commission amount"),
		},
		domain.FieldAccessType: {Required("Access type is required")},
		domain.FieldHomeWarrantyCompany: {
			When(warrantyPurchased, Required("Home warranty company is required when warranty is purchased")),
		},
		domain.FieldWarrantyCost: {
			When(warrantyPurchased, Required("Warranty cost is required when warranty is purchased")),
			Currency("Please enter a valid warranty cost"),
		},
		domain.FieldWarrantyPaidBy: {
			When(warrantyPurchased, Required("Warranty paid by is required when warranty is purchased")),
		},
		domain.FieldTitleCompany: {Required("Title company is required")},
		domain.FieldTCFeePaidBy:  {Required("Fee payment responsibility must be specified")},
		domain.FieldAcknowledgeDocuments: {
			MustBeTrue("You must acknowledge the required documents"),
		},
		domain.FieldAgentName:     {Required("Agent name is required")},
		domain.FieldDateSubmitted: {Required("Date is required")},
		domain.FieldConfirmationChecked: {
			MustBeTrue("You must confirm the submission"),
		},
		domain.FieldAttorneyName: {
			When(func(r domain.TransactionRecord) bool { return r.AttorneyRepresentation },
				Required("Attorney name is required when attorney representation is selected")),
		},
		domain.FieldFirstRightOfRefusalName: {
			When(func(r domain.TransactionRecord) bool { return r.FirstRightOfRefusal },
				Required("Name is required when first right of refusal applies")),
		},
		domain.FieldReferralFee: {
			Percentage("Referral fee must be between 0 and 100"),
		},
	}
}

// defaultSectionFields is the section to required-field table. Section
// validation covers these fields plus, for the client section, the per-client
// rules.
func defaultSectionFields() map[domain.Section][]domain.Field {
	return map[domain.Section][]domain.Field{
		domain.SectionRole:     {domain.FieldRole},
		domain.SectionProperty: {domain.FieldPropertyAddress, domain.FieldSalePrice, domain.FieldPropertyStatus},
		domain.SectionClient:   {domain.FieldClients},
		domain.SectionCommission: {
			domain.FieldCommissionBase, domain.FieldTotalCommission,
		},
		domain.SectionPropertyDetails: {
			domain.FieldAccessType,
			domain.FieldAttorneyName, domain.FieldFirstRightOfRefusalName,
		},
		domain.SectionWarranty: {
			domain.FieldHomeWarrantyPurchased,
			domain.FieldHomeWarrantyCompany, domain.FieldWarrantyCost, domain.FieldWarrantyPaidBy,
		},
		domain.SectionTitleCompany:   {domain.FieldTitleCompany, domain.FieldTCFeePaidBy},
		domain.SectionDocuments:      {domain.FieldAcknowledgeDocuments},
		domain.SectionAdditionalInfo: {},
		domain.SectionSignature: {
			domain.FieldAgentName, domain.FieldDateSubmitted, domain.FieldConfirmationChecked,
		},
	}
}

func defaultClientRules() []clientRule {
	dualAgent := func(r domain.TransactionRecord) bool { return r.Role == domain.RoleDualAgent }
	return []clientRule{
		{"name", Required("Client name is required"), func(c domain.ClientInfo) any { return c.Name }},
		{"name", MinLength(2, "Name must be at least 2 characters"), func(c domain.ClientInfo) any { return c.Name }},
		{"email", Required("Client email is required"), func(c domain.ClientInfo) any { return c.Email }},
		{"email", Email("Please enter a valid email address"), func(c domain.ClientInfo) any { return c.Email }},
		{"phone", Required("Client phone is required"), func(c domain.ClientInfo) any { return c.Phone }},
		{"phone", Phone("Please enter a valid phone number"), func(c domain.ClientInfo) any { return c.Phone }},
		{"address", Required("Client address is required"), func(c domain.ClientInfo) any { return c.Address }},
		{"maritalStatus", Required("Marital status is required"), func(c domain.ClientInfo) any { return c.MaritalStatus }},
		{"designation", When(dualAgent, Required("Client designation is required for dual agency")), func(c domain.ClientInfo) any { return c.Designation }},
	}
}

// ValidateField evaluates the ordered rules bound to the field. All failing
// messages are collected in registration order. Fields without rules are
// always valid. The clients field additionally runs the per-client rules.
func (e *Engine) ValidateField(field domain.Field, value any, record domain.TransactionRecord) domain.FieldResult {
	result := domain.FieldResult{IsValid: true}
	for _, rule := range e.fieldRules[field] {
		ok, message := rule.Evaluate(value, record)
		if ok {
			continue
		}
		if rule.Level() == domain.LevelWarning {
			result.Warnings = append(result.Warnings, message)
			continue
		}
		result.IsValid = false
		result.Errors = append(result.Errors, message)
	}
	if field == domain.FieldClients {
		if clients, ok := value.([]domain.ClientInfo); ok {
			result.Merge(e.validateClients(clients, record))
		}
	}
	return result
}

func (e *Engine) validateClients(clients []domain.ClientInfo, record domain.TransactionRecord) domain.FieldResult {
	result := domain.FieldResult{IsValid: true}
	for i, client := range clients {
		for _, cr := range e.clientRules {
			ok, message := cr.rule.Evaluate(cr.value(client), record)
			if !ok {
				result.IsValid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Client %d: %s", i+1, message))
			}
		}
	}
	return result
}

// ValidateSection evaluates the section's required-field set plus any
// section-specific composite rules. Evaluation is total: every field's
// failing messages are collected.
func (e *Engine) ValidateSection(section domain.Section, record domain.TransactionRecord) domain.FieldResult {
	result := domain.FieldResult{IsValid: true}
	for _, field := range e.sectionFields[section] {
		result.Merge(e.ValidateField(field, field.Value(record), record))
	}
	if section == domain.SectionCommission {
		result.Merge(e.checkCommissionCap(record))
	}
	return result
}

// ValidateForm validates every section and unions the outcomes.
func (e *Engine) ValidateForm(record domain.TransactionRecord) domain.FieldResult {
	result := domain.FieldResult{IsValid: true}
	for s := domain.SectionRole; s < domain.SectionCount; s++ {
		result.Merge(e.ValidateSection(s, record))
	}
	return result
}

// RequiredFields returns the required-field set for the section.
func (e *Engine) RequiredFields(section domain.Section) []domain.Field {
	return append([]domain.Field(nil), e.sectionFields[section]...)
}

// checkCommissionCap applies the opt-in advisory cap on total commission
// relative to sale price. Disabled engines skip it entirely.
func (e *Engine) checkCommissionCap(record domain.TransactionRecord) domain.FieldResult {
	result := domain.FieldResult{IsValid: true}
	if e.commissionCap <= 0 {
		return result
	}
	price, err := strconv.ParseFloat(CleanNumeric(record.SalePrice), 64)
	if err != nil || price <= 0 {
		return result
	}
	pct, err := strconv.ParseFloat(record.TotalCommission, 64)
	if err != nil {
		return result
	}
	if pct > e.commissionCap {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Total commission %.3g%% exceeds the %.3g%% cap for this sale price", pct, e.commissionCap))
	}
	return result
}
