package entities

// DefaultGlobalConfig is the catalog seeded on first run, before any
// save has happened. It is never empty: resolution and pricing assume at
// least one supplier, one internal resource and one category exist.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Suppliers: []RateEntity{
			{ID: "sup-reply-g1", Name: "Reply", Role: RoleG1, Department: "IT", RealRate: 463.00, OfficialRate: 463.00, IsGlobal: true, Status: StatusActive},
			{ID: "sup-quid-g1", Name: "Quid", Role: RoleG1, Department: "IT", RealRate: 506.30, OfficialRate: 506.30, IsGlobal: true, Status: StatusActive},
			{ID: "sup-reply-g2", Name: "Reply Dev", Role: RoleG2, Department: "IT", RealRate: 380.00, OfficialRate: 395.00, IsGlobal: true, Status: StatusActive},
			{ID: "sup-quid-ta", Name: "Quid Test", Role: RoleTA, Department: "IT", RealRate: 340.00, OfficialRate: 355.00, IsGlobal: true, Status: StatusActive},
		},
		InternalResources: []RateEntity{
			{ID: "int-analyst-g1", Name: "Internal Analyst", Role: RoleG1, Department: "IT", RealRate: 310.00, OfficialRate: 420.00, IsGlobal: true, Status: StatusActive},
			{ID: "int-dev-g2", Name: "Internal Developer", Role: RoleG2, Department: "IT", RealRate: 290.00, OfficialRate: 390.00, IsGlobal: true, Status: StatusActive},
			{ID: "int-tester-ta", Name: "Internal Tester", Role: RoleTA, Department: "IT", RealRate: 270.00, OfficialRate: 360.00, IsGlobal: true, Status: StatusActive},
			{ID: "int-pm", Name: "Internal PM", Role: RolePM, Department: "PMO", RealRate: 350.00, OfficialRate: 480.00, IsGlobal: true, Status: StatusActive},
		},
		Categories: []Category{
			{ID: "cat-simple", Name: "Simple", Description: "Configuration or trivial change", Multiplier: 0.5, IsGlobal: true},
			{ID: "cat-standard", Name: "Standard", Description: "Regular feature work", Multiplier: 1.0, IsGlobal: true},
			{ID: "cat-complex", Name: "Complex", Description: "Cross-system or high-risk feature", Multiplier: 1.8, IsGlobal: true},
			{ID: "cat-critical", Name: "Critical", Description: "Core architecture work", Multiplier: 2.5, IsGlobal: true},
		},
		CalculationParameters: CalculationParameters{
			WorkingDaysPerMonth: 20,
			WorkingHoursPerDay:  8,
			CurrencySymbol:      "€",
			RiskMargin:          0.10,
			OverheadPercentage:  0.15,
		},
	}
}
