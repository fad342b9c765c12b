package models

// ============================================================================
// TRANSACTION CATEGORIES
// Static lookup table. Keys are what the backend stores; labels are the
// product's display strings. Related categories share a color group.
// ============================================================================

type Category struct {
	Key   string
	Label string
	Group string
}

var Categories = []Category{
	{"food", "Alimentação", "food"},
	{"food_grocery", "Alimentação - Mercado", "food"},
	{"food_restaurant", "Alimentação - Restaurante", "food"},
	{"food_delivery", "Alimentação - Delivery", "food"},
	{"housing", "Moradia", "housing"},
	{"housing_rent", "Moradia - Aluguel", "housing"},
	{"housing_condo", "Moradia - Condomínio", "housing"},
	{"housing_maintenance", "Moradia - Manutenção", "housing"},
	{"bill", "Conta", "bill"},
	{"bill_water", "Conta - Água", "bill"},
	{"bill_electricity", "Conta - Luz", "bill"},
	{"bill_gas", "Conta - Gás", "bill"},
	{"bill_internet", "Conta - Internet", "bill"},
	{"bill_phone", "Conta - Celular", "bill"},
	{"transport", "Transporte", "transport"},
	{"transport_fuel", "Transporte - Combustível", "transport"},
	{"transport_public", "Transporte - Transporte Público", "transport"},
	{"transport_apps", "Transporte - Aplicativos", "transport"},
	{"transport_maintenance", "Transporte - Manutenção", "transport"},
	{"health", "Saúde", "health"},
	{"health_pharmacy", "Saúde - Farmácia", "health"},
	{"health_appointments", "Saúde - Consultas", "health"},
	{"health_exams", "Saúde - Exames", "health"},
	{"health_insurance", "Saúde - Plano de Saúde", "health"},
	{"education", "Educação", "education"},
	{"education_tuition", "Educação - Mensalidade", "education"},
	{"education_courses", "Educação - Cursos", "education"},
	{"education_books", "Educação - Livros", "education"},
	{"financial", "Financeiro", "financial"},
	{"credit_card", "Cartão de Crédito", "financial"},
	{"loans", "Empréstimos / Financiamentos", "financial"},
	{"taxes", "Impostos e Taxas", "financial"},
	{"insurance", "Seguros", "financial"},
	{"subscriptions", "Assinaturas", "financial"},
	{"lifestyle", "Estilo de Vida", "lifestyle"},
	{"leisure", "Lazer", "lifestyle"},
	{"travel", "Viagens", "lifestyle"},
	{"personal_shopping", "Compras Pessoais", "lifestyle"},
	{"gifts_donations", "Presentes e Doações", "lifestyle"},
	{"income", "Renda", "income"},
	{"earnings", "Rendimentos", "income"},
	{"refunds", "Reembolsos", "income"},
	{"other", "Outros", "other"},
}

// GroupColors maps a category group to its display color (hex).
var GroupColors = map[string]string{
	"food":      "#f59e0b",
	"housing":   "#8b5cf6",
	"bill":      "#3b82f6",
	"transport": "#06b6d4",
	"health":    "#ef4444",
	"education": "#10b981",
	"financial": "#6366f1",
	"lifestyle": "#ec4899",
	"income":    "#22c55e",
	"other":     "#6b7280",
}

var categoryIndex = func() map[string]Category {
	m := make(map[string]Category, len(Categories))
	for _, c := range Categories {
		m[c.Key] = c
	}
	return m
}()

// CategoryLabel resolves a stored category key to its display label.
// Unknown keys fall back to the key itself.
func CategoryLabel(key string) string {
	if c, ok := categoryIndex[key]; ok {
		return c.Label
	}
	return key
}

// CategoryColor resolves a category key to its group display color.
func CategoryColor(key string) string {
	if c, ok := categoryIndex[key]; ok {
		return GroupColors[c.Group]
	}
	return GroupColors["other"]
}
