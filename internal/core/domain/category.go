package domain

// Category is an entry of the static category tables.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// FallbackCategoryIcon is shown for categories missing from the tables.
const FallbackCategoryIcon = "💸"

var expenseCategories = []Category{
	{Value: "makan", Label: "Makan & Minum", Icon: "🍜"},
	{Value: "bensin", Label: "Bensin & Transportasi", Icon: "⛽"},
	{Value: "hiburan", Label: "Hiburan", Icon: "🎮"},
	{Value: "belanja", Label: "Belanja", Icon: "🛒"},
	{Value: "tagihan", Label: "Tagihan & Utilitas", Icon: "📱"},
	{Value: "kesehatan", Label: "Kesehatan", Icon: "💊"},
	{Value: "pendidikan", Label: "Pendidikan", Icon: "📚"},
	{Value: "lainnya", Label: "Lainnya", Icon: "💸"},
}

var incomeCategories = []Category{
	{Value: "gaji", Label: "Gaji", Icon: "💰"},
	{Value: "bonus", Label: "Bonus", Icon: "🎁"},
	{Value: "usaha", Label: "Usaha Sampingan", Icon: "💼"},
	{Value: "investasi", Label: "Investasi", Icon: "📈"},
	{Value: "hadiah", Label: "Hadiah", Icon: "🎉"},
	{Value: "lainnya", Label: "Lainnya", Icon: "💵"},
}

// CategoriesFor returns a copy of the category table for a flow type.
func CategoriesFor(flow FlowType) []Category {
	src := expenseCategories
	if flow == Inflow {
		src = incomeCategories
	}
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// LookupCategory resolves a category key for a flow type.
// Unknown keys resolve to the raw key as label and the fallback icon.
func LookupCategory(key string, flow FlowType) Category {
	src := expenseCategories
	if flow == Inflow {
		src = incomeCategories
	}
	for _, c := range src {
		if c.Value == key {
			return c
		}
	}
	return Category{Value: key, Label: key, Icon: FallbackCategoryIcon}
}
