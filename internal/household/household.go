package household

// Category identifies a monthly expense bucket.
type Category string

const (
	CategoryHousing       Category = "housing"
	CategoryTransport     Category = "transport"
	CategoryFood          Category = "food"
	CategoryUtilities     Category = "utilities"
	CategoryHealthcare    Category = "healthcare"
	CategoryEducation     Category = "education"
	CategoryPersonal      Category = "personal"
	CategoryEntertainment Category = "entertainment"
	CategoryCharity       Category = "charity"
	CategoryOther         Category = "other"
)

// Categories lists every expense category in display order.
var Categories = []Category{
	CategoryHousing,
	CategoryTransport,
	CategoryFood,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryPersonal,
	CategoryEntertainment,
	CategoryCharity,
	CategoryOther,
}

// ScoredCategories are the categories that carry a peer benchmark and
// participate in overspend scoring. Education and other do not.
var ScoredCategories = []Category{
	CategoryHousing,
	CategoryTransport,
	CategoryFood,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryPersonal,
	CategoryEntertainment,
	CategoryCharity,
}

var categoryLabels = map[Category]string{
	CategoryHousing:       "Housing (Rent/Mortgage)",
	CategoryTransport:     "Transportation",
	CategoryFood:          "Food & Groceries",
	CategoryUtilities:     "Utilities",
	CategoryHealthcare:    "Healthcare",
	CategoryEducation:     "Education",
	CategoryPersonal:      "Personal/Clothing",
	CategoryEntertainment: "Entertainment",
	CategoryCharity:       "Charity/Zakat (2.5% min)",
	CategoryOther:         "Other Expenses",
}

// Label returns the display label for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}

	return string(c)
}

// Scored reports whether the category carries a peer benchmark.
func (c Category) Scored() bool {
	for _, s := range ScoredCategories {
		if c == s {
			return true
		}
	}

	return false
}

// DebtType classifies a debt entry.
type DebtType string

const (
	DebtCreditCard   DebtType = "Credit Card"
	DebtPersonalLoan DebtType = "Personal Loan"
	DebtAutoLoan     DebtType = "Auto Loan"
	DebtStudentLoan  DebtType = "Student Loan"
	DebtMortgage     DebtType = "Mortgage"
	DebtOther        DebtType = "Other"
)

// DebtTypes lists the selectable debt types.
var DebtTypes = []DebtType{
	DebtCreditCard,
	DebtPersonalLoan,
	DebtAutoLoan,
	DebtStudentLoan,
	DebtMortgage,
	DebtOther,
}

// MaxTermMonths returns the longest payoff horizon that makes sense for the
// debt type. Projections beyond this are clamped.
func (t DebtType) MaxTermMonths() int {
	switch t {
	case DebtMortgage:
		return 360
	case DebtAutoLoan:
		return 72
	case DebtStudentLoan:
		return 240
	default:
		return 600
	}
}

// Fixed option lists for the demographics step.
var (
	AgeRanges       = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	EducationLevels = []string{"High School", "Bachelor's", "Master's", "PhD"}
	EmploymentTypes = []string{"Employee", "Self-Employed", "Student", "Retired"}
)

// Demographics classifies the household for peer lookups. It never feeds the
// score directly; only location and income range select benchmark rows.
type Demographics struct {
	Location    string
	AgeRange    string
	Education   string
	Employment  string
	Adults      int
	Children    int
	IncomeRange string
}

// Income holds the four monthly income components. Zero total income is a
// valid state, not an error.
type Income struct {
	Primary    float64
	Spouse     float64
	Business   float64
	Investment float64
}

// Total returns the sum of all income components.
func (i Income) Total() float64 {
	return i.Primary + i.Spouse + i.Business + i.Investment
}

// Expenses maps categories to non-negative monthly amounts. Missing keys
// read as zero.
type Expenses map[Category]float64

// Total returns the sum over every category.
func (e Expenses) Total() float64 {
	var sum float64
	for _, v := range e {
		sum += v
	}

	return sum
}

// Debt is one debt entry. APR is an annual percentage (24 means 24%/year).
// RemainingTerm is an optional known number of months left; zero means
// unknown.
type Debt struct {
	Name          string
	Type          DebtType
	Balance       float64
	APR           float64
	MinPayment    float64
	ExtraPayment  float64
	RemainingTerm int
}

// Active reports whether the debt still carries a balance.
func (d Debt) Active() bool {
	return d.Balance > 0
}

// Snapshot is the full household financial picture the engine consumes.
// Name and Email are optional identity fields used for personalization and
// analytics only.
type Snapshot struct {
	Name          string
	Email         string
	Demographics  Demographics
	Income        Income
	Expenses      Expenses
	Debts         []Debt
	EmergencyFund float64
}
