package account

const (
	// BaseServiceCharge is the flat fee every account pays.
	BaseServiceCharge = 0.50

	// ServiceChargePremium multiplies the base charge for savings accounts
	// under their minimum balance.
	ServiceChargePremium = 2.0
)

// Type identifies a concrete account variant.
type Type string

const (
	TypeChequing   Type = "chequing"
	TypeSavings    Type = "savings"
	TypeInvestment Type = "investment"
)

// String returns the type name.
func (t Type) String() string { return string(t) }

// Terms carries the variant specific parameters used when an account is
// opened from untyped input. Each variant only reads its own fields.
type Terms struct {
	OverdraftLimit float64
	OverdraftRate  float64
	MinimumBalance float64
	ManagementFee  float64
}
