package dto

// AccountOpen is a DTO for opening an account from untyped input such as
// command line arguments. Numbers are kept as text so the domain decides
// how malformed values are handled.
type AccountOpen struct {
	Type          string `validate:"required,oneof=chequing savings investment"`
	AccountNumber string `validate:"required"`
	ClientNumber  string `validate:"required"`
	Balance       string // Initial balance; non numeric values open at 0
	DateCreated   string // YYYY-MM-DD; invalid values open today
}
