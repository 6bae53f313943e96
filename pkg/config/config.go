package config

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"auto"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankaccount]"`
}

// Account holds the terms applied to accounts opened from untyped input.
type Account struct {
	OverdraftLimit float64 `envconfig:"OVERDRAFT_LIMIT" default:"-100"`
	OverdraftRate  float64 `envconfig:"OVERDRAFT_RATE" default:"0.05"`
	MinimumBalance float64 `envconfig:"MINIMUM_BALANCE" default:"50"`
	ManagementFee  float64 `envconfig:"MANAGEMENT_FEE" default:"2.55"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Log     *Log     `envconfig:"LOG"`
	Account *Account `envconfig:"ACCOUNT"`
}
