package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	CatalogAPIURL string `env:"CATALOG_API_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	Env           string `env:"APP_ENV" default:"dev"`

	// Business rules, adjustable independently of each other.
	LoanCeiling    int `env:"LOAN_CEILING" default:"5"`
	ReviewPageSize int `env:"REVIEW_PAGE_SIZE" default:"5"`
}
