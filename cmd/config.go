package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PublicBaseURL is the external address QR codes point at,
	// e.g. https://menu.example.com.
	PublicBaseURL string

	// CodeSheetTotalTables overrides the default 1000-table universe when
	// set to a positive number.
	CodeSheetTotalTables int
}
