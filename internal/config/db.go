package config

// DB holds the database configuration settings.
type DB struct {
	Extras      string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string // database name, or the file path for sqlite
	GormEngine  string // sqlite, mysql or postgres
	TablePrefix string // prepended to every table name
}
