package config

const (
	// DefaultDatabasePath is the default location of the JSON data file that
	// holds the whole catalog.
	DefaultDatabasePath = "./data/books.json"

	// DefaultPort matches the port the frontend expects the API on.
	DefaultPort = 5001
)
