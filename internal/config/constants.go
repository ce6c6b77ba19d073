package config

// DefaultDatabasePath is the default path for the bookmark database
const DefaultDatabasePath = "./bookmarks.db"
