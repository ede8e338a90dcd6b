// Package database provides the persistence layer for the activity journal.
//
// Business records live in memory per workspace (see package store); only the
// journal of imports, exports and edits is written to SQLite through gorm.
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── audit/           # Activity journal repository
//
// # Usage
//
//	db, err := database.NewDatabase(database.InMemoryPath, "silent", logger)
//	repo := audit.NewRepository(db.DB)
//	events, total, err := repo.GetEvents(workspaceID, 20, 0)
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register its entities in NewDatabase's AutoMigrate call
package database
