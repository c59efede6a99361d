package main

import (
	"fmt"
	"log"

	"github.com/localnerve/contextdb/internal/config"
	"github.com/localnerve/contextdb/internal/database"
)

// Zero-argument bootstrap: create the local SQLite database with all seven
// tables at the fixed default path. Rerunning against an existing file is
// a no-op.
func main() {
	if err := database.InitLocal(config.DefaultSQLitePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	fmt.Printf("context database created successfully at %s\n", config.DefaultSQLitePath)
}
