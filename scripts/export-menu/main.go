// scripts/export-menu/main.go
//
// Dumps the built-in demo menu as JSON, for seeding the kiosk front end or
// diffing menu changes in review.
//
// Usage:
//   go run scripts/export-menu/main.go            # print to stdout
//   go run scripts/export-menu/main.go menu.json  # write to a file

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"ordering-kiosk/internal/catalog/repository/static"
)

func main() {
	items := static.DefaultMenu()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode menu: %v", err)
	}
	data = append(data, '\n')

	if len(os.Args) > 1 {
		outPath := os.Args[1]
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			log.Fatalf("Failed to write %q: %v", outPath, err)
		}
		fmt.Printf("Wrote %d menu items to %s\n", len(items), outPath)
		return
	}

	os.Stdout.Write(data)
}
