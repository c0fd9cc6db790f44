// Command rampage-schema prints the JSON schema of rampage save files.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/borkshop/rampage/internal/persist"
)

func main() {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(persist.Schema()); err != nil {
		log.Fatalln(err)
	}
}
