/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/suparena/aliasstore/processor"
)

func main() {
	// Pick up ALIASMAP_MANIFEST and friends from a local .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	// Run the processor
	processor.Main()
}
