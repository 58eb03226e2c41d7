// SPDX-License-Identifier: EPL-2.0

// Command bmsplay plays, renders and inspects BMS charts.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bmsplay: ")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
