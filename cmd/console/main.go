package main // Interactive terminal front end for the booking engine

import (
	"log" // Logging library
	"os"  // Stdin/stdout wiring

	"github.com/avionix/cabin-seat-booking/internal/cli"    // Menu loop
	"github.com/avionix/cabin-seat-booking/internal/config" // Layout loading
	"github.com/avionix/cabin-seat-booking/internal/engine" // Booking engine core
)

func main() {
	layout, err := config.LoadLayout() // CABIN_LAYOUT or the reference 7x4 cabin
	if err != nil {
		log.Fatalf("invalid cabin layout: %v", err)
	}

	loop := cli.New(engine.New(layout), os.Stdin, os.Stdout)
	if err := loop.Run(); err != nil {
		log.Fatal(err)
	}
}
