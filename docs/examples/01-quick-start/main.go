package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fullwave/gedi/pkg/gedi"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: quick-start <granule.h5>")
	}

	// Open granule
	g, err := gedi.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	fmt.Printf("Granule: %s\n", g.Path())
	fmt.Printf("Beams: %v\n", g.Beams())

	// Extract the geolocation table
	table, err := g.GeoTable()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Shots: %d\n", table.Len())

	// Subset by bounding box
	clipped := table.FilterBounds(gedi.Bounds{
		MinLon: -52.0, MaxLon: -50.0,
		MinLat: -2.0, MaxLat: 0.0,
	})
	fmt.Printf("Shots in box: %d\n", clipped.Len())

	for i := 0; i < clipped.Len() && i < 5; i++ {
		lat, _ := clipped.Float(gedi.FieldLatitudeBin0, i)
		lon, _ := clipped.Float(gedi.FieldLongitudeBin0, i)
		fmt.Printf("  shot %d at (%.5f, %.5f)\n", clipped.Shot(i), lon, lat)
	}
}
