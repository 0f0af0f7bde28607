package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fullwave/gedi/pkg/gedi"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: waveform-profile <granule.h5> <shot_number>")
	}

	shot, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("invalid shot number: %v", err)
	}

	g, err := gedi.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	wf, err := g.Waveform(shot)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Shot %d (%s): %d samples\n", wf.Shot, wf.Beam, wf.Len())

	// Print the return profile, amplitude normalized to 0-100
	norm := wf.Normalized()
	for i := range wf.Amplitude {
		fmt.Printf("%9.2f m  %6.1f\n", wf.Elevation[i], norm[i])
	}
}
