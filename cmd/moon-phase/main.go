package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bsyouness/frinder/pkg/ephem"
)

func main() {
	var timeStr string
	var lat, lon float64
	flag.StringVar(&timeStr, "time", "", "UTC time to calculate for (RFC3339 format, e.g., 2024-01-15T12:00:00Z)")
	flag.Float64Var(&lat, "lat", 0, "observer latitude in degrees")
	flag.Float64Var(&lon, "lon", 0, "observer longitude in degrees, east positive")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	phase := ephem.MoonPhase(t)
	sun := ephem.SunPosition(t, lat, lon)
	moon := ephem.MoonPosition(t, lat, lon)

	fmt.Printf("Sky for %s at %.4f, %.4f\n", t.Format(time.RFC3339), lat, lon)
	if phase == ephem.PhaseNone {
		fmt.Printf("  Moon Phase:   new moon (not drawn)\n")
	} else {
		fmt.Printf("  Moon Phase:   %s\n", phase)
	}
	fmt.Printf("  Moon Age:     %.1f days\n", ephem.MoonAge(t))
	fmt.Printf("  Sun:          az %.1f°  el %.1f°\n", sun.AzimuthDeg, sun.ElevationDeg)
	fmt.Printf("  Moon:         az %.1f°  el %.1f°\n", moon.AzimuthDeg, moon.ElevationDeg)
	if ephem.IsDaytime(t, lat, lon) {
		fmt.Printf("  Sky:          day\n")
	} else {
		fmt.Printf("  Sky:          night\n")
	}
}
