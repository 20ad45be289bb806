package main

import "flag"

// Command-line flags that select the configuration and the starting scene.
var (
	// configFlag points at a JSON file overlaid on the default settings.
	configFlag = flag.String("config", "raycaster.json", "path to a JSON settings file (missing file = defaults)")

	// seedFlag fixes the random wall layout; 0 picks a new layout each run.
	seedFlag = flag.Int64("seed", 0, "random seed for wall placement (0 = time based)")

	// wallsFlag overrides how many random walls are placed.
	wallsFlag = flag.Int("walls", -1, "number of random walls (-1 = from config)")
)
