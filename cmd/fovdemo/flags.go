package main

import "flag"

// Command-line flags layered on top of the YAML configuration.
var (
	// configFlag points at a YAML file overriding the embedded defaults.
	configFlag = flag.String("config", "", "path to a YAML config overriding the embedded defaults")

	// radiusFlag overrides the field-of-vision radius when positive.
	radiusFlag = flag.Int("radius", 0, "field of vision radius (overrides config when > 0)")

	// blocksFlag overrides the number of scattered block cells when set.
	blocksFlag = flag.Int("blocks", -1, "number of random block cells (overrides config when >= 0)")

	// debugFlag enables the FPS and visibility overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and visibility overlay")

	// enableAudioFlag toggles the movement tick sound.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a short tick on every step")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")
)
