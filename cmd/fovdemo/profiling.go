package main

import (
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// How long the scripted walk runs while capturing default.pgo.
const pgoRecordDuration = 15 * time.Second

// startCPUProfile begins writing a CPU profile to the given path and returns
// an idempotent stop function.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	return stop, nil
}
