//go:build !nogpu

package main

// GPU acceleration for gg shape rendering. Falls back to the CPU rasterizer
// when no adapter is available. Build with -tags nogpu to leave it out.
import _ "github.com/gogpu/gg/gpu"
