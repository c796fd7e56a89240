package raster

import "runtime/debug"

// Module is the library that rasterizes and composites shapes.
const Module = "golang.org/x/image"

// Version reports the linked version of Module, or "unknown" when the
// binary carries no build info (e.g. under go test).
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return moduleVersion(info, Module)
}

func moduleVersion(info *debug.BuildInfo, path string) string {
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
