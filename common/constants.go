package common

const (
	// SrcFileExtension is the conventional suffix for gg source files.
	SrcFileExtension = ".gg"

	// LibFileExtension is the conventional suffix for gg standard-library
	// source files (see spec §6.4). The core treats these identically to
	// ordinary source files; only the driver distinguishes them.
	LibFileExtension = ".lib.gg"

	// ProjectFileName is the name of the project configuration file
	// discovered by walking parent directories from the source file
	// (spec §6.5).
	ProjectFileName = "gg-project.toml"

	// Version is the compiler core's version string.
	Version = "0.1.0"
)
