// Command ggc is a thin driver over the compiler core: it reads a single
// source file, discovers its project configuration, runs the pipeline, and
// either writes the emitted C or reports diagnostics (spec §1's explicit
// non-goal of a full driver/package-manager notwithstanding, a minimal
// single-file entry point is what exercises the core end to end).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"ggc/common"
	"ggc/compiler"
	"ggc/config"
)

func main() {
	cli := olive.NewCLI("ggc", "ggc compiles gg source files to portable C", true)

	buildCmd := cli.AddSubcommand("build", "compile a source file to C", true)
	buildCmd.AddPrimaryArg("source-path", "the .gg file to compile", true)
	buildCmd.AddStringArg("out", "o", "output path for the generated C file", false)

	cli.AddSubcommand("version", "print the ggc version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		printUsageError(err)
		os.Exit(1)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuild(subResult)
	case "version":
		fmt.Println("ggc " + common.Version)
	default:
		fmt.Println("usage: ggc build <source-path> [--out path] | ggc version")
	}
}

func printUsageError(err error) {
	errorStyle.Print(" usage error ")
	errorColor.Println(" " + err.Error())
}

func execBuild(result *olive.ArgParseResult) {
	srcPath, _ := result.PrimaryArg()

	absPath, err := filepath.Abs(srcPath)
	if err != nil {
		errorStyle.Print(" path error ")
		errorColor.Println(" " + err.Error())
		os.Exit(1)
	}

	src, err := os.ReadFile(absPath)
	if err != nil {
		errorStyle.Print(" read error ")
		errorColor.Println(" " + err.Error())
		os.Exit(1)
	}

	cfg, err := config.Find(filepath.Dir(absPath))
	if err != nil {
		errorStyle.Print(" config error ")
		errorColor.Println(" " + err.Error())
		os.Exit(1)
	}

	res := compiler.Compile(string(src), absPath, cfg)
	for _, d := range res.Bag.Sorted() {
		printDiagnostic(d)
	}
	printSummary(res.Bag.ErrorCount(), res.Bag.WarningCount())

	if res.Bag.HasErrors() {
		os.Exit(1)
	}

	outPath, ok := result.Arguments["out"]
	if !ok {
		outPath = strippedExt(absPath) + ".c"
	}
	if err := os.WriteFile(outPath.(string), []byte(res.C), 0644); err != nil {
		errorStyle.Print(" write error ")
		errorColor.Println(" " + err.Error())
		os.Exit(1)
	}
}

func strippedExt(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)]
}
