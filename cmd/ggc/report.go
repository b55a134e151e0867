package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"ggc/diag"
)

var (
	successColor = pterm.FgLightGreen
	successStyle = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColor    = pterm.FgYellow
	warnStyle    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColor   = pterm.FgRed
	errorStyle   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// printDiagnostic renders one diagnostic with a colored severity banner and,
// when the source file is readable, the offending line with a caret under
// its column.
func printDiagnostic(d diag.Diagnostic) {
	fmt.Println()
	switch d.Severity {
	case diag.Error:
		errorStyle.Print(" error ")
	case diag.Warning:
		warnStyle.Print(" warning ")
	default:
		successStyle.Print(" info ")
	}

	fmt.Printf(" %s:%d:%d\n", d.File, d.Pos.Line, d.Pos.Col)
	fmt.Println(d.Message)

	printSourceLine(d.File, d.Pos)
}

func printSourceLine(file string, pos diag.Position) {
	f, err := os.Open(file)
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanLines)

	line := ""
	for n := 1; sc.Scan(); n++ {
		if n == pos.Line {
			line = sc.Text()
			break
		}
	}
	if line == "" {
		return
	}

	gutter := strconv.Itoa(pos.Line) + " | "
	fmt.Print(gutter)
	fmt.Println(strings.ReplaceAll(line, "\t", "    "))

	col := pos.Col - 1
	if col < 0 {
		col = 0
	}
	errorColor.Println(strings.Repeat(" ", len(gutter)+col) + "^")
}

// printSummary prints the final error/warning tally the same way a build
// step reports whether it can hand off to the next stage.
func printSummary(errCount, warnCount int) {
	fmt.Println()
	if errCount == 0 {
		successColor.Print("done ")
	} else {
		errorColor.Print("failed ")
	}

	fmt.Print("(")
	if errCount == 0 {
		successColor.Print(0)
	} else {
		errorColor.Print(errCount)
	}
	fmt.Print(" errors, ")
	if warnCount == 0 {
		successColor.Print(0)
	} else {
		warnColor.Print(warnCount)
	}
	fmt.Println(" warnings)")
}
