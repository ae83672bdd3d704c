// Package cli implements the parcelsort command: parse one
// "width,height,length,mass" argument, classify it and print the stack.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"parcelsort/internal/classifier"
	"parcelsort/internal/parcel"
	dErrors "parcelsort/pkg/domain-errors"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type invocation struct {
	input   string
	help    bool
	verbose bool
}

// Run executes the command with args (without the program name) and returns
// the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	inv, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr)
		return ExitUsage
	}
	if inv.help {
		printHelp(stdout)
		return ExitOK
	}
	if inv.input == "" {
		printUsage(stderr)
		return ExitUsage
	}

	req, err := ParseInput(inv.input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", message(err))
		printUsage(stderr)
		return ExitError
	}
	p, err := parcel.New(req.Width, req.Height, req.Length, req.Mass)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", message(err))
		printUsage(stderr)
		return ExitError
	}

	result := classifier.Evaluate(p)
	fmt.Fprintln(stdout, result.Decision)
	if inv.verbose {
		flags := strings.Join(result.Classification.Strings(), ", ")
		if flags == "" {
			flags = "-"
		}
		fmt.Fprintf(stdout, "classification: %s\n", flags)
		fmt.Fprintf(stdout, "reason: %s\n", result.Reason)
		fmt.Fprintf(stdout, "volume: %dcm³\n", p.Dimension().Volume())
		for _, r := range result.Remarks {
			fmt.Fprintf(stdout, "remark: %s\n", r)
		}
	}
	return ExitOK
}

// parseArgs recognizes -h/--help and -v/--verbose anywhere before "--".
// Anything else is the measurement string; a leading '-' on it is a negative
// width, not a flag.
func parseArgs(args []string) (invocation, error) {
	var inv invocation
	var positional []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-h", "--help":
			inv.help = true
		case "-v", "--verbose":
			inv.verbose = true
		case "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		default:
			positional = append(positional, a)
		}
	}
	if len(positional) > 1 {
		return inv, fmt.Errorf("expected one argument, got %d", len(positional))
	}
	if len(positional) == 1 {
		inv.input = positional[0]
	}
	return inv, nil
}

// ParseInput parses "width,height,length,mass". Range checks are left to
// parcel.New.
func ParseInput(input string) (classifier.Request, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return classifier.Request{}, dErrors.New(dErrors.CodeBadRequest, "input cannot be empty")
	}
	parts := strings.Split(input, ",")
	if len(parts) != 4 {
		return classifier.Request{}, dErrors.Newf(dErrors.CodeBadRequest,
			"input must have exactly 4 comma-separated values: width,height,length,mass (got %d)", len(parts))
	}

	var req classifier.Request
	for i, dst := range []*int{&req.Width, &req.Height, &req.Length} {
		raw := strings.TrimSpace(parts[i])
		v, err := strconv.Atoi(raw)
		if err != nil {
			return classifier.Request{}, dErrors.Newf(dErrors.CodeBadRequest,
				"%s must be an integer, got %q", fieldNames[i], raw)
		}
		*dst = v
	}
	raw := strings.TrimSpace(parts[3])
	mass, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return classifier.Request{}, dErrors.Newf(dErrors.CodeBadRequest, "mass must be a number, got %q", raw)
	}
	req.Mass = mass
	return req, nil
}

var fieldNames = [...]string{"width", "height", "length", "mass"}

func message(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
