package main

import (
	"fmt"
	"strings"

	"github.com/Nsfr750/pack/internal/resolver"
	"github.com/Nsfr750/pack/internal/utils/security"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	requirements string
}

// createCheckCommand creates the check subcommand
func createCheckCommand() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check <requirement...>",
		Short: "Check a requirement set for dependency conflicts",
		Long: `Check whether a set of requirements can be installed together. The
requirements are resolved for real inside a throwaway virtual
environment, which is removed afterwards.

The result is one of three states: resolved, conflicting (with the
conflicting packages listed), or unknown when installation failed for a
reason that is not a version conflict (e.g. a missing package or a
network error).`,
		RunE: executeCheck,
	}

	checkCmd.Flags().StringVarP(&checkFlags.requirements, "requirements", "r", "",
		"Read requirements from a file instead of arguments")

	return checkCmd
}

// executeCheck handles the check command logic
func executeCheck(cmd *cobra.Command, args []string) error {
	reqs := args
	if checkFlags.requirements != "" {
		fileReqs, err := readRequirementsFile(checkFlags.requirements)
		if err != nil {
			return err
		}
		reqs = append(reqs, fileReqs...)
	}
	if len(reqs) == 0 {
		return fmt.Errorf("no requirements given: pass them as arguments or with -r")
	}

	detector := resolver.NewPipDetector()
	report, err := detector.Check(cmd.Context(), reqs)
	if err != nil {
		return err
	}

	switch report.Status {
	case resolver.StatusResolved:
		fmt.Printf("OK: all %d requirement(s) resolved successfully\n", len(reqs))
		return nil
	case resolver.StatusConflict:
		fmt.Printf("Conflicts detected:\n")
		for _, c := range report.Conflicts {
			if c.RequiredBy != "" {
				fmt.Printf("  %s depends on %s\n", c.RequiredBy, c.Package)
			} else {
				fmt.Printf("  cannot install %s\n", c.Package)
			}
		}
		return fmt.Errorf("requirement set has version conflicts")
	default:
		fmt.Printf("Resolution failed, but no version conflict was identified.\n")
		fmt.Printf("Resolver output:\n%s\n", report.Output)
		return fmt.Errorf("conflict state is unknown")
	}
}

// readRequirementsFile reads one requirement per line, skipping blanks
// and comments.
func readRequirementsFile(path string) ([]string, error) {
	data, err := security.SafeReadFile(path, security.ResolveSymlinks)
	if err != nil {
		return nil, fmt.Errorf("reading requirements file: %w", err)
	}

	var reqs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reqs = append(reqs, line)
	}
	return reqs, nil
}
