package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sleighlab/sleigh/pkg/errors"
	"github.com/sleighlab/sleigh/pkg/match"
	"github.com/sleighlab/sleigh/pkg/roster"
)

// newCheckCmd creates the check command for validating proposed assignments.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <roster> <assignments.csv>",
		Short: "Validate a proposed assignment against a roster",
		Long: `Validate an externally proposed assignment against a roster.

The assignment file is a CSV of "sender,recipient" name pairs, one per
line (a header row of exactly "sender,recipient" is allowed and skipped).
The check certifies that the pairs form a bijection over the roster, that
nobody draws themselves, and that no exclusion is crossed. The first
violation found is reported and the command exits non-zero.

Examples:
  sleigh check roster.csv proposal.csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0], args[1])
		},
	}
	return cmd
}

func runCheck(ctx context.Context, rosterPath, assignmentsPath string) error {
	logger := loggerFromContext(ctx)

	cfg, err := roster.Load(rosterPath, logger)
	if err != nil {
		return fmt.Errorf("load roster %s: %w", rosterPath, err)
	}

	f, err := os.Open(assignmentsPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open assignments %s", assignmentsPath)
	}
	defer f.Close()

	assignments, err := parseAssignments(f, cfg.Registry())
	if err != nil {
		return err
	}

	perm, err := match.NewPermutation(assignments, cfg.Registry())
	if err == nil {
		err = cfg.EnsureValid(perm)
	}
	if err != nil {
		printError("Assignment is invalid: %s", errors.UserMessage(err))
		return err
	}

	printSuccess("Assignment is a valid derangement honoring all exclusions")
	return nil
}

// parseAssignments reads "sender,recipient" name pairs and resolves them
// against the registry. Unlike exclusion lists, unknown names here are hard
// errors: a proposed assignment referencing a stranger cannot be certified.
func parseAssignments(r io.Reader, reg *match.Registry) ([]match.Assignment, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 2

	var assignments []match.Assignment
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read line %d", line)
		}
		if line == 1 && strings.EqualFold(record[0], "sender") && strings.EqualFold(record[1], "recipient") {
			continue
		}

		sender, ok := reg.Lookup(strings.TrimSpace(record[0]))
		if !ok {
			return nil, errors.New(errors.ErrCodeParticipantNotFound,
				"line %d: unknown sender %q", line, record[0])
		}
		recipient, ok := reg.Lookup(strings.TrimSpace(record[1]))
		if !ok {
			return nil, errors.New(errors.ErrCodeParticipantNotFound,
				"line %d: unknown recipient %q", line, record[1])
		}
		assignments = append(assignments, match.Assignment{Sender: sender, Recipient: recipient})
	}
	return assignments, nil
}
