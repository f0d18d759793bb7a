// Package roster loads matching configurations from roster files.
//
// Two formats are supported, chosen by file extension:
//
//   - .csv: one row per participant, as exported from the sign-up form.
//     Exclusion columns hold comma-separated participant names.
//   - .toml: a [[participant]] table per participant with exclusion lists
//     as string arrays.
//
// Parsing is permissive about exclusions: sign-up forms routinely reference
// people who did not ultimately participate, so exclusion names that resolve
// to nobody are dropped with a logged warning instead of failing the load.
// Malformed participant records themselves are still hard errors.
package roster

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sleighlab/sleigh/pkg/errors"
	"github.com/sleighlab/sleigh/pkg/match"
)

// Entry is one parsed roster record before name resolution.
type Entry struct {
	Name              string
	Contact           string
	Delivery          string
	Interests         string
	CannotSendTo      []string // names this participant refuses to send to
	CannotReceiveFrom []string // names this participant refuses to receive from
}

// Load reads the roster at path and builds a matching configuration.
// The format is chosen by extension (.csv or .toml). The logger receives
// warnings for dropped exclusion names and duplicate participants; nil
// discards them.
func Load(path string, logger *log.Logger) (*match.Configuration, error) {
	if err := errors.ValidateRosterFilename(filepath.Base(path)); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open roster %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f, logger)
	case ".toml":
		return LoadTOML(f, logger)
	}
	// Unreachable: ValidateRosterFilename only admits the two extensions.
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported roster format: %s", path)
}

// LoadCSV reads a CSV roster from r. See [Load] for semantics.
func LoadCSV(r io.Reader, logger *log.Logger) (*match.Configuration, error) {
	entries, err := parseCSV(r)
	if err != nil {
		return nil, err
	}
	return build(entries, logger)
}

// LoadTOML reads a TOML roster from r. See [Load] for semantics.
func LoadTOML(r io.Reader, logger *log.Logger) (*match.Configuration, error) {
	entries, err := parseTOML(r)
	if err != nil {
		return nil, err
	}
	return build(entries, logger)
}

// build resolves entries into a configuration: register every participant
// first, then resolve exclusion names against the full registry so forward
// references work regardless of roster order.
func build(entries []Entry, logger *log.Logger) (*match.Configuration, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	reg := match.NewRegistry()
	for _, e := range entries {
		if err := errors.ValidateParticipantName(e.Name); err != nil {
			return nil, err
		}
		if _, exists := reg.Lookup(e.Name); exists {
			logger.Warn("duplicate participant, keeping first record", "name", e.Name)
		}
		reg.Add(match.Participant{
			Name:      e.Name,
			Contact:   e.Contact,
			Delivery:  e.Delivery,
			Interests: e.Interests,
		})
	}

	cannotSendTo := make(map[match.ID][]match.ID, reg.Len())
	cannotReceiveFrom := make(map[match.ID][]match.ID, reg.Len())
	for _, e := range entries {
		id, _ := reg.Lookup(e.Name)
		cannotSendTo[id] = append(cannotSendTo[id], resolve(reg, e.Name, "cannot_send_to", e.CannotSendTo, logger)...)
		cannotReceiveFrom[id] = append(cannotReceiveFrom[id], resolve(reg, e.Name, "cannot_receive_from", e.CannotReceiveFrom, logger)...)
	}

	return match.NewConfiguration(reg, cannotSendTo, cannotReceiveFrom)
}

// resolve maps exclusion names to IDs, dropping unresolvable names with a
// warning.
func resolve(reg *match.Registry, owner, field string, names []string, logger *log.Logger) []match.ID {
	var ids []match.ID
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, ok := reg.Lookup(name)
		if !ok {
			logger.Warn("dropping exclusion for unknown participant",
				"participant", owner, "field", field, "excluded", name)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
