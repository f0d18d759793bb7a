package roster

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/sleighlab/sleigh/pkg/errors"
)

// tomlRoster is the on-disk TOML roster layout:
//
//	[[participant]]
//	name = "Alice"
//	contact = "alice#1234"
//	delivery = "1234 Alice Lane"
//	interests = "Programming, cats"
//	cannot_send_to = ["Bob"]
//	cannot_receive_from = []
type tomlRoster struct {
	Participants []tomlParticipant `toml:"participant"`
}

type tomlParticipant struct {
	Name              string   `toml:"name"`
	Contact           string   `toml:"contact"`
	Delivery          string   `toml:"delivery"`
	Interests         string   `toml:"interests"`
	CannotSendTo      []string `toml:"cannot_send_to"`
	CannotReceiveFrom []string `toml:"cannot_receive_from"`
}

// parseTOML reads roster entries from a TOML document.
func parseTOML(r io.Reader) ([]Entry, error) {
	var doc tomlRoster
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode TOML roster")
	}
	if len(doc.Participants) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRoster, "roster has no [[participant]] tables")
	}

	entries := make([]Entry, len(doc.Participants))
	for i, p := range doc.Participants {
		entries[i] = Entry{
			Name:              p.Name,
			Contact:           p.Contact,
			Delivery:          p.Delivery,
			Interests:         p.Interests,
			CannotSendTo:      p.CannotSendTo,
			CannotReceiveFrom: p.CannotReceiveFrom,
		}
	}
	return entries, nil
}
