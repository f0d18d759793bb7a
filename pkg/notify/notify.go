// Package notify writes per-sender notification files for a completed
// matching run.
//
// Each run gets its own directory under the output root, named with a
// timestamp plus a short random suffix so same-second reruns never collide.
// Every sender receives one text file telling them who they drew, padded so
// chat-client link previews don't spoil the recipient.
package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sleighlab/sleigh/pkg/match"
)

// timestampLayout names run directories, e.g. "2026-08-27_18-04-31".
const timestampLayout = "2006-01-02_15-04-05"

// spoiler padding keeps the recipient's name out of chat embed previews.
const (
	spoilerHeader = "SCROLL DOWN TO SEE WHO YOU DREW\n"
	spoilerLines  = 25
)

// Write creates a fresh run directory under root and writes one notification
// file per sender, named "<sender>.txt". It returns the run directory path.
//
// The root directory is created if needed. Participant attributes are copied
// into the message verbatim; the core never interprets them.
func Write(perm *match.Permutation, reg *match.Registry, root string) (string, error) {
	runDir := filepath.Join(root, runName(time.Now()))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("create run directory %s: %w", runDir, err)
	}

	for _, a := range perm.Assignments() {
		sender := reg.Get(a.Sender)
		recipient := reg.Get(a.Recipient)
		path := filepath.Join(runDir, sender.Name+".txt")
		if err := os.WriteFile(path, []byte(Message(recipient)), 0644); err != nil {
			return "", fmt.Errorf("write notification %s: %w", path, err)
		}
	}
	return runDir, nil
}

// runName builds a run directory name from a timestamp and a short random
// suffix.
func runName(now time.Time) string {
	return fmt.Sprintf("%s-%s", now.Format(timestampLayout), uuid.NewString()[:8])
}

// Message renders the notification text for the sender assigned to
// recipient.
func Message(recipient match.Participant) string {
	var b strings.Builder
	b.WriteString(spoilerHeader)
	b.WriteString(strings.Repeat("|\n", spoilerLines))
	fmt.Fprintf(&b, "You are the gift-giver for %s!\n\n", recipient)
	if recipient.Delivery != "" {
		fmt.Fprintf(&b, "Delivery info:\n%s\n\n", recipient.Delivery)
	}
	if recipient.Interests != "" {
		fmt.Fprintf(&b, "Their interests:\n%s\n\n", recipient.Interests)
	}
	b.WriteString("Remember to check the sign-up form for the suggested price range and gift due date. Happy gifting!\n")
	return b.String()
}
