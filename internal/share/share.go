// Package share builds the outbound share messages for a composite score.
// Targets degrade gracefully: the native share text falls back to the
// WhatsApp link, and the link falls back to a clipboard copy.
package share

import (
	"fmt"
	"net/url"

	"github.com/atotto/clipboard"
)

const compassURL = "https://themuslim-investor.com/tools/compass"

// Message is the short share text for a score out of 100.
func Message(score int) string {
	return fmt.Sprintf("Bismillah - I just discovered my Islamic Investment Readiness Score: %d/100\n\nFind yours at %s\n\nThe Muslim Investor - Akhirah-First Wealth Building", score, compassURL)
}

// WhatsAppURL is the wa.me deep link carrying the share message.
func WhatsAppURL(score int) string {
	return "https://wa.me/?text=" + url.QueryEscape(Message(score))
}

// Copy places the share message on the system clipboard. A clipboard
// failure is not fatal; the caller falls back to displaying the text.
func Copy(score int) error {
	if err := clipboard.WriteAll(Message(score)); err != nil {
		return fmt.Errorf("copying share message: %w", err)
	}

	return nil
}

// CopyLink places the WhatsApp share link on the system clipboard.
func CopyLink(score int) error {
	if err := clipboard.WriteAll(WhatsAppURL(score)); err != nil {
		return fmt.Errorf("copying share link: %w", err)
	}

	return nil
}
