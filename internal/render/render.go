// Package render produces the plain-text views the CLI prints.
// Everything here is a pure function from decoded API data to a text
// block; commands do the actual writing.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cevapi/mailtm/internal/eml"
	"github.com/cevapi/mailtm/internal/htmltext"
	"github.com/cevapi/mailtm/internal/mailtm"
)

// defaultIntroWidth is the cell budget for one listing preview line
// when the config does not set output.intro_width.
const defaultIntroWidth = 120

const rule = "--------------------------------------------------------------"

const noSubject = "(no subject)"

// AccountInfo renders the account block shown after login and by
// "account me".
func AccountInfo(a mailtm.Account) string {
	var b strings.Builder
	b.WriteString("Account\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "ID:       %s\n", a.ID)
	fmt.Fprintf(&b, "Address:  %s\n", a.Address)
	fmt.Fprintf(&b, "Used:     %d\n", a.Used)
	fmt.Fprintf(&b, "Quota:    %d\n", a.Quota)
	fmt.Fprintf(&b, "Disabled: %t\n", a.IsDisabled)
	fmt.Fprintf(&b, "Deleted:  %t\n", a.IsDeleted)
	return b.String()
}

// DomainList renders one page of the public domain listing.
func DomainList(p mailtm.DomainPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Domains (showing %d of ~%d)\n", len(p.Items), p.Total)
	b.WriteString(rule + "\n")
	if len(p.Items) == 0 {
		b.WriteString("(none)\n")
		return b.String()
	}
	for _, d := range p.Items {
		fmt.Fprintf(&b, "- %s  active=%t  created=%s\n", d.Host(), d.Active(), d.CreatedAt)
	}
	return b.String()
}

// Inbox renders one page of the inbox, newest message first.
// introWidth is the preview budget in terminal cells; values <= 0
// fall back to the default.
func Inbox(p mailtm.MessagePage, introWidth int) string {
	if introWidth <= 0 {
		introWidth = defaultIntroWidth
	}
	items := mailtm.SortMessagesDesc(p.Items)

	var b strings.Builder
	fmt.Fprintf(&b, "Inbox (showing %d of ~%d)\n", len(items), p.Total)
	b.WriteString(rule + "\n")
	if len(items) == 0 {
		b.WriteString("(empty)\n")
		return b.String()
	}

	for _, m := range items {
		marker := " "
		if m.Seen {
			marker = "✓"
		}
		subject := m.Subject
		if subject == "" {
			subject = noSubject
		}
		fmt.Fprintf(&b, "[%s] %s  %s\n", marker, m.CreatedAt, subject)
		fmt.Fprintf(&b, "      From: %s\n", m.From)
		fmt.Fprintf(&b, "      ID:   %s\n", m.ID)
		if m.Intro != "" {
			fmt.Fprintf(&b, "      Intro: %s\n", previewLine(m.Intro, introWidth))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// previewLine flattens a snippet onto one line and truncates it to
// maxWidth terminal cells. runewidth keeps CJK and emoji from
// overflowing the column: they occupy two cells but count as one rune.
func previewLine(s string, maxWidth int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", " ")
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// MessageView renders a full message: header block, body, attachment
// metadata. The plain-text body wins when present; otherwise the HTML
// body is simplified; when both are missing or simplify to nothing,
// the view says so instead of printing an empty section.
func MessageView(m mailtm.Message) string {
	var b strings.Builder
	b.WriteString("Message\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "ID:       %s\n", m.ID)
	fmt.Fprintf(&b, "Date:     %s\n", m.CreatedAt)
	fmt.Fprintf(&b, "From:     %s\n", m.From)
	fmt.Fprintf(&b, "To:       %s\n", m.RecipientList())
	if cc := m.CC.String(); cc != "" {
		fmt.Fprintf(&b, "Cc:       %s\n", cc)
	}
	if bcc := m.BCC.String(); bcc != "" {
		fmt.Fprintf(&b, "Bcc:      %s\n", bcc)
	}
	subject := m.Subject
	if subject == "" {
		subject = noSubject
	}
	fmt.Fprintf(&b, "Subject:  %s\n", subject)
	fmt.Fprintf(&b, "Seen:     %t\n", m.Seen)
	fmt.Fprintf(&b, "Size:     %d\n", m.Size)
	fmt.Fprintf(&b, "HasAtts:  %t\n", m.HasAttachments)
	b.WriteString("\n")

	if body := strings.TrimSpace(m.Text); body != "" {
		b.WriteString("Text Body\n")
		b.WriteString("---------\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	} else if simplified := htmltext.Simplify(m.HTML); simplified != "" {
		b.WriteString("HTML Body (simplified)\n")
		b.WriteString("----------------------\n")
		b.WriteString(simplified)
		b.WriteString("\n\n")
	} else {
		b.WriteString("(No body content)\n\n")
	}

	if m.HasAttachments || len(m.Attachments) > 0 {
		for _, a := range m.Attachments {
			fmt.Fprintf(&b, "- id=%s  name=%s  type=%s  size=%d\n",
				a.ID, a.Filename, a.ContentType, a.Size)
		}
	}
	return b.String()
}

// SourceSummary renders the parsed overview of a raw message source.
func SourceSummary(s *eml.Summary) string {
	var b strings.Builder
	b.WriteString("Source\n")
	b.WriteString("------\n")
	fmt.Fprintf(&b, "Subject:    %s\n", s.Subject)
	if !s.Date.IsZero() {
		fmt.Fprintf(&b, "Date:       %s\n", s.Date.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(&b, "From:       %s\n", s.From)
	fmt.Fprintf(&b, "To:         %s\n", s.To)
	if s.MessageID != "" {
		fmt.Fprintf(&b, "Message-ID: %s\n", s.MessageID)
	}
	b.WriteString("\n")

	if s.Body != "" {
		b.WriteString(s.Body)
		b.WriteString("\n")
	} else {
		b.WriteString("(No body content)\n")
	}

	if len(s.Attachments) > 0 {
		b.WriteString("\nAttachments\n")
		b.WriteString("-----------\n")
		for _, p := range s.Attachments {
			fmt.Fprintf(&b, "- %s  (%s, %d bytes)\n", p.Filename, p.ContentType, p.Size)
		}
	}

	if len(s.Errors) > 0 {
		b.WriteString("\nParse warnings\n")
		b.WriteString("--------------\n")
		for _, e := range s.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	return b.String()
}
