// Package eml summarizes raw RFC 5322 message sources fetched from
// the API, for inspection without writing a file to disk.
package eml

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jhillyerd/enmime"

	"github.com/cevapi/mailtm/internal/htmltext"
	"github.com/cevapi/mailtm/internal/mailtm"
	"github.com/cevapi/mailtm/internal/textutil"
)

// Summary is the parsed overview of one raw message source.
type Summary struct {
	Subject     string
	Date        time.Time
	MessageID   string
	From        mailtm.AddressList
	To          mailtm.AddressList
	Body        string
	Attachments []Part
	Errors      []string // Non-fatal parsing problems reported by enmime
}

// Part describes one attachment of the source.
type Part struct {
	Filename    string
	ContentType string
	Size        int
}

// Summarize parses a raw source with enmime. Body text prefers the
// plain-text part and falls back to stripped HTML; either way the
// result is forced to valid UTF-8, since charset headers in the wild
// frequently lie.
func Summarize(raw []byte) (*Summary, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	s := &Summary{
		Subject:   env.GetHeader("Subject"),
		MessageID: strings.Trim(env.GetHeader("Message-ID"), "<>"),
		From:      headerAddresses(env, "From"),
		To:        headerAddresses(env, "To"),
	}

	if dateStr := env.GetHeader("Date"); dateStr != "" {
		s.Date = parseDate(dateStr)
	}

	body := env.Text
	if strings.TrimSpace(body) == "" && env.HTML != "" {
		body = htmltext.Simplify([]string{env.HTML})
	}
	s.Body = textutil.EnsureUTF8(strings.TrimSpace(body))

	for _, part := range env.Attachments {
		s.Attachments = append(s.Attachments, Part{
			Filename:    part.FileName,
			ContentType: baseContentType(part.ContentType),
			Size:        len(part.Content),
		})
	}

	for _, e := range env.Errors {
		s.Errors = append(s.Errors, e.Error())
	}
	return s, nil
}

// headerAddresses reads an address header into the display types the
// renderers already understand.
func headerAddresses(env *enmime.Envelope, header string) mailtm.AddressList {
	list, err := env.AddressList(header)
	if err != nil || len(list) == 0 {
		return nil
	}
	out := make(mailtm.AddressList, 0, len(list))
	for _, a := range list {
		if a.Address == "" && a.Name == "" {
			continue
		}
		out = append(out, mailtm.Address{Name: a.Name, Addr: a.Address})
	}
	return out
}

// baseContentType strips parameters: "text/plain; charset=utf-8"
// becomes "text/plain".
func baseContentType(ct string) string {
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	return strings.TrimSpace(ct)
}

// dateFormats covers the date shapes seen in real mail, most common
// first. Malformed dates are not an error; the zero time stands in.
var dateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

func parseDate(s string) time.Time {
	// Collapse whitespace runs; mailers disagree about padding.
	s = strings.Join(strings.Fields(s), " ")

	// A trailing "(UTC)" style zone name confuses every layout; the
	// numeric offset before it is what matters.
	if idx := strings.LastIndex(s, "("); idx > 0 {
		s = strings.TrimSpace(s[:idx])
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
