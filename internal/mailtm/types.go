package mailtm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a message sender or recipient. The API usually sends
// {"name": ..., "address": ...} objects, but some payloads carry bare
// strings; both shapes decode. Anything else decodes to the zero
// value, never to an error.
type Address struct {
	Name string
	Addr string
}

func (a *Address) UnmarshalJSON(data []byte) error {
	*a = Address{}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Addr = s
		return nil
	}

	var obj struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	// Mistyped fields inside the object keep whatever decoded cleanly.
	_ = json.Unmarshal(data, &obj)
	a.Name = obj.Name
	a.Addr = obj.Address
	return nil
}

// String renders the address for display: "Name <addr>" when both
// parts are present, either part alone otherwise, empty when neither.
func (a Address) String() string {
	switch {
	case a.Name != "" && a.Addr != "":
		return fmt.Sprintf("%s <%s>", a.Name, a.Addr)
	case a.Addr != "":
		return a.Addr
	default:
		return a.Name
	}
}

// AddressList decodes from an array of addresses, a single object, a
// single bare string, or null.
type AddressList []Address

func (l *AddressList) UnmarshalJSON(data []byte) error {
	*l = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		var items []Address
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		*l = items
		return nil
	}

	var single Address
	if err := json.Unmarshal(trimmed, &single); err == nil {
		*l = AddressList{single}
	}
	return nil
}

// String joins the non-empty member renderings with ", ".
func (l AddressList) String() string {
	parts := make([]string, 0, len(l))
	for _, a := range l {
		if s := a.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// HTMLFragments is the html body of a message: usually an array of
// markup chunks, occasionally a single string. Non-string elements are
// dropped and order is preserved.
type HTMLFragments []string

func (f *HTMLFragments) UnmarshalJSON(data []byte) error {
	*f = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil
		}
		out := make([]string, 0, len(elems))
		for _, e := range elems {
			var s string
			if err := json.Unmarshal(e, &s); err == nil {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*f = HTMLFragments{s}
	}
	return nil
}

// MessageSummary is the subset of message fields present in listing
// responses. CreatedAt stays a string: the API emits ISO-8601
// timestamps, which order correctly as strings.
type MessageSummary struct {
	ID             string  `json:"id"`
	CreatedAt      string  `json:"createdAt"`
	Subject        string  `json:"subject"`
	Intro          string  `json:"intro"`
	From           Address `json:"from"`
	Seen           bool    `json:"seen"`
	HasAttachments bool    `json:"hasAttachments"`
	Size           int64   `json:"size"`
}

// Message is the full message detail returned by GET /messages/{id}.
type Message struct {
	MessageSummary
	To          AddressList   `json:"to"`
	Recipients  AddressList   `json:"recipients"`
	CC          AddressList   `json:"cc"`
	BCC         AddressList   `json:"bcc"`
	Text        string        `json:"text"`
	HTML        HTMLFragments `json:"html"`
	Attachments []Attachment  `json:"attachments"`
	DownloadURL string        `json:"downloadUrl"`
}

// RecipientList returns the message recipients. Current API responses
// use "to"; older deployments used "recipients".
func (m Message) RecipientList() AddressList {
	if len(m.To) > 0 {
		return m.To
	}
	return m.Recipients
}

// Attachment describes one attached file.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"downloadUrl"`
}

// Account is a mail.tm account record.
type Account struct {
	ID         string `json:"id"`
	Address    string `json:"address"`
	Quota      int64  `json:"quota"`
	Used       int64  `json:"used"`
	IsDisabled bool   `json:"isDisabled"`
	IsDeleted  bool   `json:"isDeleted"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// Domain is one entry of the public domain listing.
type Domain struct {
	ID        string `json:"id"`
	Domain    string `json:"domain"`
	Name      string `json:"name"`
	IsActive  *bool  `json:"isActive"`
	IsPrivate bool   `json:"isPrivate"`
	CreatedAt string `json:"createdAt"`
}

// Active reports whether the domain accepts new accounts. An absent
// flag means active; the API only sets it when a domain is retired.
func (d Domain) Active() bool {
	return d.IsActive == nil || *d.IsActive
}

// Host returns the domain name. Some responses carry it under "name"
// instead of "domain".
func (d Domain) Host() string {
	if d.Domain != "" {
		return d.Domain
	}
	return d.Name
}
