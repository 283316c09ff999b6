package render

import (
	"strings"
	"testing"

	"github.com/cevapi/mailtm/internal/mailtm"
)

func TestAccountInfo(t *testing.T) {
	got := AccountInfo(mailtm.Account{
		ID:      "acct1",
		Address: "user@example.mail.tm",
		Quota:   40000000,
		Used:    1234,
	})

	for _, want := range []string{
		"Account\n-------\n",
		"ID:       acct1",
		"Address:  user@example.mail.tm",
		"Quota:    40000000",
		"Used:     1234",
		"Disabled: false",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("AccountInfo missing %q in:\n%s", want, got)
		}
	}
}

func TestDomainList(t *testing.T) {
	active := true
	got := DomainList(mailtm.DomainPage{
		Items: []mailtm.Domain{
			{Domain: "a.mail.tm", IsActive: &active, CreatedAt: "2024-01-01T00:00:00Z"},
		},
		Total: 5,
	})

	if !strings.Contains(got, "Domains (showing 1 of ~5)") {
		t.Errorf("missing header in:\n%s", got)
	}
	if !strings.Contains(got, "- a.mail.tm  active=true  created=2024-01-01T00:00:00Z") {
		t.Errorf("missing domain line in:\n%s", got)
	}
}

func TestDomainList_Empty(t *testing.T) {
	got := DomainList(mailtm.DomainPage{})
	if !strings.Contains(got, "(none)") {
		t.Errorf("empty listing should say (none):\n%s", got)
	}
}

func TestInbox(t *testing.T) {
	page := mailtm.MessagePage{
		Items: []mailtm.MessageSummary{
			{
				ID:        "old",
				CreatedAt: "2024-01-01T00:00:00Z",
				Subject:   "Older",
				From:      mailtm.Address{Addr: "a@x"},
				Seen:      true,
			},
			{
				ID:        "new",
				CreatedAt: "2024-03-01T00:00:00Z",
				From:      mailtm.Address{Name: "Bob", Addr: "b@x"},
				Intro:     "first line\nsecond line",
			},
		},
		Total: 12,
	}

	got := Inbox(page, 0)

	if !strings.Contains(got, "Inbox (showing 2 of ~12)") {
		t.Errorf("missing header in:\n%s", got)
	}
	// Newest first.
	if strings.Index(got, "ID:   new") > strings.Index(got, "ID:   old") {
		t.Errorf("messages not sorted newest first:\n%s", got)
	}
	// Seen marker for the read message, blank for the unread one.
	if !strings.Contains(got, "[✓] 2024-01-01T00:00:00Z  Older") {
		t.Errorf("missing seen entry in:\n%s", got)
	}
	if !strings.Contains(got, "[ ] 2024-03-01T00:00:00Z  (no subject)") {
		t.Errorf("missing unseen entry with subject default in:\n%s", got)
	}
	if !strings.Contains(got, "From: Bob <b@x>") {
		t.Errorf("missing formatted sender in:\n%s", got)
	}
	// Newlines in the intro preview become spaces.
	if !strings.Contains(got, "Intro: first line second line") {
		t.Errorf("intro not flattened to one line in:\n%s", got)
	}
}

func TestInbox_Empty(t *testing.T) {
	got := Inbox(mailtm.MessagePage{}, 0)
	if !strings.Contains(got, "(empty)") {
		t.Errorf("empty inbox should say (empty):\n%s", got)
	}
}

func TestInbox_ConfiguredIntroWidth(t *testing.T) {
	page := mailtm.MessagePage{
		Items: []mailtm.MessageSummary{
			{
				ID:        "m1",
				CreatedAt: "2024-03-01T00:00:00Z",
				Intro:     strings.Repeat("x", 80),
			},
		},
		Total: 1,
	}

	got := Inbox(page, 20)
	if !strings.Contains(got, "Intro: "+strings.Repeat("x", 19)+"…") {
		t.Errorf("preview not truncated to the configured width:\n%s", got)
	}

	// The default budget leaves an 80-cell intro untouched.
	if got := Inbox(page, 0); !strings.Contains(got, "Intro: "+strings.Repeat("x", 80)+"\n") {
		t.Errorf("default width should keep the full intro:\n%s", got)
	}
}

func TestPreviewLine_Truncation(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := previewLine(long, 120)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("long preview should end with ellipsis: %q", got)
	}
	if len([]rune(got)) > 120 {
		t.Errorf("preview exceeds budget: %d runes", len([]rune(got)))
	}

	short := "short intro"
	if got := previewLine(short, 120); got != short {
		t.Errorf("short preview changed: %q", got)
	}
}

func TestMessageView_BodySelection(t *testing.T) {
	base := mailtm.Message{
		MessageSummary: mailtm.MessageSummary{
			ID:        "m1",
			CreatedAt: "2024-03-01T00:00:00Z",
			Subject:   "Hi",
			From:      mailtm.Address{Addr: "a@x"},
		},
		To: mailtm.AddressList{{Addr: "b@x"}},
	}

	t.Run("text wins over html", func(t *testing.T) {
		m := base
		m.Text = "plain body"
		m.HTML = mailtm.HTMLFragments{"<p>html body</p>"}
		got := MessageView(m)
		if !strings.Contains(got, "Text Body") || !strings.Contains(got, "plain body") {
			t.Errorf("text body not rendered:\n%s", got)
		}
		if strings.Contains(got, "HTML Body") {
			t.Errorf("html section rendered despite text body:\n%s", got)
		}
	})

	t.Run("whitespace-only text falls back to html", func(t *testing.T) {
		m := base
		m.Text = "   \n  "
		m.HTML = mailtm.HTMLFragments{"<p>Hi<br>there</p><script>evil()</script>"}
		got := MessageView(m)
		if !strings.Contains(got, "HTML Body (simplified)") {
			t.Errorf("missing html section:\n%s", got)
		}
		if !strings.Contains(got, "Hi\nthere") {
			t.Errorf("simplified body missing:\n%s", got)
		}
		if strings.Contains(got, "evil()") {
			t.Errorf("script content leaked:\n%s", got)
		}
	})

	t.Run("no body at all", func(t *testing.T) {
		got := MessageView(base)
		if !strings.Contains(got, "(No body content)") {
			t.Errorf("missing no-content notice:\n%s", got)
		}
	})

	t.Run("html simplifies to nothing", func(t *testing.T) {
		m := base
		m.HTML = mailtm.HTMLFragments{"<style>.x{}</style>"}
		got := MessageView(m)
		if !strings.Contains(got, "(No body content)") {
			t.Errorf("empty simplified body should report no content:\n%s", got)
		}
		if strings.Contains(got, "HTML Body") {
			t.Errorf("empty html section rendered:\n%s", got)
		}
	})
}

func TestMessageView_Attachments(t *testing.T) {
	m := mailtm.Message{
		MessageSummary: mailtm.MessageSummary{ID: "m1", HasAttachments: true},
		Text:           "body",
		Attachments: []mailtm.Attachment{
			{ID: "a1", Filename: "report.pdf", ContentType: "application/pdf", Size: 1024},
		},
	}
	got := MessageView(m)
	if !strings.Contains(got, "- id=a1  name=report.pdf  type=application/pdf  size=1024") {
		t.Errorf("attachment line missing:\n%s", got)
	}
}

func TestMessageView_Headers(t *testing.T) {
	m := mailtm.Message{
		MessageSummary: mailtm.MessageSummary{
			ID:        "m1",
			CreatedAt: "2024-03-01T00:00:00Z",
			From:      mailtm.Address{Name: "Bob", Addr: "b@x"},
			Seen:      true,
			Size:      2048,
		},
		Recipients: mailtm.AddressList{{Addr: "legacy@x"}},
		CC:         mailtm.AddressList{{Name: "Carol", Addr: "c@x"}},
	}
	got := MessageView(m)

	for _, want := range []string{
		"From:     Bob <b@x>",
		"To:       legacy@x", // falls back to the legacy recipients field
		"Cc:       Carol <c@x>",
		"Subject:  (no subject)",
		"Seen:     true",
		"Size:     2048",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MessageView missing %q in:\n%s", want, got)
		}
	}

	// Absent copy lists leave no header lines behind.
	if strings.Contains(got, "Bcc:") {
		t.Errorf("empty Bcc rendered:\n%s", got)
	}
}
