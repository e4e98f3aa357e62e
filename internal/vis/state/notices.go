package state

import "time"

// noticeTTL is how long a transient notice stays visible.
const noticeTTL = 5 * time.Second

// Notice is a transient user-facing message, typically a persistence
// failure report.
type Notice struct {
	Msg string
	At  time.Time
}

// Notices keeps a short ring of recent transient messages for the
// status line.
type Notices struct {
	items []Notice
	now   func() time.Time
}

// NewNotices creates an empty notice ring.
func NewNotices() *Notices {
	return &Notices{now: time.Now}
}

// Add appends a message.
func (n *Notices) Add(msg string) {
	n.items = append(n.items, Notice{Msg: msg, At: n.now()})
	if len(n.items) > 8 {
		n.items = n.items[len(n.items)-8:]
	}
}

// Current returns the newest unexpired message, or "".
func (n *Notices) Current() string {
	cutoff := n.now().Add(-noticeTTL)
	for i := len(n.items) - 1; i >= 0; i-- {
		if n.items[i].At.After(cutoff) {
			return n.items[i].Msg
		}
	}
	return ""
}
