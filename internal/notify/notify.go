// Package notify announces the playing track with desktop notifications.
package notify

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyNormal:
		return "normal"
	case UrgencyCritical:
		return "critical"
	}
	return "unknown"
}

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary, required
	Body       string  // may contain basic markup
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // low, normal or critical
	Transient  bool    // keep out of the notification history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns its ID, 0 when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// Nop is a Notifier that drops everything.
type Nop struct{}

func (Nop) Notify(Notification) (uint32, error) { return 0, nil }

func (Nop) Close(uint32) error { return nil }
