package editor

import "time"

// NotificationTTL is how long a non-error notification stays visible.
const NotificationTTL = 15 * time.Second

// receive prepends n and schedules one expiry check for it.
func (m Model) receive(n Notification) (Model, []Effect) {
	queue := make([]Notification, 0, len(m.notifications)+1)
	queue = append(queue, n)
	queue = append(queue, m.notifications...)
	m.notifications = queue
	return m, []Effect{ScheduleExpiry{After: NotificationTTL}}
}

// expireStale keeps errors and anything younger than NotificationTTL.
// Filtering again with a later now can only remove more.
func (m Model) expireStale(now time.Time) Model {
	kept := make([]Notification, 0, len(m.notifications))
	for _, n := range m.notifications {
		if n.Level == LevelError || now.Sub(n.Timestamp) < NotificationTTL {
			kept = append(kept, n)
		}
	}
	m.notifications = kept
	return m
}

func (m Model) clearAll() Model {
	m.notifications = nil
	return m
}

// dismiss removes every entry equal to n.
func (m Model) dismiss(n Notification) Model {
	kept := make([]Notification, 0, len(m.notifications))
	for _, existing := range m.notifications {
		if !existing.Equal(n) {
			kept = append(kept, existing)
		}
	}
	m.notifications = kept
	return m
}

func notify(level Level, title, message string) Effect {
	return Notify{Notification: Notification{Level: level, Title: title, Message: message}}
}
