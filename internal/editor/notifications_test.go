package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestReceive_PrependsAndSchedulesOneExpiry(t *testing.T) {
	m := newModel(t)
	first := Notification{Level: LevelInfo, Title: "first", Timestamp: t0}
	second := Notification{Level: LevelSuccess, Title: "second", Timestamp: t0.Add(time.Second)}

	m, effects := Reduce(NotificationReceived{Notification: first}, m)
	require.Equal(t, []Effect{ScheduleExpiry{After: 15 * time.Second}}, effects)

	m, effects = Reduce(NotificationReceived{Notification: second}, m)
	require.Len(t, effects, 1)

	got := m.Notifications()
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Title)
	assert.Equal(t, "first", got[1].Title)
}

func TestExpireStale_KeepsErrorsAndFreshItems(t *testing.T) {
	m := newModel(t)
	for _, n := range []Notification{
		{Level: LevelSuccess, Title: "ok", Timestamp: t0},
		{Level: LevelInfo, Title: "info", Timestamp: t0},
		{Level: LevelError, Title: "err", Timestamp: t0},
		{Level: LevelInfo, Title: "fresh", Timestamp: t0.Add(10 * time.Second)},
	} {
		m, _ = Reduce(NotificationReceived{Notification: n}, m)
	}

	m, effects := Reduce(ClearStaleNotifications{Now: t0.Add(15 * time.Second)}, m)
	assert.Empty(t, effects)

	var titles []string
	for _, n := range m.Notifications() {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"fresh", "err"}, titles)

	m, _ = Reduce(ClearStaleNotifications{Now: t0.Add(time.Hour)}, m)
	require.Len(t, m.Notifications(), 1)
	assert.Equal(t, LevelError, m.Notifications()[0].Level)
}

func TestExpireStale_IsIdempotent(t *testing.T) {
	m := newModel(t)
	m, _ = Reduce(NotificationReceived{Notification: Notification{Level: LevelInfo, Timestamp: t0}}, m)

	later, _ := Reduce(ClearStaleNotifications{Now: t0.Add(20 * time.Second)}, m)
	earlier, _ := Reduce(ClearStaleNotifications{Now: t0.Add(5 * time.Second)}, later)
	assert.Empty(t, earlier.Notifications())
}

func TestDismissRemovesEqualEntries(t *testing.T) {
	m := newModel(t)
	dup := Notification{Level: LevelError, Title: "dup", Timestamp: t0}
	other := Notification{Level: LevelError, Title: "dup", Timestamp: t0.Add(time.Second)}
	m, _ = Reduce(NotificationReceived{Notification: dup}, m)
	m, _ = Reduce(NotificationReceived{Notification: other}, m)
	m, _ = Reduce(NotificationReceived{Notification: dup}, m)

	m, _ = Reduce(ClearNotification{Notification: dup}, m)
	require.Len(t, m.Notifications(), 1)
	assert.True(t, m.Notifications()[0].Equal(other))

	m, _ = Reduce(ClearAllNotifications{}, m)
	assert.Empty(t, m.Notifications())
}

func TestNotifications_PreviousSnapshotUnchanged(t *testing.T) {
	m := newModel(t)
	m, _ = Reduce(NotificationReceived{Notification: Notification{Title: "a", Timestamp: t0}}, m)
	snapshot := m

	_, _ = Reduce(NotificationReceived{Notification: Notification{Title: "b", Timestamp: t0}}, m)
	_, _ = Reduce(ClearNotification{Notification: Notification{Title: "a", Timestamp: t0}}, m)

	require.Len(t, snapshot.Notifications(), 1)
	assert.Equal(t, "a", snapshot.Notifications()[0].Title)
}
