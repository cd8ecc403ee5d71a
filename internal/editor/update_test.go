package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlineChanged(t *testing.T) {
	m := newModel(t)

	m, effects := Reduce(OnlineChanged{Online: false}, m)
	assert.False(t, m.Online())
	got := notifications(effects)
	require.Len(t, got, 1)
	assert.Equal(t, LevelError, got[0].Level)
	assert.Equal(t, "You're Offline", got[0].Title)

	m, effects = Reduce(OnlineChanged{Online: true}, m)
	assert.True(t, m.Online())
	got = notifications(effects)
	require.Len(t, got, 1)
	assert.Equal(t, LevelSuccess, got[0].Level)
}

func TestKeyCombos(t *testing.T) {
	m := loadedModel(t, sampleRevision("abc"))

	_, effects := Reduce(KeyComboPressed{Combo: ComboCompile}, m)
	assert.Len(t, effectsOf[Compile](effects), 1)

	saving, effects := Reduce(KeyComboPressed{Combo: ComboSave}, m)
	assert.Len(t, effectsOf[Save](effects), 1)
	assert.True(t, saving.Saving())

	_, effects = Reduce(KeyComboPressed{Combo: ComboFormat}, m)
	assert.Len(t, effectsOf[FormatCode](effects), 1)

	searching, effects := Reduce(KeyComboPressed{Combo: ComboSearch}, m)
	assert.True(t, searching.SearchOpen())
	assert.Equal(t, []Effect{Focus{ElementID: SearchInputID}}, effects)

	_, effects = Reduce(KeyComboPressed{Combo: KeyCombo(99)}, m)
	assert.Empty(t, effects)
}

func TestCollapseToggles(t *testing.T) {
	m := newModel(t)
	require.Equal(t, BothOpen, m.Collapse())

	m, _ = Reduce(ToggleHTMLCollapse{}, m)
	assert.Equal(t, JustElmOpen, m.Collapse())
	m, _ = Reduce(ToggleHTMLCollapse{}, m)
	assert.Equal(t, BothOpen, m.Collapse())

	m, _ = Reduce(ToggleElmCollapse{}, m)
	assert.Equal(t, JustHTMLOpen, m.Collapse())
	m, _ = Reduce(ToggleHTMLCollapse{}, m)
	assert.Equal(t, JustElmOpen, m.Collapse())
	m, _ = Reduce(ToggleElmCollapse{}, m)
	assert.Equal(t, JustHTMLOpen, m.Collapse())
	m, _ = Reduce(ToggleElmCollapse{}, m)
	assert.Equal(t, BothOpen, m.Collapse())
}

func TestParseCollapse(t *testing.T) {
	for _, c := range []Collapse{BothOpen, JustElmOpen, JustHTMLOpen} {
		assert.Equal(t, c, ParseCollapse(c.String()))
	}
	assert.Equal(t, BothOpen, ParseCollapse("sideways"))
	assert.Equal(t, JustHTMLOpen, ParseCollapse(" HTML "))
}

func TestTogglePopouts(t *testing.T) {
	m := newModel(t)
	m, _ = Reduce(TogglePopouts{Popout: EmbedLinkOpen}, m)
	assert.Equal(t, EmbedLinkOpen, m.Popout())
	m, _ = Reduce(TogglePopouts{Popout: EmbedLinkOpen}, m)
	assert.Equal(t, AllClosed, m.Popout())
}

func TestPassThroughEffects(t *testing.T) {
	m := loadedModel(t, sampleRevision("abc"))

	tests := []struct {
		name string
		msg  Msg
		want []Effect
	}{
		{"reload", ReloadIframeRequested{}, []Effect{ReloadIframe{}}},
		{"clear cache", ClearElmStuffRequested{}, []Effect{ClearElmStuff{}}},
		{"debugger", OpenDebuggerRequested{}, []Effect{OpenDebugger{RevisionID: "abc"}}},
		{"noop", NoOp{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects := Reduce(tt.msg, m)
			assert.Equal(t, tt.want, effects)
			assert.Equal(t, m, next)
		})
	}
}

func TestIframeJSError(t *testing.T) {
	_, effects := Reduce(IframeJSError{Message: "Uncaught TypeError"}, newModel(t))
	got := notifications(effects)
	require.Len(t, got, 1)
	assert.Equal(t, LevelError, got[0].Level)
	assert.Equal(t, "Uncaught TypeError", got[0].Message)
}

func TestMetadataEdits(t *testing.T) {
	m := loadedModel(t, sampleRevision("abc"))
	m, effects := Reduce(TitleChanged{Title: "Renamed"}, m)
	assert.Empty(t, effects)
	m, _ = Reduce(DescriptionChanged{Description: "A counter"}, m)

	assert.Equal(t, "Renamed", m.ClientRevision().Title)
	assert.Equal(t, "A counter", m.ClientRevision().Description)
	assert.True(t, m.Unsaved())

	server, _ := m.ServerRevision().Loaded()
	assert.Equal(t, "Counter", server.Title)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	m := loadedModel(t, sampleRevision("abc"))
	m, _ = Reduce(NotificationReceived{Notification: Notification{Title: "n", Timestamp: t0}}, m)
	before := m
	beforePkgs := m.ClientRevision().Packages

	msgs := []Msg{
		PackageSelected{Package: httpPkg},
		RemovePackageRequested{Package: beforePkgs[0]},
		TitleChanged{Title: "x"},
		ElmCodeChanged{Code: "y"},
		ClearAllNotifications{},
		CompileStageChanged{Stage: FailedStage("z")},
		ToggleSearch{},
	}
	for _, msg := range msgs {
		_, _ = Reduce(msg, m)
	}

	assert.Equal(t, before, m)
	assert.Equal(t, beforePkgs, m.ClientRevision().Packages)
	assert.Len(t, m.Notifications(), 1)
}
