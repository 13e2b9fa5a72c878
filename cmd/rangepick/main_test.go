package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/rangepick/internal/config"
	"github.com/jask/rangepick/internal/dates"
	"github.com/jask/rangepick/internal/position"
	"github.com/jask/rangepick/internal/selection"
)

func TestBuildRulesCombinesSources(t *testing.T) {
	clock := dates.FixedClock(dates.Of(2024, time.March, 1))
	ics := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//rangepick//test//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:closed@test\r\nDTSTAMP:20240101T000000Z\r\n" +
		"DTSTART;VALUE=DATE:20240312\r\nDTEND;VALUE=DATE:20240313\r\nSUMMARY:Closed\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
	path := filepath.Join(t.TempDir(), "closed.ics")
	require.NoError(t, os.WriteFile(path, []byte(ics), 0o600))

	preds, err := buildRules(config.RulesConfig{
		HorizonDays:     60,
		BlockedWeekdays: []string{"sun"},
		BlockedRRule:    "FREQ=MONTHLY;BYMONTHDAY=15",
		BlockedICS:      path,
	}, clock)
	require.NoError(t, err)

	require.True(t, preds.OutsideRange(dates.Of(2024, time.February, 29)))
	require.True(t, preds.OutsideRange(dates.Of(2024, time.May, 1)))
	require.False(t, preds.OutsideRange(dates.Of(2024, time.March, 11)))

	require.True(t, preds.Blocked(dates.Of(2024, time.March, 3)), "sunday")
	require.True(t, preds.Blocked(dates.Of(2024, time.March, 15)), "rrule")
	require.True(t, preds.Blocked(dates.Of(2024, time.March, 12)), "ics")
	require.False(t, preds.Blocked(dates.Of(2024, time.March, 13)))
}

func TestBuildRulesErrors(t *testing.T) {
	clock := dates.FixedClock(dates.Of(2024, time.March, 1))

	_, err := buildRules(config.RulesConfig{BlockedWeekdays: []string{"someday"}}, clock)
	require.Error(t, err)

	_, err = buildRules(config.RulesConfig{BlockedRRule: "FREQ=SOMETIMES"}, clock)
	require.Error(t, err)

	_, err = buildRules(config.RulesConfig{BlockedICS: filepath.Join(t.TempDir(), "missing.ics")}, clock)
	require.Error(t, err)
}

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg", "config.toml")
	t.Setenv("HOME", dir)
	t.Setenv("RANGEPICK_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Picker.Orientation = "vertical"
	cfg.Rules.BlockedWeekdays = []string{"sat"}

	var out bytes.Buffer
	require.NoError(t, writeConfig(cfg, &out))
	require.Contains(t, out.String(), path)

	got, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)

	require.ErrorContains(t, writeConfig(cfg, &out), "already exists")
}

func TestPickerOptions(t *testing.T) {
	opts, err := pickerOptions(config.PickerConfig{
		AnchorDirection:     "right",
		HorizontalMargin:    2,
		NumberOfMonths:      1,
		WithPortal:          true,
		ShowClearDates:      true,
		Orientation:         "vertical",
		MonthFormat:         "Jan 06",
		InitialVisibleMonth: "2024-07",
		InitialFocus:        "startDate",
	})
	require.NoError(t, err)
	require.Equal(t, position.AnchorRight, opts.Anchor)
	require.Equal(t, 2, opts.Margin)
	require.Equal(t, 1, opts.NumberOfMonths)
	require.True(t, opts.WithPortal)
	require.True(t, opts.ShowClearDates)
	require.Equal(t, position.Vertical, opts.Orientation)
	require.Equal(t, "Jan 06", opts.MonthFormat)
	require.Equal(t, dates.Of(2024, time.July, 1), opts.InitialVisibleMonth)
	require.Equal(t, selection.FocusStart, opts.InitialFocus)

	_, err = pickerOptions(config.PickerConfig{InitialFocus: "sideways"})
	require.Error(t, err)
}
