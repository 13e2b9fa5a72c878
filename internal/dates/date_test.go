package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOrderingHelpers(t *testing.T) {
	a := Of(2024, time.March, 10)
	b := Of(2024, time.March, 20)

	require.True(t, IsInclusivelyBeforeDay(a, b))
	require.True(t, IsInclusivelyBeforeDay(a, a))
	require.False(t, IsInclusivelyBeforeDay(b, a))

	require.True(t, IsInclusivelyAfterDay(b, a))
	require.True(t, IsInclusivelyAfterDay(a, a))
	require.False(t, IsInclusivelyAfterDay(a, b))

	require.True(t, IsSameDay(a, Of(2024, time.March, 10)))
	require.False(t, IsSameDay(a, b))
}

func TestAbsentDatesNeverCompare(t *testing.T) {
	d := Of(2024, time.March, 10)
	require.False(t, IsInclusivelyBeforeDay(Date{}, d))
	require.False(t, IsInclusivelyBeforeDay(d, Date{}))
	require.False(t, IsInclusivelyAfterDay(Date{}, d))
	require.False(t, IsSameDay(Date{}, Date{}))
	require.Equal(t, 0, NightsBetween(Date{}, d))
}

func TestNightsBetweenAcrossMonthsAndDST(t *testing.T) {
	require.Equal(t, 10, NightsBetween(Of(2024, time.March, 10), Of(2024, time.March, 20)))
	require.Equal(t, 2, NightsBetween(Of(2024, time.February, 28), Of(2024, time.March, 1)))
	require.Equal(t, -3, NightsBetween(Of(2024, time.March, 4), Of(2024, time.March, 1)))
	require.Equal(t, 366, NightsBetween(Of(2024, time.January, 1), Of(2025, time.January, 1)))
}

func TestNightsBetweenLongSpans(t *testing.T) {
	require.Equal(t, 182621, NightsBetween(Of(1500, time.January, 1), Of(2000, time.January, 1)))
	require.Equal(t, 3652058, NightsBetween(Of(1, time.January, 1), Of(9999, time.December, 31)))
	require.Equal(t, -3652058, NightsBetween(Of(9999, time.December, 31), Of(1, time.January, 1)))
	require.Equal(t, -1, NightsBetween(Of(1970, time.January, 1), Of(1969, time.December, 31)))
}

func TestOfNormalises(t *testing.T) {
	require.Equal(t, Date{Year: 2023, Month: time.March, Day: 1}, Of(2023, time.February, 29))
	require.Equal(t, Of(2024, time.January, 31), Of(2024, time.February, 1).AddDays(-1))
	require.Equal(t, Date{Year: 2024, Month: time.March, Day: 1}, Of(2024, time.March, 17).FirstOfMonth())
}

func TestFormatAbsentIsEmpty(t *testing.T) {
	require.Equal(t, "", Format(Date{}, DefaultDisplayFormat))
	require.Equal(t, "03/10/2024", Format(Of(2024, time.March, 10), DefaultDisplayFormat))
	require.Equal(t, "2024-03-10", Of(2024, time.March, 10).String())
}
