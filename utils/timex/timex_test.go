package timex_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	"github.com/bastawesy/reactorutils/core/i18n"
	rulog "github.com/bastawesy/reactorutils/core/log"
	"github.com/bastawesy/reactorutils/utils/timex"
)

var riyadh = time.FixedZone("UTC+3", 3*60*60)

// withLocal replaces time.Local for the duration of the test
func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	previous := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = previous })
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

// recordingResolver formats "key|locale|params" and counts calls
type recordingResolver struct {
	calls  int
	locale string
}

func (r *recordingResolver) Resolve(key, locale string, params ...any) (string, error) {
	r.calls++
	r.locale = locale
	return i18n.FormatMessage(key+" {0} {1}", params...), nil
}

func quietLogger() *rulog.Logger {
	return rulog.New().WithOutput(&bytes.Buffer{})
}

func newValidator(resolver timex.MessageResolver, clock timex.Clock) *timex.Validator {
	return timex.NewValidatorWithOptions(timex.ValidatorOptions{
		Resolver: resolver,
		Clock:    clock,
		Logger:   quietLogger(),
	})
}

func sampleMillis() []int64 {
	samples := []int64{0, 1, -1, 999, -86_400_001, 1_700_000_000_123, 4_102_444_800_000, -2_208_988_800_000}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		samples = append(samples, rng.Int63n(8_000_000_000_000)-4_000_000_000_000)
	}
	return samples
}

func TestEpochMillisRoundTrip(t *testing.T) {
	for _, loc := range []*time.Location{time.UTC, riyadh, newYork(t)} {
		withLocal(t, loc)
		for _, ms := range sampleMillis() {
			got := timex.DateToEpochMillis(timex.EpochMillisToDate(&ms))
			require.NotNil(t, got)
			assert.Equal(t, ms, *got, "zone %s", loc)
		}
	}
}

func TestLocalDateTimeRoundTrip(t *testing.T) {
	for _, loc := range []*time.Location{time.UTC, riyadh} {
		withLocal(t, loc)
		for _, ms := range sampleMillis() {
			d := time.UnixMilli(ms).Add(123 * time.Nanosecond)
			back := timex.LocalDateTimeToDate(timex.DateToLocalDateTime(&d))
			assert.True(t, back.Equal(d), "zone %s: %v != %v", loc, back, d)
		}
	}

	// Instants outside the autumn overlap hour round trip in a DST zone
	withLocal(t, newYork(t))
	for _, ms := range []int64{0, 1_700_000_000_123, 1_710_054_000_000, 1_720_000_000_999} {
		d := time.UnixMilli(ms)
		back := timex.LocalDateTimeToDate(timex.DateToLocalDateTime(&d))
		assert.True(t, back.Equal(d), "%v != %v", back, d)
	}
}

func TestCalendarDateToEpochDayNumber(t *testing.T) {
	tests := []struct {
		date timex.CalendarDate
		want int64
	}{
		{timex.CalendarDate{Year: 1970, Month: time.January, Day: 1}, 0},
		{timex.CalendarDate{Year: 1970, Month: time.January, Day: 2}, 1},
		{timex.CalendarDate{Year: 1969, Month: time.December, Day: 31}, -1},
		{timex.CalendarDate{Year: 2000, Month: time.March, Day: 1}, 11017},
	}

	withLocal(t, riyadh)
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			got := timex.CalendarDateToEpochDayNumber(&tt.date)

			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	dayAfterEpoch := timex.CalendarDate{Year: 1970, Month: time.January, Day: 2}
	assert.NotEqual(t, int64(86_400_000), *timex.CalendarDateToEpochDayNumber(&dayAfterEpoch))
}

func TestLocalDateTimeToEpochSeconds(t *testing.T) {
	withLocal(t, time.UTC)
	dt := timex.NewLocalDateTime(1970, time.January, 2, 0, 0, 0, 500_000_000)
	got := timex.LocalDateTimeToEpochSeconds(&dt)
	require.NotNil(t, got)
	assert.Equal(t, int64(86_400), *got)

	withLocal(t, riyadh)
	dt = timex.NewLocalDateTime(1970, time.January, 1, 3, 0, 0, 0)
	assert.Equal(t, int64(0), *timex.LocalDateTimeToEpochSeconds(&dt))
}

func TestConversionsInLocalZone(t *testing.T) {
	withLocal(t, riyadh)

	// 1970-01-01T22:00:00.123Z is 1970-01-02T01:00:00.123 in UTC+3
	ms := int64(79_200_123)

	date := timex.EpochMillisToCalendarDate(&ms)
	require.NotNil(t, date)
	assert.Equal(t, timex.CalendarDate{Year: 1970, Month: time.January, Day: 2}, *date)

	dt := timex.EpochMillisToLocalDateTime(&ms)
	require.NotNil(t, dt)
	assert.Equal(t, timex.NewLocalDateTime(1970, time.January, 2, 1, 0, 0, 123_000_000), *dt)

	instant := timex.EpochMillisToDate(&ms)
	require.NotNil(t, instant)
	assert.Equal(t, riyadh, instant.Location())

	start := timex.CalendarDateToDate(*date)
	assert.Equal(t, int64(86_400_000-3*3_600_000), start.UnixMilli())

	assert.Equal(t, *date, timex.DateToCalendarDate(instant))
	assert.Equal(t, *dt, timex.DateToLocalDateTime(instant))
}

func TestDateOnlyConversionIsLossy(t *testing.T) {
	withLocal(t, riyadh)

	midnight := time.Date(2024, time.May, 15, 0, 0, 0, 0, riyadh)
	assert.True(t, timex.CalendarDateToDate(timex.DateToCalendarDate(&midnight)).Equal(midnight))

	afternoon := time.Date(2024, time.May, 15, 14, 30, 0, 0, riyadh)
	assert.True(t, timex.CalendarDateToDate(timex.DateToCalendarDate(&afternoon)).Equal(midnight))
}

func TestConversionsPropagateNil(t *testing.T) {
	assert.Nil(t, timex.EpochMillisToDate(nil))
	assert.Nil(t, timex.EpochMillisToCalendarDate(nil))
	assert.Nil(t, timex.EpochMillisToLocalDateTime(nil))
	assert.Nil(t, timex.DateToEpochMillis(nil))
	assert.Nil(t, timex.CalendarDateToEpochDayNumber(nil))
	assert.Nil(t, timex.LocalDateTimeToEpochSeconds(nil))
}

func TestNonNilConversionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { timex.DateToCalendarDate(nil) })
	assert.Panics(t, func() { timex.DateToLocalDateTime(nil) })
}

func TestValidateFirstBeforeSecond(t *testing.T) {
	earlier := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Millisecond)
	same := earlier

	t.Run("earlier before later passes", func(t *testing.T) {
		resolver := &recordingResolver{}
		v := newValidator(resolver, nil)

		require.NoError(t, v.ValidateFirstBeforeSecond(&earlier, &later, "range.error"))
		assert.Zero(t, resolver.calls)
	})

	t.Run("equal dates fail", func(t *testing.T) {
		v := newValidator(&recordingResolver{}, nil)

		err := v.ValidateFirstBeforeSecond(&earlier, &same, "range.error", "from", "to")

		require.Error(t, err)
		assert.True(t, ruerror.IsValidationFailure(err))
		assert.Equal(t, 400, ruerror.HTTPStatus(err))
		assert.Equal(t, "range.error from to", err.Error())
	})

	t.Run("later before earlier fails", func(t *testing.T) {
		v := newValidator(&recordingResolver{}, nil)

		err := v.ValidateFirstBeforeSecond(&later, &earlier, "range.error", "from", "to")

		require.Error(t, err)
		assert.True(t, ruerror.IsValidationFailure(err))
		e, ok := ruerror.As(err)
		require.True(t, ok)
		assert.Equal(t, "range.error", e.MessageKey())
		assert.Equal(t, []interface{}{"from", "to"}, e.MessageArgs())
		assert.Equal(t, ruerror.SeverityLow, e.Severity())
	})

	t.Run("nil bounds are invalid arguments", func(t *testing.T) {
		resolver := &recordingResolver{}
		v := newValidator(resolver, nil)

		for _, pair := range [][2]*time.Time{{nil, &later}, {&earlier, nil}, {nil, nil}} {
			err := v.ValidateFirstBeforeSecond(pair[0], pair[1], "range.error")

			require.Error(t, err)
			assert.True(t, ruerror.IsInvalidArgument(err))
			assert.False(t, ruerror.IsValidationFailure(err))
		}
		assert.Zero(t, resolver.calls, "invalid arguments are not localized")
	})

	t.Run("comparison is on instants", func(t *testing.T) {
		v := newValidator(&recordingResolver{}, nil)
		sameInRiyadh := earlier.In(riyadh)

		assert.Error(t, v.ValidateFirstBeforeSecond(&earlier, &sameInRiyadh, "range.error"))
	})
}

func TestResolverFailurePropagates(t *testing.T) {
	missing := ruerror.New("no bundle").WithCode(ruerror.CodeMissingResource)
	resolver := timex.MessageResolverFunc(func(key, locale string, params ...any) (string, error) {
		return "", missing
	})
	v := newValidator(resolver, nil)
	start := time.Now()

	err := v.ValidateFirstBeforeSecond(&start, &start, "unknown.key")

	assert.Same(t, missing, err)
	assert.True(t, ruerror.IsMissingResource(err))
}

func TestValidateDateFromAndDateTo(t *testing.T) {
	v := newValidator(&recordingResolver{}, nil)

	for _, ms := range []int64{-5, 0, 1_700_000_000_000} {
		assert.NoError(t, v.ValidateDateFromAndDateTo(nil, timex.Millis(ms), "range.error"))
		assert.NoError(t, v.ValidateDateFromAndDateTo(timex.Millis(ms), nil, "range.error"))
	}
	assert.NoError(t, v.ValidateDateFromAndDateTo(nil, nil, "range.error"))

	assert.NoError(t, v.ValidateDateFromAndDateTo(timex.Millis(1000), timex.Millis(1001), "range.error"))

	err := v.ValidateDateFromAndDateTo(timex.Millis(1000), timex.Millis(1000), "range.error")
	assert.True(t, ruerror.IsValidationFailure(err))

	err = v.ValidateDateFromAndDateTo(timex.Millis(2000), timex.Millis(1000), "range.error")
	assert.True(t, ruerror.IsValidationFailure(err))
}

func TestValidateDateInTheFuture(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	clock := timex.NewFixedClock(now)
	v := newValidator(&recordingResolver{}, clock)
	nowMillis := now.UnixMilli()

	assert.NoError(t, v.ValidateDateInTheFuture(nil, "future.error"))
	assert.NoError(t, v.ValidateDateInTheFuture(timex.Millis(nowMillis+1), "future.error"))

	err := v.ValidateDateInTheFuture(timex.Millis(nowMillis), "future.error")
	assert.True(t, ruerror.IsValidationFailure(err), "now is not in the future")

	err = v.ValidateDateInTheFuture(timex.Millis(nowMillis-1), "future.error")
	assert.True(t, ruerror.IsValidationFailure(err))

	// Sub-millisecond clock readings compare at millisecond precision
	clock.Set(now.Add(500 * time.Microsecond))
	assert.Error(t, v.ValidateDateInTheFuture(timex.Millis(nowMillis), "future.error"))
	assert.NoError(t, v.ValidateDateInTheFuture(timex.Millis(nowMillis+1), "future.error"))

	// Now is read on every call
	clock.Advance(time.Hour)
	assert.Error(t, v.ValidateDateInTheFuture(timex.Millis(nowMillis+1), "future.error"))
}

func TestValidatorLocale(t *testing.T) {
	resolver := &recordingResolver{}
	v := newValidator(resolver, nil)
	arabic := v.WithLocale("ar")
	start := time.Now()

	_ = arabic.ValidateFirstBeforeSecond(&start, &start, "range.error")
	assert.Equal(t, "ar", resolver.locale)

	_ = v.ValidateFirstBeforeSecond(&start, &start, "range.error")
	assert.Equal(t, timex.DefaultLocale, resolver.locale)
	assert.Equal(t, "en", v.Locale())
	assert.Equal(t, "ar", arabic.Locale())
}

func TestValidatorWithDefaultBundle(t *testing.T) {
	bundle, err := i18n.NewDefaultBundle()
	require.NoError(t, err)

	var resolver timex.MessageResolver = bundle
	v := newValidator(resolver, timex.NewFixedClock(time.UnixMilli(5_000)))

	err = v.ValidateDateFromAndDateTo(timex.Millis(10), timex.Millis(5),
		i18n.KeyFirstDateShouldBeBeforeSecondDate, "validFrom", "validTo")
	require.Error(t, err)
	assert.Equal(t, "validFrom must be before validTo", err.Error())

	err = v.WithLocale("ar").ValidateDateInTheFuture(timex.Millis(5_000),
		i18n.KeyDateShouldBeInTheFuture, "validTo")
	require.Error(t, err)
	assert.Equal(t, "يجب أن يكون validTo في المستقبل", err.Error())

	err = v.ValidateDateInTheFuture(timex.Millis(4_000), "no.such.key")
	assert.True(t, ruerror.IsMissingResource(err))
}

func TestValidatorWithoutResolver(t *testing.T) {
	start := time.Now()
	later := start.Add(time.Second)

	v := newValidator(nil, nil)
	err := v.ValidateFirstBeforeSecond(&start, &start, "range.error")
	require.Error(t, err)
	assert.True(t, ruerror.IsInvalidArgument(err))
	assert.False(t, ruerror.IsValidationFailure(err))
	assert.NoError(t, v.ValidateFirstBeforeSecond(&start, &later, "range.error"))

	keyed := timex.NewValidatorWithOptions(timex.ValidatorOptions{KeyAsMessage: true, Logger: quietLogger()})
	err = keyed.ValidateFirstBeforeSecond(&start, &start, "range.error")
	require.Error(t, err)
	assert.True(t, ruerror.IsValidationFailure(err))
	assert.Equal(t, "range.error", err.Error())
}

func TestValidationFailureLogsWithoutParams(t *testing.T) {
	var buf bytes.Buffer
	logger := rulog.NewWithConfig(rulog.Config{Level: rulog.LevelDebug, Format: rulog.FormatJSON, Output: &buf})
	v := timex.NewValidatorWithOptions(timex.ValidatorOptions{
		Resolver: &recordingResolver{},
		Logger:   logger,
	})
	start := time.Now()

	_ = v.ValidateFirstBeforeSecond(&start, &start, "range.error", "4111-1111-1111-1111")

	out := buf.String()
	assert.Contains(t, out, "range.error")
	assert.Contains(t, out, `"level":"debug"`)
	assert.NotContains(t, out, "4111-1111-1111-1111")
}

func TestDayBounds(t *testing.T) {
	withLocal(t, riyadh)
	clock := timex.NewFixedClock(time.Date(2024, time.May, 15, 13, 45, 10, 500, riyadh))
	v := newValidator(nil, clock)

	startOf := func(day int) int64 {
		return time.Date(2024, time.May, day, 0, 0, 0, 0, riyadh).UnixMilli()
	}
	endOf := func(day int) int64 {
		return time.Date(2024, time.May, day, 23, 59, 59, 999_000_000, riyadh).UnixMilli()
	}

	assert.Equal(t, startOf(15), v.TodayMinTime())
	assert.Equal(t, endOf(15), v.TodayMaxTime())
	assert.Equal(t, startOf(18), v.MinTimeOfNowIncrementedByNumOfDays(3))
	assert.Equal(t, startOf(13), v.MinTimeOfNowDecrementedByNumOfDays(2))
	assert.Equal(t, endOf(16), v.MaxTimeOfNowIncrementedByNumOfDays(1))
	assert.Equal(t, endOf(10), v.MaxTimeOfNowDecrementedByNumOfDays(5))

	assert.Equal(t, v.MinTimeOfNowDecrementedByNumOfDays(1), v.MinTimeOfNowIncrementedByNumOfDays(-1))
	assert.Equal(t, v.MaxTimeOfNowIncrementedByNumOfDays(2), v.MaxTimeOfNowDecrementedByNumOfDays(-2))

	assert.Less(t, v.TodayMinTime(), v.TodayMaxTime())
	assert.Greater(t, v.MinTimeOfNowIncrementedByNumOfDays(1), v.TodayMaxTime())
	assert.Equal(t, v.TodayMaxTime()+1, v.MinTimeOfNowIncrementedByNumOfDays(1))
}

func TestDayBoundsOrderingWithRealClock(t *testing.T) {
	v := timex.NewValidatorWithOptions(timex.ValidatorOptions{Logger: quietLogger()})

	assert.Less(t, v.TodayMinTime(), v.TodayMaxTime())
	assert.Greater(t, v.MinTimeOfNowIncrementedByNumOfDays(1), v.TodayMaxTime())
}

func TestDayBoundsCrossMonthAndLeapDay(t *testing.T) {
	withLocal(t, time.UTC)
	clock := timex.NewFixedClock(time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC))
	v := newValidator(nil, clock)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		v.MinTimeOfNowIncrementedByNumOfDays(1))

	clock.Set(time.Date(2024, time.February, 28, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC).UnixMilli(),
		v.MinTimeOfNowIncrementedByNumOfDays(1))

	clock.Set(time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999_000_000, time.UTC).UnixMilli(),
		v.MaxTimeOfNowDecrementedByNumOfDays(1))
}

func TestDayBoundsAcrossDSTUseCalendarDays(t *testing.T) {
	loc := newYork(t)
	withLocal(t, loc)
	v := newValidator(nil, timex.NewFixedClock(time.Date(2024, time.March, 9, 12, 0, 0, 0, loc)))

	// 2024-03-10 is 23 hours long in New York
	day := v.MinTimeOfNowIncrementedByNumOfDays(2) - v.MinTimeOfNowIncrementedByNumOfDays(1)
	assert.Equal(t, (23 * time.Hour).Milliseconds(), day)

	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, loc).UnixMilli(),
		v.MinTimeOfNowIncrementedByNumOfDays(1))
	assert.Equal(t, time.Date(2024, time.March, 11, 23, 59, 59, 999_000_000, loc).UnixMilli(),
		v.MaxTimeOfNowIncrementedByNumOfDays(2))
}

func loadZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestSkippedMidnightResolvesForward(t *testing.T) {
	// Santiago springs forward at 2024-09-08 00:00, straight to 01:00
	santiago := loadZone(t, "America/Santiago")
	withLocal(t, santiago)
	v := newValidator(nil, timex.NewFixedClock(time.Date(2024, time.September, 8, 12, 0, 0, 0, santiago)))

	firstInstant := time.Date(2024, time.September, 8, 4, 0, 0, 0, time.UTC)

	min := time.UnixMilli(v.TodayMinTime()).In(santiago)
	assert.Equal(t, firstInstant.UnixMilli(), min.UnixMilli())
	assert.Equal(t, 8, min.Day())
	assert.Equal(t, 1, min.Hour())

	date := timex.CalendarDateToDate(timex.NewCalendarDate(2024, time.September, 8))
	assert.True(t, date.Equal(firstInstant), "got %v", date)
	assert.Equal(t, timex.NewCalendarDate(2024, time.September, 8), timex.DateToCalendarDate(&date))

	// The previous day still ends one millisecond before the gap
	assert.Equal(t, firstInstant.UnixMilli()-1, v.MaxTimeOfNowDecrementedByNumOfDays(1))
	assert.Equal(t, firstInstant.UnixMilli(), v.MinTimeOfNowIncrementedByNumOfDays(0))
}

func TestSkippedWallTimeMovesForwardByGap(t *testing.T) {
	loc := newYork(t)
	withLocal(t, loc)

	skipped := timex.NewLocalDateTime(2024, time.March, 10, 2, 30, 0, 0)
	got := timex.LocalDateTimeToDate(skipped)

	name, offset := got.Zone()
	assert.Equal(t, "EDT", name)
	assert.Equal(t, -4*60*60, offset)
	assert.Equal(t, 3, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, time.Date(2024, time.March, 10, 7, 30, 0, 0, time.UTC).Unix(),
		*timex.LocalDateTimeToEpochSeconds(&skipped))

	// Valid wall times on both sides of the gap are untouched
	before := timex.NewLocalDateTime(2024, time.March, 10, 1, 59, 59, 0).In(loc)
	after := timex.NewLocalDateTime(2024, time.March, 10, 3, 0, 0, 0).In(loc)
	assert.Equal(t, 1, before.Hour())
	assert.Equal(t, 3, after.Hour())
	assert.Equal(t, time.Second, after.Sub(before))
}

func TestBoundsFollowTimeLocal(t *testing.T) {
	instant := time.Date(2024, time.May, 15, 22, 30, 0, 0, time.UTC)
	v := newValidator(nil, timex.NewFixedClock(instant))

	withLocal(t, time.UTC)
	utcStart := v.TodayMinTime()

	withLocal(t, riyadh)
	riyadhStart := v.TodayMinTime()

	// 22:30Z is already May 16 in UTC+3
	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC).UnixMilli(), utcStart)
	assert.Equal(t, time.Date(2024, time.May, 16, 0, 0, 0, 0, riyadh).UnixMilli(), riyadhStart)
}

func TestCurrentTimePlusMillis(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	v := newValidator(nil, timex.NewFixedClock(now))

	assert.Equal(t, now, v.Now())
	assert.Equal(t, now.Add(time.Second), v.CurrentTimePlusMillis(1_999))
	assert.Equal(t, now, v.CurrentTimePlusMillis(999))
	assert.Equal(t, now.Add(-time.Second), v.CurrentTimePlusMillis(-1_500))
	assert.Equal(t, now.Add(time.Hour), v.CurrentTimePlusMillis(3_600_000))
}

func TestValidatorCopiesAreIndependent(t *testing.T) {
	first := timex.NewFixedClock(time.UnixMilli(1_000))
	second := timex.NewFixedClock(time.UnixMilli(2_000))
	v := newValidator(nil, first)
	w := v.WithClock(second)

	assert.Equal(t, int64(1_000), v.Now().UnixMilli())
	assert.Equal(t, int64(2_000), w.Now().UnixMilli())
}

func TestMessageResolverFunc(t *testing.T) {
	sentinel := errors.New("boom")
	f := timex.MessageResolverFunc(func(key, locale string, params ...any) (string, error) {
		return key + "@" + locale, sentinel
	})

	msg, err := f.Resolve("k", "ar")
	assert.Equal(t, "k@ar", msg)
	assert.ErrorIs(t, err, sentinel)
}
