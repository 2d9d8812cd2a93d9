package timeseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrios/finmath/calendar"
	"github.com/davrios/finmath/timeseries"
)

func date(t *testing.T, day, month, year int) calendar.Date {
	t.Helper()
	d, err := calendar.New(day, month, year)
	require.NoError(t, err)
	return d
}

func sampleSeries(t *testing.T) *timeseries.Series[float64] {
	t.Helper()
	s, err := timeseries.FromPairs(
		[]calendar.Date{
			{Day: 1, Month: 1, Year: 2024},
			{Day: 1, Month: 7, Year: 2024},
			{Day: 1, Month: 1, Year: 2025},
		},
		[]float64{-100, 10, 110},
	)
	require.NoError(t, err)
	return s
}

func TestEmptyAndSize(t *testing.T) {
	t.Parallel()

	s := timeseries.New[string]()
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Size())

	require.NoError(t, s.Append(date(t, 5, 3, 2024), "first"))
	assert.False(t, s.Empty())
	assert.Equal(t, 1, s.Size())
}

func TestFromPairsValidation(t *testing.T) {
	t.Parallel()

	jan := calendar.Date{Day: 1, Month: 1, Year: 2024}
	feb := calendar.Date{Day: 1, Month: 2, Year: 2024}

	_, err := timeseries.FromPairs([]calendar.Date{jan, feb}, []float64{1})
	assert.Error(t, err, "length mismatch must be rejected")

	_, err = timeseries.FromPairs([]calendar.Date{feb, jan}, []float64{1, 2})
	assert.ErrorIs(t, err, timeseries.ErrUnsorted)

	_, err = timeseries.FromPairs([]calendar.Date{jan, jan}, []float64{1, 2})
	assert.ErrorIs(t, err, timeseries.ErrUnsorted, "duplicate dates must be rejected")

	bad := calendar.Date{Day: 30, Month: 2, Year: 2024}
	_, err = timeseries.FromPairs([]calendar.Date{bad}, []float64{1})
	assert.ErrorIs(t, err, timeseries.ErrInvalidDate)
}

func TestIndexAccess(t *testing.T) {
	t.Parallel()

	s := sampleSeries(t)

	d, err := s.DateAt(1)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date{Day: 1, Month: 7, Year: 2024}, d)

	v, err := s.ElementAt(2)
	require.NoError(t, err)
	assert.Equal(t, 110.0, v)

	_, err = s.DateAt(-1)
	assert.ErrorIs(t, err, timeseries.ErrIndexOutOfRange)
	_, err = s.DateAt(s.Size())
	assert.ErrorIs(t, err, timeseries.ErrIndexOutOfRange)
	_, err = s.ElementAt(-1)
	assert.ErrorIs(t, err, timeseries.ErrIndexOutOfRange)
	_, err = s.ElementAt(s.Size())
	assert.ErrorIs(t, err, timeseries.ErrIndexOutOfRange)
}

func TestDateLookup(t *testing.T) {
	t.Parallel()

	s := sampleSeries(t)
	present := calendar.Date{Day: 1, Month: 7, Year: 2024}
	absent := calendar.Date{Day: 2, Month: 7, Year: 2024}
	invalid := calendar.Date{Day: 31, Month: 2, Year: 2024}

	assert.True(t, s.Contains(present))
	assert.False(t, s.Contains(absent))

	v, err := s.At(present)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = s.At(absent)
	assert.ErrorIs(t, err, timeseries.ErrDateNotPresent)
	_, err = s.At(invalid)
	assert.ErrorIs(t, err, timeseries.ErrDateNotPresent)

	i, err := s.IndexOfDate(present)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = s.IndexOfDate(absent)
	assert.ErrorIs(t, err, timeseries.ErrDateNotPresent)
	_, err = s.IndexOfDate(invalid)
	assert.ErrorIs(t, err, timeseries.ErrInvalidDate)
}

func TestAppendKeepsOrdering(t *testing.T) {
	t.Parallel()

	s := timeseries.New[int]()
	require.NoError(t, s.Append(date(t, 1, 1, 2024), 1))
	require.NoError(t, s.Append(date(t, 2, 1, 2024), 2))

	err := s.Append(date(t, 2, 1, 2024), 3)
	assert.ErrorIs(t, err, timeseries.ErrUnsorted, "equal date must be rejected")

	err = s.Append(date(t, 31, 12, 2023), 4)
	assert.ErrorIs(t, err, timeseries.ErrUnsorted, "earlier date must be rejected")

	err = s.Append(calendar.Date{Day: 99, Month: 1, Year: 2024}, 5)
	assert.ErrorIs(t, err, timeseries.ErrInvalidDate)

	assert.Equal(t, 2, s.Size())
}

func TestCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	s := sampleSeries(t)
	clone := s.Clone()

	require.NoError(t, s.Append(date(t, 1, 7, 2025), 50))
	assert.Equal(t, 4, s.Size())
	assert.Equal(t, 3, clone.Size(), "clone must not observe later appends")

	dates := s.Dates()
	dates[0] = calendar.Date{Day: 9, Month: 9, Year: 2099}
	d, err := s.DateAt(0)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date{Day: 1, Month: 1, Year: 2024}, d, "Dates() must return a copy")

	elems := s.Elements()
	elems[0] = 12345
	v, err := s.ElementAt(0)
	require.NoError(t, err)
	assert.Equal(t, -100.0, v, "Elements() must return a copy")
}
