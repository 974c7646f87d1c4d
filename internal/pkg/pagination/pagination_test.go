package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	p := FromQuery("", "")
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultLimit, p.Limit)

	p = FromQuery("2", "10")
	require.Equal(t, 2, p.Page)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, int64(10), p.Skip())

	p = FromQuery("0", "-5")
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultLimit, p.Limit)

	p = FromQuery("abc", "9999")
	require.Equal(t, 1, p.Page)
	require.Equal(t, MaxLimit, p.Limit)
}

func TestSkip(t *testing.T) {
	require.Equal(t, int64(0), Params{Page: 1, Limit: 10}.Skip())
	// Page 2 with limit 10 starts at record 11
	require.Equal(t, int64(10), Params{Page: 2, Limit: 10}.Skip())
	require.Equal(t, int64(40), Params{Page: 5, Limit: 10}.Skip())
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0, 10))
	require.Equal(t, 1, TotalPages(1, 10))
	require.Equal(t, 1, TotalPages(10, 10))
	require.Equal(t, 2, TotalPages(11, 10))
	require.Equal(t, 3, TotalPages(25, 10))
	require.Equal(t, 0, TotalPages(5, 0))
}
