package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/likhonsheikh/tetheros-go/utils"
)

func Test_FormatStablePrice(t *testing.T) {
	require.Equal(t, "1.0002", utils.FormatStablePrice(1.0002))
	require.Equal(t, "0.9995", utils.FormatStablePrice(0.9995))
	require.Equal(t, "1.0000", utils.FormatStablePrice(1))
}

func Test_FormatGroupedPrice(t *testing.T) {
	require.Equal(t, "92,948.00", utils.FormatGroupedPrice(92948))
	require.Equal(t, "3,124.29", utils.FormatGroupedPrice(3124.29))
	require.Equal(t, "92,948.12", utils.FormatGroupedPrice(92948.123))
	require.Equal(t, "1,234,567.89", utils.FormatGroupedPrice(1234567.891))
	require.Equal(t, "0.50", utils.FormatGroupedPrice(0.5))
}
