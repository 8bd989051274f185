package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagOverlayOnlyCarriesChangedFlags(t *testing.T) {
	require.NoError(t, sliceCmd.Flags().Parse([]string{"-i", "50"}))
	ov := flagOverlay(sliceCmd)
	require.NotNil(t, ov.Infill)
	assert.Equal(t, 50, *ov.Infill)
	assert.Nil(t, ov.PerimeterLayers)
	assert.Nil(t, ov.Thickness)
}

func TestLoadConfigOverlayEmptyPathIsNoop(t *testing.T) {
	ov, err := loadConfigOverlay("")
	require.NoError(t, err)
	assert.Nil(t, ov.PerimeterLayers)
	assert.Nil(t, ov.Infill)
	assert.Nil(t, ov.Thickness)
}

func TestLoadConfigOverlayMissingFileErrors(t *testing.T) {
	_, err := loadConfigOverlay("/nonexistent/slicer-config.yml")
	assert.Error(t, err)
}
