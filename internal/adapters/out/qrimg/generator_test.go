package qrimg_test

import (
	"bytes"
	"image/png"
	"testing"

	"tableside/internal/adapters/out/qrimg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ProducesDecodablePNG(t *testing.T) {
	generator := qrimg.NewGenerator()

	data, err := generator.Generate("http://example.test/table/42", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGenerate_EmptyPayload_ReturnsError(t *testing.T) {
	generator := qrimg.NewGenerator()

	_, err := generator.Generate("", 256)
	require.Error(t, err)
}
