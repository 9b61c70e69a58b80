package pdf_test

import (
	"errors"
	"testing"

	"tableside/internal/adapters/out/pdf"
	"tableside/internal/adapters/out/qrimg"
	"tableside/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPage_ProducesA4Document(t *testing.T) {
	renderer := pdf.NewRenderer()
	generator := qrimg.NewGenerator()

	doc, err := renderer.RenderPage(func(canvas ports.PageCanvas) error {
		w, h := canvas.Size()
		assert.InDelta(t, 210, w, 0.1)
		assert.InDelta(t, 297, h, 0.1)

		png, genErr := generator.Generate("http://example.test/table/1", 256)
		if genErr != nil {
			return genErr
		}
		if drawErr := canvas.DrawImage(png, 15, 15, 28.8, 28.8); drawErr != nil {
			return drawErr
		}
		canvas.DrawCenteredText("Masa 1", 33, 46)
		return nil
	})

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestRenderPage_DrawCallbackError_Propagates(t *testing.T) {
	renderer := pdf.NewRenderer()

	_, err := renderer.RenderPage(func(ports.PageCanvas) error {
		return errors.New("draw failed")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "draw failed")
}

func TestRenderPage_InvalidImageBytes_ReturnsError(t *testing.T) {
	renderer := pdf.NewRenderer()

	_, err := renderer.RenderPage(func(canvas ports.PageCanvas) error {
		return canvas.DrawImage([]byte("not a png"), 10, 10, 20, 20)
	})

	require.Error(t, err)
}
