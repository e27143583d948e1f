package onnx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreprocessShapeAndNormalization(t *testing.T) {
	// A uniform white image normalizes to a known value per channel.
	data := encodePNG(t, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	pixels, err := preprocess(data)
	require.NoError(t, err)
	require.Len(t, pixels, 3*imageSize*imageSize)

	plane := imageSize * imageSize
	for ch := 0; ch < 3; ch++ {
		want := (1.0 - channelMean[ch]) / channelStd[ch]
		require.InDelta(t, want, pixels[ch*plane], 1e-4, "channel %d", ch)
		require.InDelta(t, want, pixels[ch*plane+plane-1], 1e-4, "channel %d", ch)
	}
}

func TestPreprocessBlackImage(t *testing.T) {
	data := encodePNG(t, color.RGBA{A: 255})

	pixels, err := preprocess(data)
	require.NoError(t, err)

	plane := imageSize * imageSize
	for ch := 0; ch < 3; ch++ {
		want := (0.0 - channelMean[ch]) / channelStd[ch]
		require.InDelta(t, want, pixels[ch*plane], 1e-4, "channel %d", ch)
	}
}

func TestPreprocessRejectsInvalidBytes(t *testing.T) {
	_, err := preprocess([]byte("not an image"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode image")
}

func TestSoftmaxArgmax(t *testing.T) {
	best, confidence := softmaxArgmax([]float32{0.2, 0.1, 3.4})
	require.Equal(t, 2, best)
	require.Greater(t, confidence, float32(0.9))

	best, confidence = softmaxArgmax([]float32{5.0, 0.0, 0.0})
	require.Equal(t, 0, best)
	require.Greater(t, confidence, float32(0.9))
}

func encodePNG(t *testing.T, fill color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
