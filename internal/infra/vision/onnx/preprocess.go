package onnx

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for the upload formats the frontends produce.
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const imageSize = 224

// Normalization constants used when the ViT backbone was trained.
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

// preprocess decodes the upload, resizes it to 224x224 and returns normalized
// NCHW float32 pixel data ready for the input tensor.
func preprocess(data []byte) ([]float32, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.ApproxBiLinear.Scale(resized, resized.Bounds(), src, src.Bounds(), draw.Src, nil)

	plane := imageSize * imageSize
	pixels := make([]float32, 3*plane)
	for y := 0; y < imageSize; y++ {
		for x := 0; x < imageSize; x++ {
			offset := resized.PixOffset(x, y)
			idx := y*imageSize + x
			for ch := 0; ch < 3; ch++ {
				value := float32(resized.Pix[offset+ch]) / 255.0
				pixels[ch*plane+idx] = (value - channelMean[ch]) / channelStd[ch]
			}
		}
	}
	return pixels, nil
}
