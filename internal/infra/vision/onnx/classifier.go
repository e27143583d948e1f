package onnx

import (
	"context"
	"fmt"
	"math"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/sparsha/skincare-ai/internal/domain/skintype"
)

// Node names match the ViT checkpoint exported to ONNX.
const (
	inputName  = "pixel_values"
	outputName = "logits"
)

var labels = []skintype.SkinType{skintype.Dry, skintype.Normal, skintype.Oily}

// Classifier wraps an ONNX Runtime session over the fine-tuned skin type
// model. Input is a 1x3x224x224 NCHW tensor, output one logit per label.
type Classifier struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// NewClassifier loads the checkpoint at path. A missing or unloadable file is
// reported as an error; the caller decides how to degrade.
func NewClassifier(path string) (*Classifier, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("model checkpoint not found: %w", err)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx runtime: %w", err)
	}

	inputShape := []int64{1, 3, imageSize, imageSize}
	outputShape := []int64{1, int64(len(labels))}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer options.Destroy()

	inputTensor, err := ort.NewTensor(inputShape, make([]float32, 3*imageSize*imageSize))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		path,
		[]string{inputName},
		[]string{outputName},
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
		options,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &Classifier{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Classify decodes the image, runs inference and returns the argmax label
// with its softmax confidence.
func (c *Classifier) Classify(ctx context.Context, image []byte) (skintype.SkinType, float32, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	pixels, err := preprocess(image)
	if err != nil {
		return "", 0, err
	}

	// The session reuses its input/output tensors, so runs must be serialized.
	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.inputTensor.GetData(), pixels)
	if err := c.session.Run(); err != nil {
		return "", 0, fmt.Errorf("run inference: %w", err)
	}

	logits := c.outputTensor.GetData()
	if len(logits) != len(labels) {
		return "", 0, fmt.Errorf("unexpected logit count: %d", len(logits))
	}

	best, confidence := softmaxArgmax(logits)
	return labels[best], confidence, nil
}

// Close releases the ONNX Runtime resources.
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inputTensor != nil {
		c.inputTensor.Destroy()
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
	}
	if c.session != nil {
		c.session.Destroy()
	}
	return ort.DestroyEnvironment()
}

func softmaxArgmax(logits []float32) (int, float32) {
	maxLogit := logits[0]
	best := 0
	for i, v := range logits {
		if v > maxLogit {
			maxLogit = v
			best = i
		}
	}

	var sum float64
	for _, v := range logits {
		sum += math.Exp(float64(v - maxLogit))
	}
	confidence := float32(1 / sum)
	return best, confidence
}
