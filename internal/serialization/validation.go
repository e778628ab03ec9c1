package serialization

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// Validation limits for security and resource protection.
const (
	MaxHeaderSize    = 16 * 1024 * 1024   // 16MB - maximum JSON header size
	MaxDataSize      = 1024 * 1024 * 1024 // 1GB - maximum tensor data size
	MaxTensorCount   = 100_000            // Maximum number of tensors in a snapshot
	MaxTensorNameLen = 256                // Maximum tensor name length
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal performs basic validation checks only.
	ValidationNormal
	// ValidationNone skips header validation. Tensor bounds are still checked on decode.
	ValidationNone
)

// ValidateTensorOffsets checks for overlapping tensor offsets and out-of-bounds access.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
		}
	}

	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", t.Offset, t.Size),
			}
		}

		if t.Size > dataSize || t.Offset > dataSize-t.Size {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateTensorName rejects names that are too long or contain path
// separators, "..", or null bytes.
func ValidateTensorName(name string) error {
	if len(name) > MaxTensorNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Tensor:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
		}
	}
	if strings.Contains(name, "..") {
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains '..'"}
	}
	if strings.ContainsAny(name, "/\\") {
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains path separator (/ or \\)"}
	}
	if strings.Contains(name, "\x00") {
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains null byte"}
	}
	return nil
}

// ValidateHeader performs header validation at the requested level.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
		}
	}
	for _, t := range h.Tensors {
		if err := ValidateTensorName(t.Name); err != nil {
			return err
		}
	}

	if level == ValidationStrict {
		if err := ValidateTensorOffsets(h.Tensors, dataSize); err != nil {
			return err
		}
		if math.IsNaN(h.LearningRate) || math.IsInf(h.LearningRate, 0) || h.LearningRate <= 0 {
			return &ValidationError{
				Type:    "invalid_learning_rate",
				Details: fmt.Sprintf("learning rate %v must be positive and finite", h.LearningRate),
			}
		}
	}

	return nil
}

// ValidateTopology checks that weights and biases match the layer widths:
// at least three layers, all positive, Weights[i] of shape
// (layers[i+1], layers[i]) and Biases[i] of shape (layers[i+1], 1).
func ValidateTopology(layers []int, weights, biases []*matrix.Matrix) error {
	if len(layers) < 3 {
		return &ValidationError{
			Type:    "invalid_topology",
			Details: fmt.Sprintf("%d layers, need input, output and at least one hidden layer", len(layers)),
		}
	}
	for i, w := range layers {
		if w < 1 {
			return &ValidationError{
				Type:    "invalid_topology",
				Details: fmt.Sprintf("layer %d has width %d", i, w),
			}
		}
	}
	if len(weights) != len(layers)-1 || len(biases) != len(layers)-1 {
		return &ValidationError{
			Type:    "invalid_topology",
			Details: fmt.Sprintf("%d layers need %d weight and bias matrices, got %d and %d", len(layers), len(layers)-1, len(weights), len(biases)),
		}
	}

	for i := range weights {
		if err := checkShape(WeightName(i), weights[i], layers[i+1], layers[i]); err != nil {
			return err
		}
		if err := checkShape(BiasName(i), biases[i], layers[i+1], 1); err != nil {
			return err
		}
	}
	return nil
}

func checkShape(name string, m *matrix.Matrix, rows, cols int) error {
	if m == nil {
		return &ValidationError{Type: "shape_mismatch", Tensor: name, Details: "nil matrix"}
	}
	if m.Rows() != rows || m.Cols() != cols {
		return &ValidationError{
			Type:    "shape_mismatch",
			Tensor:  name,
			Details: fmt.Sprintf("got [%d,%d], want [%d,%d]", m.Rows(), m.Cols(), rows, cols),
		}
	}
	return nil
}
