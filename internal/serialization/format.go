package serialization

import (
	"fmt"
	"time"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// Format constants.
const (
	MagicBytes      = "JNNW"
	FormatVersion   = 1
	HeaderAlignment = 64   // Tensor data starts on a 64-byte boundary
	FixedHeaderSize = 64   // Fixed binary header (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
	DTypeFloat64    = "float64"
)

const (
	bytesPerFloat64  = 8
	writerVersion    = "1.2.0"
	modelTypeNetwork = "NeuralNetwork"
)

// Flags stored in the fixed header.
const (
	FlagHasMetadata uint32 = 1 << 0 // custom metadata included
)

// Header is the JSON header of a snapshot.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the snapshot format
	WriterVersion string            `json:"writer_version"` // Version of the library that wrote the file
	ModelType     string            `json:"model_type"`     // Always "NeuralNetwork"
	SnapshotID    string            `json:"snapshot_id"`    // UUID assigned when the snapshot was written
	CreatedAt     time.Time         `json:"created_at"`     // When the snapshot was written
	Layers        []int             `json:"layers"`         // Layer widths, input first
	LearningRate  float64           `json:"learning_rate"`  // Fixed gradient-descent step size
	Activation    string            `json:"activation"`     // Registered activation name
	Tensors       []TensorMeta      `json:"tensors"`        // Tensor metadata, in data order
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
}

// TensorMeta describes one weight or bias matrix in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // e.g. "layers.0.weight"
	DType  string `json:"dtype"`  // Always "float64"
	Shape  []int  `json:"shape"`  // [rows, cols]
	Offset int64  `json:"offset"` // Bytes from start of the data section
	Size   int64  `json:"size"`   // Size in bytes
}

// Snapshot is the persisted state of a network.
type Snapshot struct {
	Layers       []int
	LearningRate float64
	Activation   string
	Weights      []*matrix.Matrix // Weights[i] has shape (Layers[i+1], Layers[i])
	Biases       []*matrix.Matrix // Biases[i] has shape (Layers[i+1], 1)
	Metadata     map[string]string

	// Filled in by the reader.
	SnapshotID string
	CreatedAt  time.Time
}

// WeightName returns the tensor name of the i-th weight matrix.
func WeightName(i int) string {
	return fmt.Sprintf("layers.%d.weight", i)
}

// BiasName returns the tensor name of the i-th bias vector.
func BiasName(i int) string {
	return fmt.Sprintf("layers.%d.bias", i)
}

// alignedDataOffset returns where tensor data begins for a header of the given size.
func alignedDataOffset(headerSize int64) int64 {
	pos := int64(FixedHeaderSize) + headerSize
	padding := (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
	return pos + padding
}
