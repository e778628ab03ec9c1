package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// Write encodes s to w.
//
// Layout:
//
//	0x00-0x03  magic "JNNW"
//	0x04-0x07  format version (uint32 LE)
//	0x08-0x0B  flags (uint32 LE)
//	0x0C-0x0F  reserved
//	0x10-0x17  JSON header size (uint64 LE)
//	0x18-0x1F  data section size (uint64 LE)
//	0x20-0x3F  SHA-256 of the data section
//	0x40-      JSON header, zero padding to 64 bytes, float64 LE tensor data
func Write(w io.Writer, s *Snapshot) error {
	if err := validateSnapshot(s); err != nil {
		return err
	}

	header := Header{
		FormatVersion: FormatVersion,
		WriterVersion: writerVersion,
		ModelType:     modelTypeNetwork,
		SnapshotID:    uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Layers:        append([]int(nil), s.Layers...),
		LearningRate:  s.LearningRate,
		Activation:    s.Activation,
		Tensors:       make([]TensorMeta, 0, 2*len(s.Weights)),
		Metadata:      s.Metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	// Tensors are laid out weight, bias per layer.
	var data []byte
	for i := range s.Weights {
		data = appendTensor(&header, data, WeightName(i), s.Weights[i])
		data = appendTensor(&header, data, BiasName(i), s.Biases[i])
	}

	checksum := ComputeChecksum(data)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	fixedHeader := make([]byte, FixedHeaderSize)
	copy(fixedHeader[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixedHeader[4:8], uint32(FormatVersion))

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixedHeader[8:12], flags)
	binary.LittleEndian.PutUint64(fixedHeader[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixedHeader[24:32], uint64(len(data)))
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.Write(fixedHeader); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}

	padding := alignedDataOffset(int64(len(headerJSON))) - int64(FixedHeaderSize) - int64(len(headerJSON))
	if padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// appendTensor records m's metadata in h and appends its values to data.
func appendTensor(h *Header, data []byte, name string, m *matrix.Matrix) []byte {
	values := m.Data()
	h.Tensors = append(h.Tensors, TensorMeta{
		Name:   name,
		DType:  DTypeFloat64,
		Shape:  []int{m.Rows(), m.Cols()},
		Offset: int64(len(data)),
		Size:   int64(len(values) * bytesPerFloat64),
	})
	for _, v := range values {
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
	}
	return data
}

// Save writes s to a new file at path, replacing any existing file.
func Save(path string, s *Snapshot) (err error) {
	//nolint:gosec // G304: File path comes from the caller, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return Write(file, s)
}

// validateSnapshot checks that s describes a consistent network before it is written.
func validateSnapshot(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if s.Activation == "" {
		return fmt.Errorf("%w: activation name is empty", ErrInvalidSnapshot)
	}
	return ValidateTopology(s.Layers, s.Weights, s.Biases)
}
