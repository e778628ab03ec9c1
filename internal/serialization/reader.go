package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// ReaderOptions configures snapshot decoding.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// Read decodes a snapshot from r with strict validation.
func Read(r io.Reader) (*Snapshot, error) {
	return ReadWithOptions(r, ReaderOptions{ValidationLevel: ValidationStrict})
}

// ReadWithOptions decodes a snapshot from r.
//
//nolint:gocyclo,cyclop // Linear decoding of a binary format
func ReadWithOptions(r io.Reader, opts ReaderOptions) (*Snapshot, error) {
	fixedHeader := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixedHeader); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}

	if string(fixedHeader[0:4]) != MagicBytes {
		return nil, fmt.Errorf("%w: got %q, expected %q", ErrInvalidMagic, string(fixedHeader[0:4]), MagicBytes)
	}
	version := binary.LittleEndian.Uint32(fixedHeader[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	headerSize := binary.LittleEndian.Uint64(fixedHeader[16:24])
	dataSize := binary.LittleEndian.Uint64(fixedHeader[24:32])
	var stored [32]byte
	copy(stored[:], fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > MaxDataSize {
		return nil, &ValidationError{
			Type:    "data_too_large",
			Details: fmt.Sprintf("data section %d bytes, max %d", dataSize, MaxDataSize),
		}
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header JSON: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize bounded by MaxHeaderSize above
	padding := alignedDataOffset(int64(headerSize)) - int64(FixedHeaderSize) - int64(headerSize)
	if padding > 0 {
		if _, err := io.ReadFull(r, make([]byte, padding)); err != nil {
			return nil, fmt.Errorf("failed to read padding: %w", err)
		}
	}

	data := make([]byte, dataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
			return nil, err
		}
	}

	//nolint:gosec // G115: dataSize bounded by MaxDataSize above
	if err := ValidateHeader(&header, int64(dataSize), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return decodeSnapshot(&header, data)
}

// decodeSnapshot rebuilds weight and bias matrices from the data section.
func decodeSnapshot(h *Header, data []byte) (*Snapshot, error) {
	if h.ModelType != modelTypeNetwork {
		return nil, fmt.Errorf("%w: model type %q", ErrInvalidSnapshot, h.ModelType)
	}
	if h.SnapshotID != "" {
		if _, err := uuid.Parse(h.SnapshotID); err != nil {
			return nil, fmt.Errorf("%w: snapshot id: %w", ErrInvalidSnapshot, err)
		}
	}

	metas := make(map[string]TensorMeta, len(h.Tensors))
	for _, meta := range h.Tensors {
		metas[meta.Name] = meta
	}

	n := len(h.Layers) - 1
	if n < 0 {
		n = 0
	}
	s := &Snapshot{
		Layers:       append([]int(nil), h.Layers...),
		LearningRate: h.LearningRate,
		Activation:   h.Activation,
		Weights:      make([]*matrix.Matrix, n),
		Biases:       make([]*matrix.Matrix, n),
		Metadata:     h.Metadata,
		SnapshotID:   h.SnapshotID,
		CreatedAt:    h.CreatedAt,
	}

	for i, w := range h.Layers {
		if w < 1 {
			return nil, &ValidationError{
				Type:    "invalid_topology",
				Details: fmt.Sprintf("layer %d width %d", i, w),
			}
		}
	}

	// Declared shapes must agree with the layer widths before anything is allocated.
	for i := 0; i < n; i++ {
		if err := checkDeclaredShape(metas, WeightName(i), h.Layers[i+1], h.Layers[i]); err != nil {
			return nil, err
		}
		if err := checkDeclaredShape(metas, BiasName(i), h.Layers[i+1], 1); err != nil {
			return nil, err
		}
	}

	var err error
	for i := 0; i < n; i++ {
		if s.Weights[i], err = loadTensor(metas, WeightName(i), data); err != nil {
			return nil, err
		}
		if s.Biases[i], err = loadTensor(metas, BiasName(i), data); err != nil {
			return nil, err
		}
	}

	if err := validateSnapshot(s); err != nil {
		return nil, err
	}
	return s, nil
}

// loadTensor copies the named tensor out of the data section.
func loadTensor(metas map[string]TensorMeta, name string, data []byte) (*matrix.Matrix, error) {
	meta, ok := metas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTensor, name)
	}
	if meta.DType != DTypeFloat64 {
		return nil, fmt.Errorf("%w: tensor %s has dtype %q", ErrInvalidSnapshot, name, meta.DType)
	}
	if len(meta.Shape) != 2 || meta.Shape[0] < 0 || meta.Shape[1] < 0 {
		return nil, fmt.Errorf("%w: tensor %s has shape %v", ErrInvalidSnapshot, name, meta.Shape)
	}

	if !sizeMatches(meta.Shape[0], meta.Shape[1], meta.Size) {
		return nil, &ValidationError{
			Type:    "size_mismatch",
			Tensor:  name,
			Details: fmt.Sprintf("shape %v does not fit %d bytes", meta.Shape, meta.Size),
		}
	}
	if meta.Offset < 0 || meta.Size > int64(len(data)) || meta.Offset > int64(len(data))-meta.Size {
		return nil, &ValidationError{
			Type:    "out_of_bounds",
			Tensor:  name,
			Details: fmt.Sprintf("offset %d + size %d > data_size %d", meta.Offset, meta.Size, len(data)),
		}
	}

	m := matrix.New(meta.Shape[0], meta.Shape[1])
	values := m.Data()
	raw := data[meta.Offset : meta.Offset+meta.Size]
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*bytesPerFloat64:]))
	}
	return m, nil
}

// sizeMatches reports whether a rows x cols float64 tensor occupies exactly
// size bytes. Shapes from the header are untrusted, so the product is never
// formed before it is known to fit.
func sizeMatches(rows, cols int, size int64) bool {
	if size < 0 || size%bytesPerFloat64 != 0 {
		return false
	}
	cells := size / bytesPerFloat64
	if rows == 0 || cols == 0 {
		return cells == 0
	}
	r, c := int64(rows), int64(cols)
	return c <= cells/r && r*c == cells
}

// checkDeclaredShape compares a tensor's declared shape with the shape the
// layer widths imply.
func checkDeclaredShape(metas map[string]TensorMeta, name string, rows, cols int) error {
	meta, ok := metas[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingTensor, name)
	}
	if len(meta.Shape) != 2 || meta.Shape[0] != rows || meta.Shape[1] != cols {
		return &ValidationError{
			Type:    "shape_mismatch",
			Tensor:  name,
			Details: fmt.Sprintf("declared shape %v, layers imply [%d %d]", meta.Shape, rows, cols),
		}
	}
	return nil
}

// Load reads a snapshot from the file at path with strict validation.
func Load(path string) (*Snapshot, error) {
	//nolint:gosec // G304: File path comes from the caller, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}
