package network

import (
	"bytes"
	"fmt"
	"io"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/activation"
	"github.com/JayPi4c/JavaNeuralNetwork/internal/serialization"
)

// Serialize writes n to w in the snapshot format.
//
// The activation is stored by name, so it must be registered with the
// activation package to be restorable.
func (n *Network) Serialize(w io.Writer) error {
	s, err := n.snapshot()
	if err != nil {
		return err
	}
	return serialization.Write(w, s)
}

// Deserialize reads a network previously written by Serialize.
// Every failure wraps ErrDeserialization.
func Deserialize(r io.Reader) (*Network, error) {
	s, err := serialization.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return fromSnapshot(s)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n *Network) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. n is replaced only
// when decoding succeeds.
func (n *Network) UnmarshalBinary(data []byte) error {
	restored, err := Deserialize(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*n = *restored
	return nil
}

// Save writes n to the file at path.
func (n *Network) Save(path string) error {
	s, err := n.snapshot()
	if err != nil {
		return err
	}
	return serialization.Save(path, s)
}

// Load reads a network from the file at path.
func Load(path string) (*Network, error) {
	s, err := serialization.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return fromSnapshot(s)
}

func (n *Network) snapshot() (*serialization.Snapshot, error) {
	name := n.act.Name()
	if _, err := activation.Lookup(name); err != nil {
		return nil, fmt.Errorf("network: cannot serialize activation: %w", err)
	}
	return &serialization.Snapshot{
		Layers:       n.Layers(),
		LearningRate: n.learningRate,
		Activation:   name,
		Weights:      n.weights,
		Biases:       n.biases,
	}, nil
}

func fromSnapshot(s *serialization.Snapshot) (*Network, error) {
	act, err := activation.Lookup(s.Activation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	if _, err := buildLayers(Config{
		LearningRate: s.LearningRate,
		InputWidth:   s.Layers[0],
		OutputWidth:  s.Layers[len(s.Layers)-1],
		HiddenWidths: s.Layers[1 : len(s.Layers)-1],
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return &Network{
		layers:       append([]int(nil), s.Layers...),
		learningRate: s.LearningRate,
		weights:      s.Weights,
		biases:       s.Biases,
		act:          act,
	}, nil
}
