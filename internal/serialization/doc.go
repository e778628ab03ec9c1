// Package serialization provides the binary snapshot format for saving and
// loading neural networks.
//
//	Format Structure:
//	  [64 bytes: fixed header]
//	    magic "JNNW", version, flags, header size, data size, SHA-256 of data
//	  [Header: JSON metadata (layers, learning rate, activation, tensor table)]
//	  [zero padding to a 64-byte boundary]
//	  [Tensor data: float64 little-endian, weight then bias for each layer]
//
// Readers validate the checksum, tensor names and tensor offsets before any
// matrix is allocated, and reject snapshots whose matrices do not fit the
// recorded layer widths.
//
// Example usage:
//
//	// Save
//	if err := serialization.Save("NeuralNetwork.nn", snapshot); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load
//	snapshot, err := serialization.Load("NeuralNetwork.nn")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
