package tablegen

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Checksum32 hashes the little-endian bit patterns of table. Two tables share a
// checksum only if they hold the same samples bit for bit.
func Checksum32(table []float32) uint64 {
	buf := make([]byte, 4*len(table))
	for i, v := range table {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return xxh3.Hash(buf)
}

// Checksum64 hashes the little-endian bit patterns of table.
func Checksum64(table []float64) uint64 {
	buf := make([]byte, 8*len(table))
	for i, v := range table {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return xxh3.Hash(buf)
}
