// Package molecule implements the minimal subset of the molecule
// serialization format the item contract requires: byte fixvecs, dynamic
// vectors, and unions. All integer headers are little-endian uint32.
package molecule

import (
	"encoding/binary"
	"fmt"
)

const headerSize = 4

// PackFixvec encodes a byte fixvec: item count header followed by the raw
// bytes.
func PackFixvec(payload []byte) []byte {
	out := make([]byte, headerSize+len(payload))
	binary.LittleEndian.PutUint32(out, uint32(len(payload)))
	copy(out[headerSize:], payload)
	return out
}

// UnpackFixvec decodes a byte fixvec, returning the raw payload.
func UnpackFixvec(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("molecule: fixvec shorter than its header")
	}
	count := binary.LittleEndian.Uint32(data)
	if uint64(len(data)) != uint64(headerSize)+uint64(count) {
		return nil, fmt.Errorf("molecule: fixvec header says %d bytes, body has %d", count, len(data)-headerSize)
	}
	return data[headerSize:], nil
}

// PackUnion encodes a union: the item id header followed by the entry bytes.
func PackUnion(id uint32, entry []byte) []byte {
	out := make([]byte, headerSize+len(entry))
	binary.LittleEndian.PutUint32(out, id)
	copy(out[headerSize:], entry)
	return out
}

// UnpackUnion decodes a union into its item id and entry bytes.
func UnpackUnion(data []byte) (uint32, []byte, error) {
	if len(data) < headerSize {
		return 0, nil, fmt.Errorf("molecule: union shorter than its header")
	}
	return binary.LittleEndian.Uint32(data), data[headerSize:], nil
}

// PackDynvec encodes a dynamic vector: total size, one offset per item, then
// the item bodies. An empty dynvec is a single header holding its own size.
func PackDynvec(items [][]byte) []byte {
	total := headerSize * (1 + len(items))
	for _, item := range items {
		total += len(item)
	}
	out := make([]byte, 0, total)

	var header [headerSize]byte
	binary.LittleEndian.PutUint32(header[:], uint32(total))
	out = append(out, header[:]...)

	offset := headerSize * (1 + len(items))
	for _, item := range items {
		binary.LittleEndian.PutUint32(header[:], uint32(offset))
		out = append(out, header[:]...)
		offset += len(item)
	}
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

// UnpackDynvec decodes a dynamic vector into its item bodies.
func UnpackDynvec(data []byte) ([][]byte, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("molecule: dynvec shorter than its header")
	}
	total := binary.LittleEndian.Uint32(data)
	if uint64(total) != uint64(len(data)) {
		return nil, fmt.Errorf("molecule: dynvec header says %d bytes, buffer has %d", total, len(data))
	}
	if total == headerSize {
		return nil, nil
	}
	if total < 2*headerSize {
		return nil, fmt.Errorf("molecule: dynvec header table is truncated")
	}

	first := binary.LittleEndian.Uint32(data[headerSize:])
	if first < 2*headerSize || first > total || first%headerSize != 0 {
		return nil, fmt.Errorf("molecule: dynvec first offset %d is out of range", first)
	}
	count := first/headerSize - 1

	offsets := make([]uint32, count+1)
	for i := uint32(0); i < count; i++ {
		offsets[i] = binary.LittleEndian.Uint32(data[headerSize*(1+i):])
	}
	offsets[count] = total

	items := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		start, end := offsets[i], offsets[i+1]
		if start > end || uint64(end) > uint64(len(data)) {
			return nil, fmt.Errorf("molecule: dynvec offsets are not monotonic")
		}
		items = append(items, data[start:end])
	}
	return items, nil
}
