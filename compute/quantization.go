package compute

import (
	"encoding/binary"
	"math"
)

// Quantize maps value from [min, max] onto a single byte. A collapsed range
// (min == max) maps to 0; Dequantize restores min for it.
func Quantize[T float32 | float64](value T, min T, max T) (valueQuantized uint8) {
	if min == max {
		return 0
	}
	if value < min {
		value = min
	} else if value > max {
		value = max
	}
	// Normalize the value to the range [0, 1]
	normalized := (value - min) / (max - min)
	// Scale to [0, 255] and convert to uint8
	valueQuantized = uint8(normalized * 255)
	return valueQuantized
}

// Dequantize maps a single byte back onto [min, max].
func Dequantize[T float32 | float64](valueQuantized uint8, min T, max T) (value T) {
	// Normalize the uint8 value to the range [0, 1]
	normalized := T(valueQuantized) / 255.0
	// Scale back to the original range [min, max]
	value = min + normalized*(max-min)
	return value
}

// QuantizeVector packs a vector into one byte per element, prefixed with the
// vector's own value range as two little-endian float32s.
func QuantizeVector[T float32 | float64](vector []T) (vectorQuantized []uint8) {
	vectorQuantized = make([]uint8, len(vector)+8)
	min, max := rangeFloat(vector)
	binary.LittleEndian.PutUint32(vectorQuantized, math.Float32bits(float32(min)))
	binary.LittleEndian.PutUint32(vectorQuantized[4:], math.Float32bits(float32(max)))
	for i, value := range vector {
		vectorQuantized[i+8] = Quantize(value, T(min), T(max))
	}
	return vectorQuantized
}

// DequantizeVector reverses QuantizeVector using the embedded value range.
func DequantizeVector[T float32 | float64](vectorQuantized []uint8) (vector []T) {
	min := T(math.Float32frombits(binary.LittleEndian.Uint32(vectorQuantized)))
	max := T(math.Float32frombits(binary.LittleEndian.Uint32(vectorQuantized[4:])))
	vector = make([]T, len(vectorQuantized)-8)
	for i, value := range vectorQuantized[8:] {
		vector[i] = Dequantize[T](value, min, max)
	}
	return vector
}

func rangeFloat[T float32 | float64](slice []T) (min T, max T) {
	if len(slice) == 0 {
		return 0, 0
	}
	min, max = slice[0], slice[0]
	for _, v := range slice[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
