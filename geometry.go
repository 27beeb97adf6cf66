package gcfpack

import "math"

// mipDimension derives one dimension of a mip level from its base value:
// halve per level, round half to even, clamp to 1. Readers recompute
// default strides from the same chain, so the rounding mode is part of
// the format contract.
func mipDimension(base uint32, level int) uint32 {
	scaled := math.RoundToEven(float64(base) * math.Pow(0.5, float64(level)))
	if scaled < 1 {
		return 1
	}

	return uint32(scaled)
}

// mipLevelDimensions returns the width, height and depth of one mip level.
func mipLevelDimensions(width, height, depth uint32, level int) (uint32, uint32, uint32) {
	return mipDimension(width, level), mipDimension(height, level), mipDimension(depth, level)
}

// resolveStrides picks the authored stride where present and the computed
// default otherwise. Defaults chain: rows are tightly packed at the
// level's width, slices span whole rows, layers span whole slices, and an
// explicit value feeds the defaults derived from it.
func resolveStrides(tex *Texture, level *MipLevel, index int) (rowStride, sliceStride, layerStride uint32) {
	width, height, depth := mipLevelDimensions(tex.BaseWidth, tex.baseHeight(), tex.baseDepth(), index)

	rowStride = width
	if level.RowStride != nil {
		rowStride = *level.RowStride
	}

	sliceStride = rowStride * height
	if level.SliceStride != nil {
		sliceStride = *level.SliceStride
	}

	layerStride = sliceStride * depth
	if level.LayerStride != nil {
		layerStride = *level.LayerStride
	}

	return rowStride, sliceStride, layerStride
}
