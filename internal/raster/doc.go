// Package raster implements the pixel-level half of the photo-to-line-art
// conversion: a fixed seven-stage filter pipeline that reduces a decoded
// photograph to a strictly two-valued (ink/background) buffer ready for
// vector extraction.
//
// # Coordinate System
//
// All pixel coordinates are 0-based: X increases rightward, Y increases
// downward, and (0,0) is the top-left pixel. Channel data is stored
// row-major as interleaved R,G,B,A bytes.
//
// # Pipeline
//
// The stages run strictly in this order, each consuming the previous
// stage's output:
//
//  1. Grayscale — ITU-R BT.601 luminance (0.299*R + 0.587*G + 0.114*B)
//  2. Contrast/Brightness — linear remap around the 128 midpoint
//  3. Blur — separable Gaussian, radius-parameterized, clamped borders
//  4. Edge detection — Sobel gradient magnitude, thresholded to ink
//  5. Morphological opening — speckle removal, rounds set by complexity
//  6. Line-weight thickening — extra ink dilation passes
//  7. Binarize — force every pixel to pure 0 or 255
//
// Every stage is a pure function from one Buffer to a new Buffer; nothing
// is shared between stages except the immutable Settings value, so any
// subset of stages can be run and tested in isolation.
//
// # Determinism
//
// For a given Buffer and Settings the pipeline output is byte-for-byte
// deterministic: no concurrency, no floating-point reductions whose order
// depends on scheduling, and border pixels are always handled by clamping
// to the nearest valid neighbor rather than by cropping.
package raster
