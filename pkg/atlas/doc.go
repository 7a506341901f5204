// Package atlas renders 2048x2048 texture-atlas images from color palettes.
//
// The canvas layout is fixed. The top band holds a grid of solid swatches,
// one per palette color. The right edge carries a full-height gradient over
// the whole palette in order. Below the top band sit two rows of twelve
// gradient strips: the first slot blends the lightest and darkest palette
// colors, the rest of row one blends randomly picked colors with spaced
// nearest neighbors, and row two blends small random samples of the palette.
//
// All randomness comes from an injected *rand.Rand, so a fixed seed fixes
// the output bytes exactly.
package atlas
