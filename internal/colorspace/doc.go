// Package colorspace provides CIE L*a*b* sample types, RGB->Lab
// conversion, and the CIEDE2000 perceptual color-difference formula used
// to score sampled chart patches against the reference table.
//
// RGB->Lab conversion is delegated to github.com/lucasb-eyer/go-colorful,
// which returns floating-point L*a*b* directly from an sRGB triple. This
// sidesteps the lossy 8-bit Lab round trip a native-vision pipeline would
// perform (encode to 8-bit Lab, then decode back to float for ΔE) — see
// DESIGN.md for the reasoning.
//
// CIEDE2000 itself is implemented directly against the published
// formula rather than through a library distance method, because the
// parametric weights (k_L=k_C=k_H=1) and the exact reference-value
// semantics need to match published verification tables to 1e-4.
package colorspace
