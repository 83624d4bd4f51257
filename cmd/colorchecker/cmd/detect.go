package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	"strings"

	dimg "github.com/disintegration/imaging"

	"github.com/colorchecker/verifier-core/internal/detect"
	"github.com/colorchecker/verifier-core/internal/frame"
	"github.com/colorchecker/verifier-core/internal/geometry"
	"github.com/colorchecker/verifier-core/internal/imaging"
	"github.com/colorchecker/verifier-core/internal/result"
	"github.com/spf13/cobra"
)

const (
	outputFormatJSON = "json"
	outputFormatText = "text"
)

var outputFormat string

var imageCache = imaging.NewImageCache()

// detectionReport wraps a DetectionOutput with the source image's
// metadata, so the JSON output lets a developer sanity-check the file
// that produced a given result without a separate tool invocation.
type detectionReport struct {
	Image     *imaging.ImageInfo     `json:"image"`
	Detection result.DetectionOutput `json:"detection"`
}

// detectCmd runs the detection pipeline against a single still image.
var detectCmd = &cobra.Command{
	Use:   "detect <image>",
	Short: "Detect and score a ColorChecker chart in an image file",
	Long: `Load an image file, run the detection pipeline against it, and print
the resulting confidence, pass/fail classification, and metrics.

Supported formats: PNG, JPEG, GIF.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat != outputFormatJSON && outputFormat != outputFormatText {
			return fmt.Errorf("invalid output format: %s (must be one of: %s, %s)", outputFormat, outputFormatJSON, outputFormatText)
		}

		path := args[0]
		img, err := imageCache.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		info, err := imaging.LoadImageInfo(imageCache, path)
		if err != nil {
			return fmt.Errorf("failed to read image info for %s: %w", path, err)
		}

		f, err := frameFromImage(img)
		if err != nil {
			return fmt.Errorf("failed to prepare frame from %s: %w", path, err)
		}

		cfg := GetConfig()
		out := detect.NewWithConfig(*cfg).Detect(f)

		switch outputFormat {
		case outputFormatText:
			printText(cmd, path, info, out)
		default:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(detectionReport{Image: info, Detection: out}); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().StringVar(&outputFormat, "out", outputFormatJSON, "output format: json or text")
	rootCmd.AddCommand(detectCmd)
}

// frameFromImage converts a decoded image.Image into a Frame by
// normalizing it to a non-premultiplied *image.NRGBA via disintegration/
// imaging.Clone, regardless of the decoder's native color model (NRGBA,
// YCbCr, etc.), then copying its Pix buffer directly: NRGBA's row-major
// [R,G,B,A] byte layout already matches Frame's wire format.
func frameFromImage(img image.Image) (frame.Frame, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return frame.Frame{}, fmt.Errorf("image has non-positive dimensions %dx%d", w, h)
	}

	normalized := dimg.Clone(img)
	pixels := make([]byte, len(normalized.Pix))
	copy(pixels, normalized.Pix)

	return frame.Frame{Width: w, Height: h, Pixels: pixels}, nil
}

func printText(cmd *cobra.Command, path string, info *imaging.ImageInfo, out result.DetectionOutput) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  image:      %dx%d %s (%s%s)\n", info.Width, info.Height, info.Format, info.ColorDepth, alphaSuffix(info.HasAlpha))
	fmt.Fprintf(w, "  confidence: %.3f\n", out.Confidence)
	fmt.Fprintf(w, "  failure:    %s\n", out.Failure)
	fmt.Fprintf(w, "  needs_input: %t\n", out.NeedsInput)
	if out.Metrics == nil {
		return
	}
	m := out.Metrics
	fmt.Fprintf(w, "  area_score:     %.3f\n", m.AreaScore)
	fmt.Fprintf(w, "  aspect_score:   %.3f\n", m.AspectScore)
	fmt.Fprintf(w, "  contrast_score: %.3f\n", m.ContrastScore)
	fmt.Fprintf(w, "  blur_score:     %.3f\n", m.BlurScore)
	fmt.Fprintf(w, "  color_score:    %.3f\n", m.ColorScore)
	if m.AvgDeltaE != nil {
		fmt.Fprintf(w, "  avg_delta_e:    %.3f\n", *m.AvgDeltaE)
	}
	if m.MaxDeltaE != nil {
		fmt.Fprintf(w, "  max_delta_e:    %.3f\n", *m.MaxDeltaE)
	}
	fmt.Fprintf(w, "  primary_quad:   %s\n", formatPoints(m.PrimaryQuad))
	if len(m.SecondaryQuad) > 0 {
		fmt.Fprintf(w, "  secondary_quad: %s (valid=%t)\n", formatPoints(m.SecondaryQuad), m.SecondaryValid)
	}
}

func alphaSuffix(hasAlpha bool) string {
	if hasAlpha {
		return ", alpha"
	}
	return ""
}

func formatPoints(pts []geometry.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
