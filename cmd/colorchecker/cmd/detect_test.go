package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeBlankPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{128, 128, 128, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "blank.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestDetectCommandJSONOutputOnBlankImage(t *testing.T) {
	path := writeBlankPNG(t, 32, 32)

	buf := new(bytes.Buffer)
	detectCmd.SetOut(buf)
	detectCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"detect", path})
	defer rootCmd.SetArgs(nil)

	if err := detectCmd.Execute(); err != nil {
		t.Fatalf("detect returned an error: %v", err)
	}
	if !strings.Contains(buf.String(), "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND in JSON output, got:\n%s", buf.String())
	}
}

func TestDetectCommandTextOutputOnBlankImage(t *testing.T) {
	path := writeBlankPNG(t, 32, 32)
	outputFormat = outputFormatText
	defer func() { outputFormat = outputFormatJSON }()

	buf := new(bytes.Buffer)
	detectCmd.SetOut(buf)
	detectCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"detect", path})
	defer rootCmd.SetArgs(nil)

	if err := detectCmd.Execute(); err != nil {
		t.Fatalf("detect returned an error: %v", err)
	}
	if !strings.Contains(buf.String(), "failure:") {
		t.Fatalf("expected text summary output, got:\n%s", buf.String())
	}
}

func TestDetectCommandRejectsUnknownOutputFormat(t *testing.T) {
	path := writeBlankPNG(t, 8, 8)
	outputFormat = "xml"
	defer func() { outputFormat = outputFormatJSON }()

	rootCmd.SetArgs([]string{"detect", path})
	defer rootCmd.SetArgs(nil)

	if err := detectCmd.Execute(); err == nil {
		t.Fatal("expected an error for an unsupported output format")
	}
}

func TestDetectCommandRejectsMissingFile(t *testing.T) {
	outputFormat = outputFormatJSON
	rootCmd.SetArgs([]string{"detect", filepath.Join(t.TempDir(), "does-not-exist.png")})
	defer rootCmd.SetArgs(nil)

	if err := detectCmd.Execute(); err == nil {
		t.Fatal("expected an error for a nonexistent file")
	}
}
