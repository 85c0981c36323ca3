// Package batch runs the watermarking pipeline over a folder of images,
// one file at a time, isolating per-file failures from the rest of the run.
package batch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ghostmark/watermarker/internal/utils"
	"github.com/ghostmark/watermarker/pkg/types"
)

// FileProcessor applies the configured watermark to a single file
type FileProcessor interface {
	ProcessFile(inputPath, outputPath string) error
}

// Runner enumerates a folder and processes every supported image
type Runner struct {
	proc   FileProcessor
	prefix string
	log    *zap.Logger
}

// NewRunner creates a runner over the given processor. A nil logger
// disables logging.
func NewRunner(proc FileProcessor, prefix string, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{proc: proc, prefix: prefix, log: log}
}

// Run watermarks every image file in inputDir into outputDir, writing each
// result to outputDir/<prefix><originalFilename>. Failures on individual
// files are logged and counted as skipped; the batch always continues.
// Only setup failures (missing input folder, unwritable output folder)
// abort the run.
func (r *Runner) Run(inputDir, outputDir string) (types.Summary, error) {
	var sum types.Summary

	if !utils.DirExists(inputDir) {
		return sum, fmt.Errorf("input folder %s does not exist", inputDir)
	}
	if err := utils.EnsureDir(outputDir); err != nil {
		return sum, fmt.Errorf("failed to create output folder: %w", err)
	}

	files, err := utils.ListImageFiles(inputDir)
	if err != nil {
		return sum, fmt.Errorf("failed to list input folder: %w", err)
	}

	for _, file := range files {
		outPath := utils.BuildOutputPath(file, outputDir, r.prefix)
		if err := r.proc.ProcessFile(file, outPath); err != nil {
			r.log.Warn("skipping file",
				zap.String("file", file),
				zap.Error(err))
			sum.Skipped++
			continue
		}
		r.log.Info("watermarked",
			zap.String("file", file),
			zap.String("output", outPath))
		sum.Processed++
	}

	return sum, nil
}
