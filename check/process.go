package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

const scriptSuffix = ".proof.yaml"

// ProcessFiles checks every given path, files and directories alike, and
// concatenates the per-file results.
func ProcessFiles(ctx context.Context, logger *zap.Logger, paths []string, opts Options) ([]FileResult, error) {
	var results []FileResult
	for _, path := range paths {
		fileResults, err := ProcessPath(ctx, logger, path, opts)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		results = append(results, fileResults...)
	}
	return results, nil
}

// ProcessPath checks one path. A directory is walked for *.proof.yaml
// scripts, which are then checked concurrently under a progress bar; a
// plain file is checked directly whatever its name.
func ProcessPath(ctx context.Context, logger *zap.Logger, path string, opts Options) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		fr, err := CheckFile(path, opts)
		if err != nil {
			return nil, err
		}
		return []FileResult{fr}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && strings.HasSuffix(filePath, scriptSuffix) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// one result slot per file keeps the output ordered regardless of
	// completion order
	results := make([]FileResult, len(files))
	errs := make([]error, len(files))
	sem := make(chan struct{}, runtime.NumCPU())
	done := make(chan int, len(files))

	started := 0
	for i, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			started++
			go func(i int, fp string) {
				defer func() { <-sem }()
				fr, err := CheckFile(fp, opts)
				if err != nil {
					if logger != nil {
						logger.Error("Error checking file", zap.String("file", fp), zap.Error(err))
					}
					errs[i] = err
				} else {
					results[i] = fr
				}
				_ = bar.Add(1)
				done <- i
			}(i, filePath)
		}
	}

	for j := 0; j < started; j++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-done:
		}
	}
	fmt.Println()

	out := make([]FileResult, 0, len(files))
	for i := range files {
		if errs[i] != nil {
			return out, errs[i]
		}
		out = append(out, results[i])
	}
	return out, nil
}
