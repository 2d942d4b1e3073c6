package hamster

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var errSameDirectory = errors.New("hamster: input and output directories are the same")

var imageExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

func isImage(file string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(file))]
	return ok
}

func (c *Converter) findImages(ctx context.Context, base, skip string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Don't pick up our own output if it's inside the input
			if info.Mode().IsDir() && file == skip {
				return filepath.SkipDir
			}

			// Ignore any hidden files or directories
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return ctx.Err()
			}

			return nil
		})
	}()
	return out, errc, nil
}

// outputPath mirrors file from the base directory into the output directory
// with the extension replaced
func (c *Converter) outputPath(base, dir, file string) (string, error) {
	rel, err := filepath.Rel(base, file)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, strings.TrimSuffix(rel, filepath.Ext(rel))+"."+c.opts.format()), nil
}

func (c *Converter) conversionWorker(ctx context.Context, base, dir string, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			out, err := c.outputPath(base, dir, file)
			if err != nil {
				errc <- err
				return
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				errc <- err
				return
			}

			if err := c.ConvertFile(file, out); err != nil {
				errc <- err
				return
			}

			if ctx.Err() != nil {
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			// Stop the walker and the other workers, then drain
			cancel()
			for range errc {
			}
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan converts every image found under the directory in, writing the
// results to the same relative paths under the directory out.
func (c *Converter) Scan(ctx context.Context, in, out string) error {
	base, err := filepath.Abs(in)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(out)
	if err != nil {
		return err
	}

	if base == dir {
		return errSameDirectory
	}

	if _, err := encoderFor(c.opts.format()); err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findImages(ctx, base, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < c.opts.workers(); i++ {
		errc, err := c.conversionWorker(ctx, base, dir, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(cancelFunc, errcList...)
}
