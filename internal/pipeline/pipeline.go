package pipeline

import (
	"runtime"
	"sync"

	"echolint/internal/diag"
	"echolint/internal/echo"
	"echolint/internal/token"
)

// Analyze runs the echo engine over the containers with a pool of workers.
// Every (container, token, condition) triple is independent, so containers
// fan out freely; each one collects into its own buffer and the buffers are
// concatenated in container order, making the output byte-identical to a
// sequential Engine.Run.
func Analyze(cfg echo.Config, containers []token.Container, workers int) ([]diag.Diagnostic, error) {
	if len(containers) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	collectors := make([]diag.Collector, len(containers))

	// The fatal radius check must fire once, before any container work.
	if cfg.Radius <= 0 {
		err := echo.NewEngine(cfg, &collectors[0]).Run(containers)
		return collectors[0].Diagnostics, err
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				echo.NewEngine(cfg, &collectors[i]).RunContainer(containers[i])
			}
		}()
	}

	for i := range containers {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := make([]diag.Diagnostic, 0, len(containers))
	for i := range collectors {
		out = append(out, collectors[i].Diagnostics...)
	}
	return out, nil
}
