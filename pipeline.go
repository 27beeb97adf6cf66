package gcfpack

import (
	"context"
	"sync"
)

const assemblyWorkers = 4

// assembleResources builds every resource record. Assemblies are
// data-independent so they fan out to a fixed worker pool; the result
// slice is indexed by declaration order, which the container assembler
// relies on when concatenating.
func (p *Packer) assembleResources(desc *Description) ([][]byte, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records := make([][]byte, len(desc.Resources))
	indices := produceIndices(ctx, len(desc.Resources))

	workers := assemblyWorkers
	if workers > len(desc.Resources) {
		workers = len(desc.Resources)
	}

	var errcList []<-chan error
	for i := 0; i < workers; i++ {
		errcList = append(errcList, p.assemblyWorker(cancel, desc, indices, records))
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}

	return records, nil
}

func produceIndices(ctx context.Context, n int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			select {
			case out <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (p *Packer) assemblyWorker(cancel context.CancelFunc, desc *Description, in <-chan int, records [][]byte) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for index := range in {
			record, err := p.assembleResource(index, &desc.Resources[index])
			if err != nil {
				errc <- err
				cancel()
				return
			}
			records[index] = record
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
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
