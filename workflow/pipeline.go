package workflow

import (
	"context"
	"github.com/nj-eka/LetterStatsGo/errs"
	"github.com/nj-eka/LetterStatsGo/regs"
)

type StatProducer interface {
	Stats() interface{}
}

type Runner interface {
	Run(context.Context) (regs.Stats, errs.Error)
}

type Pipeliner interface {
	Runner
	StatProducer
}

type Pipeline []Pipeliner

// Run runs every step in order and stops at the first failure.
func (pl Pipeline) Run(ctx context.Context) ([]regs.Stats, errs.Error) {
	results := make([]regs.Stats, 0, len(pl))
	for _, p := range pl {
		result, err := p.Run(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (pl Pipeline) StatProducers() []StatProducer {
	result := make([]StatProducer, 0, len(pl))
	for _, p := range pl {
		result = append(result, p)
	}
	return result
}
