package anacrack

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/projectdiscovery/gologger"
)

// State is the orchestrator's coarse lifecycle, surfaced for diagnostics and
// tests; it never gates behavior on its own.
type State int32

const (
	StateIdle State = iota
	StateStarting
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stats is a snapshot of orchestrator progress (§4.5, §7 observability).
type Stats struct {
	TuplesComposed   int64
	PhrasesChecked   int64
	PhrasesRecovered int64
	Elapsed          time.Duration
}

// Orchestrator is the bounded worker pool (C5): it drains LengthComposer,
// fans each LengthTuple's word buckets out to a TupleEnumerator, and runs
// PhraseMatcher against every emitted WordTuple, stopping once every target
// is recovered or the search space is exhausted.
type Orchestrator struct {
	dict       *Dictionary
	composer   *LengthComposer
	table      *PasswordTable
	comparator Comparator
	maxWorkers int

	state State

	tuplesComposed   int64
	phrasesChecked   int64
	phrasesRecovered int64
}

func NewOrchestrator(dict *Dictionary, composer *LengthComposer, table *PasswordTable, comparator Comparator, maxWorkers int) *Orchestrator {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Orchestrator{
		dict:       dict,
		composer:   composer,
		table:      table,
		comparator: comparator,
		maxWorkers: maxWorkers,
		state:      StateIdle,
	}
}

// State returns the orchestrator's current lifecycle state.
func (o *Orchestrator) State() State {
	return State(atomic.LoadInt32((*int32)(&o.state)))
}

func (o *Orchestrator) setState(s State) {
	atomic.StoreInt32((*int32)(&o.state), int32(s))
}

// Run drives the search to completion: every target recovered, the
// LengthComposer exhausted, or ctx cancelled - whichever comes first.
// phraseCh, when non-nil, receives every recovered phrase as it is found
// (observability sink for a CLI progress line or an --output writer); it is
// never required for correctness and is safe to leave nil.
func (o *Orchestrator) Run(ctx context.Context, phraseCh chan<- string) Stats {
	o.setState(StateStarting)
	start := time.Now()

	lengthTupleCh := make(chan []int, o.maxWorkers*2)
	var wg sync.WaitGroup

	o.setState(StateRunning)

	// Single dispatcher: LengthComposer is not goroutine-safe, so only one
	// goroutine ever calls Next() on it.
	go func() {
		defer close(lengthTupleCh)
		for {
			if o.table.AllFound() {
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			tuple, ok := o.composer.Next()
			if !ok {
				return
			}
			atomic.AddInt64(&o.tuplesComposed, 1)
			select {
			case lengthTupleCh <- tuple:
			case <-ctx.Done():
				return
			}
		}
	}()

	matcher := NewPhraseMatcher(o.comparator, o.table)

	for i := 0; i < o.maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.worker(ctx, lengthTupleCh, matcher, phraseCh)
		}()
	}

	wg.Wait()
	o.setState(StateStopped)

	return Stats{
		TuplesComposed:   atomic.LoadInt64(&o.tuplesComposed),
		PhrasesChecked:   atomic.LoadInt64(&o.phrasesChecked),
		PhrasesRecovered: atomic.LoadInt64(&o.phrasesRecovered),
		Elapsed:          time.Since(start),
	}
}

// worker consumes LengthTuples, builds the buckets for each, and exhausts
// its TupleEnumerator against the PhraseMatcher. A panic in one tuple's
// processing is logged and isolated; it never brings down the pool.
func (o *Orchestrator) worker(ctx context.Context, in <-chan []int, matcher *PhraseMatcher, phraseCh chan<- string) {
	for {
		if o.table.AllFound() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case lengthTuple, ok := <-in:
			if !ok {
				return
			}
			o.processLengthTuple(ctx, lengthTuple, matcher, phraseCh)
		}
	}
}

func (o *Orchestrator) processLengthTuple(ctx context.Context, lengthTuple []int, matcher *PhraseMatcher, phraseCh chan<- string) {
	defer func() {
		if r := recover(); r != nil {
			gologger.Error().Msgf("recovered from panic while processing length tuple %v: %v", lengthTuple, r)
		}
	}()

	buckets := make([][]string, len(lengthTuple))
	for i, length := range lengthTuple {
		words, ok := o.dict.Get(length)
		if !ok || len(words) == 0 {
			return // no candidates for this shape, nothing to enumerate
		}
		buckets[i] = words
	}

	enumerator := NewTupleEnumerator(buckets)
	for {
		if o.table.AllFound() {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		wordTuple, ok := enumerator.Next()
		if !ok {
			return
		}
		atomic.AddInt64(&o.phrasesChecked, 1)

		recovered := matcher.Match(wordTuple)
		for _, phrase := range recovered {
			atomic.AddInt64(&o.phrasesRecovered, 1)
			if phraseCh != nil {
				select {
				case phraseCh <- phrase:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
