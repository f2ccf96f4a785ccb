package levels

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

var (
	ErrNoPlayer = errors.New("levels: level has no player")
	ErrNoCoins  = errors.New("levels: level has no coins")
)

// LevelError locates a validation failure inside a pack.
type LevelError struct {
	Pack  string
	Index int
	Name  string
	Err   error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("%s level %d (%s): %v", e.Pack, e.Index+1, e.Name, e.Err)
}

func (e *LevelError) Unwrap() error { return e.Err }

// ValidateLevel parses a level plan and checks it is playable:
// it must contain a player and at least one coin.
func ValidateLevel(l Level) error {
	parser := sim.NewParser(sim.DefaultDictionary(rand.New(rand.NewSource(1))))
	level, err := parser.Parse(l.Plan)
	if err != nil {
		return err
	}
	if level.Player() == nil {
		return ErrNoPlayer
	}
	if level.NoMoreActors(sim.KindCoin) {
		return ErrNoCoins
	}
	return nil
}

// ValidatePack validates every level of a pack and returns all failures.
func ValidatePack(p Pack) []error {
	var errs []error
	for i, l := range p.Levels {
		if err := ValidateLevel(l); err != nil {
			errs = append(errs, &LevelError{Pack: p.ID, Index: i, Name: l.Name, Err: err})
		}
	}
	return errs
}

// Report is the validation outcome for one pack file.
type Report struct {
	Path   string
	PackID string
	Levels int
	Errors []error
}

// OK reports whether the file loaded and every level validated.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// ValidateFiles loads and validates pack files concurrently.
// Reports are returned in the order of paths.
func ValidateFiles(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, len(paths))
	loader := &Loader{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := Report{Path: path}
			pack, err := loader.LoadFile(path)
			if err != nil {
				r.Errors = []error{err}
				reports[i] = r
				return nil
			}
			r.PackID = pack.ID
			r.Levels = pack.Count()
			r.Errors = ValidatePack(pack)
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
