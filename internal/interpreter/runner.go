package interpreter

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Deployment is one robot definition: where it starts and what it runs.
type Deployment struct {
	Start   Point
	Heading Heading
	Program string
}

// Runner replays a batch of deployments on a grid.
//
// Workers > 1 simulates robots on a bounded pool. Results keep input order,
// and the error returned is the one from the lowest-numbered failing robot,
// so the outcome is identical to the sequential run.
type Runner struct {
	Workers int
	Log     logrus.FieldLogger
}

// Run simulates deployments sequentially with logging disabled.
func Run(g Grid, deployments []Deployment) ([]State, error) {
	return (&Runner{}).Run(g, deployments)
}

func (rn *Runner) Run(g Grid, deployments []Deployment) ([]State, error) {
	if rn.Workers > 1 && len(deployments) > 1 {
		return rn.runPool(g, deployments)
	}
	states := make([]State, 0, len(deployments))
	for i, d := range deployments {
		st, err := rn.simulate(g, i, d)
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	return states, nil
}

func (rn *Runner) runPool(g Grid, deployments []Deployment) ([]State, error) {
	states := make([]State, len(deployments))
	errs := make([]error, len(deployments))

	var eg errgroup.Group
	eg.SetLimit(rn.Workers)
	for i, d := range deployments {
		i, d := i, d
		eg.Go(func() error {
			states[i], errs[i] = rn.simulate(g, i, d)
			return nil
		})
	}
	_ = eg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return states, nil
}

func (rn *Runner) simulate(g Grid, i int, d Deployment) (State, error) {
	log := rn.logger().WithFields(logrus.Fields{
		"robot":   i + 1,
		"x":       d.Start.X,
		"y":       d.Start.Y,
		"heading": d.Heading.String(),
	})
	if !g.Contains(d.Start) {
		return State{}, fmt.Errorf("robot %d: %w: %v is outside grid %v", i+1, ErrInvalidInitialPosition, d.Start, g)
	}

	r := NewRobot(d.Start, d.Heading)
	log.WithField("program", d.Program).Debug("robot deployed")
	if err := r.Execute(d.Program, g); err != nil {
		log.WithError(err).WithField("stopped_at", r.String()).Debug("robot halted")
		return State{}, fmt.Errorf("robot %d: %w", i+1, err)
	}

	st := r.State()
	log.WithField("final", st.String()).Debug("robot finished")
	return st, nil
}

func (rn *Runner) logger() logrus.FieldLogger {
	if rn.Log != nil {
		return rn.Log
	}
	return discardLogger
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
