package errgroup

import (
	"context"
	"runtime/debug"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"golang.org/x/sync/errgroup"
)

// Group is an errgroup whose goroutines are named and recover from panics.
type Group struct {
	*errgroup.Group
	logger logger.Logger
}

func WithContext(ctx context.Context, loggerInstance logger.Logger) (*Group, context.Context) {
	newBaseErrgroup, errgroupCtx := errgroup.WithContext(ctx)

	return &Group{
		Group:  newBaseErrgroup,
		logger: loggerInstance,
	}, errgroupCtx
}

func (g *Group) Go(actionName string, f func() error) {
	wrapper := func() (err error) {
		defer func() {
			if recoveredErr := recover(); recoveredErr != nil {
				g.logger.ErrorWith("Panic caught while running action",
					"action", actionName,
					"err", recoveredErr,
					"stack", string(debug.Stack()))
				err = errors.Errorf("Panic in %s: %v", actionName, recoveredErr)
			}
		}()
		err = f()
		return
	}
	g.Group.Go(wrapper)
}
