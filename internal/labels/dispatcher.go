package labels

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/douhashi/ghlabel/internal/logger"
)

// IssueLabelService is the tracker-side capability the dispatcher drives.
// It is satisfied by github.Client and mocked in tests.
type IssueLabelService interface {
	ListLabels(ctx context.Context, owner, repo string, number int) ([]string, error)
	AddLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]string, error)
	RemoveLabel(ctx context.Context, owner, repo string, number int, label string) error
	ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]string, error)
}

// TargetRef identifies the issue or pull request whose labels are managed.
type TargetRef struct {
	Owner      string
	Repository string
	Number     int
}

// Validate checks that the target reference is fully resolved.
func (t TargetRef) Validate() error {
	if t.Owner == "" {
		return errors.New("owner is required")
	}
	if t.Repository == "" {
		return errors.New("repository is required")
	}
	if t.Number <= 0 {
		return errors.New("object id must be a positive integer")
	}
	return nil
}

// Result is the outcome of a reconciliation: the labels attached to the
// object after the operation.
type Result struct {
	Labels []string `json:"labels"`
}

// Dispatcher maps an operation plus label list onto the correct sequence
// of tracker API calls. Inputs are validated before any network I/O.
type Dispatcher struct {
	service IssueLabelService
	logger  logger.Logger
}

// NewDispatcher creates a new Dispatcher. A nil logger disables logging.
func NewDispatcher(service IssueLabelService, log logger.Logger) (*Dispatcher, error) {
	if service == nil {
		return nil, errors.New("label service is required")
	}
	if log == nil {
		log = &nopLogger{}
	}
	return &Dispatcher{
		service: service,
		logger:  log,
	}, nil
}

// Dispatch performs one reconciliation and returns the resulting label
// list. Every failure is terminal; nothing is retried.
func (d *Dispatcher) Dispatch(ctx context.Context, op Operation, target TargetRef, labelSet []string) (*Result, error) {
	if _, err := ParseOperation(string(op)); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if op.RequiresLabels() && len(labelSet) == 0 {
		return nil, fmt.Errorf("%w for operation %q", ErrMissingLabels, op)
	}

	d.logger.Debug("dispatching label operation",
		"operation", op.String(),
		"owner", target.Owner,
		"repository", target.Repository,
		"object_id", target.Number,
		"labels", labelSet,
	)

	switch op {
	case OperationAdd:
		current, err := d.service.AddLabels(ctx, target.Owner, target.Repository, target.Number, labelSet)
		if err != nil {
			return nil, err
		}
		return &Result{Labels: current}, nil

	case OperationRemove:
		return d.removeAll(ctx, target, labelSet)

	case OperationSet:
		current, err := d.service.ReplaceLabels(ctx, target.Owner, target.Repository, target.Number, labelSet)
		if err != nil {
			return nil, err
		}
		return &Result{Labels: current}, nil

	case OperationClear:
		// The labels input is ignored; an empty replace-all empties the set.
		current, err := d.service.ReplaceLabels(ctx, target.Owner, target.Repository, target.Number, []string{})
		if err != nil {
			return nil, err
		}
		return &Result{Labels: current}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, op)
}

// removeAll detaches each label with an independent API call; the labels
// sub-resource only removes one label per request. Every label is
// attempted even after a failure, and all failures are reported together.
func (d *Dispatcher) removeAll(ctx context.Context, target TargetRef, labelSet []string) (*Result, error) {
	var removeErr error
	for _, label := range labelSet {
		if err := d.service.RemoveLabel(ctx, target.Owner, target.Repository, target.Number, label); err != nil {
			d.logger.Warn("failed to remove label",
				"label", label,
				"error", err.Error(),
			)
			removeErr = multierr.Append(removeErr, fmt.Errorf("remove label %q: %w", label, err))
		}
	}
	if removeErr != nil {
		return nil, removeErr
	}

	current, err := d.service.ListLabels(ctx, target.Owner, target.Repository, target.Number)
	if err != nil {
		return nil, err
	}
	return &Result{Labels: current}, nil
}

// nopLogger discards all log output.
type nopLogger struct{}

func (n *nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *nopLogger) WithFields(keysAndValues ...interface{}) logger.Logger {
	return n
}
