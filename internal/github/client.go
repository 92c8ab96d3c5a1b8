package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"

	"github.com/douhashi/ghlabel/internal/logger"
)

// DefaultAPIVersion is the GitHub REST API version requested when no
// explicit version is configured.
const DefaultAPIVersion = "2022-11-28"

// Client wraps the GitHub API client for issue label operations.
// Issues and pull requests share the same id space, so every method
// works for both.
type Client struct {
	github *github.Client
}

type clientOptions struct {
	apiVersion string
	baseURL    string
	logger     logger.Logger
	transport  http.RoundTripper
}

// Option configures the Client.
type Option func(*clientOptions)

// WithAPIVersion sets the X-GitHub-Api-Version header value.
func WithAPIVersion(version string) Option {
	return func(o *clientOptions) {
		o.apiVersion = version
	}
}

// WithBaseURL points the client at a non-default API endpoint,
// e.g. a GitHub Enterprise Server instance.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithLogger enables request/response logging through the given logger.
func WithLogger(log logger.Logger) Option {
	return func(o *clientOptions) {
		o.logger = log
	}
}

// WithTransport replaces the underlying HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// NewClient creates a new GitHub API client authenticated with token.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}

	options := &clientOptions{
		apiVersion: DefaultAPIVersion,
		transport:  http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(options)
	}

	var rt http.RoundTripper = &apiVersionTransport{
		base:    options.transport,
		version: options.apiVersion,
	}
	if options.logger != nil {
		rt = &loggingRoundTripper{base: rt, logger: options.logger}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: rt})
	tc := oauth2.NewClient(ctx, ts)

	gh := github.NewClient(tc)
	if options.baseURL != "" {
		u, err := url.Parse(options.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
	}

	return &Client{
		github: gh,
	}, nil
}

// validateTarget checks that the target reference is complete.
func validateTarget(owner, repo string, number int) error {
	if owner == "" {
		return errors.New("owner is required")
	}
	if repo == "" {
		return errors.New("repo is required")
	}
	if number <= 0 {
		return errors.New("object id must be a positive integer")
	}
	return nil
}

// ListLabels returns the names of the labels currently attached to an
// issue or pull request.
func (c *Client) ListLabels(ctx context.Context, owner, repo string, number int) ([]string, error) {
	if err := validateTarget(owner, repo, number); err != nil {
		return nil, err
	}

	labels, _, err := c.github.Issues.ListLabelsByIssue(ctx, owner, repo, number, &github.ListOptions{
		PerPage: 100,
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return labelNames(labels), nil
}

// AddLabels appends the given labels to an issue or pull request and
// returns the resulting label list. Labels already attached are left
// as they are.
func (c *Client) AddLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]string, error) {
	if err := validateTarget(owner, repo, number); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, errors.New("labels are required")
	}

	added, _, err := c.github.Issues.AddLabelsToIssue(ctx, owner, repo, number, labels)
	if err != nil {
		return nil, classifyError(err)
	}

	return labelNames(added), nil
}

// RemoveLabel detaches a single named label from an issue or pull request.
func (c *Client) RemoveLabel(ctx context.Context, owner, repo string, number int, label string) error {
	if err := validateTarget(owner, repo, number); err != nil {
		return err
	}
	if label == "" {
		return errors.New("label is required")
	}

	_, err := c.github.Issues.RemoveLabelForIssue(ctx, owner, repo, number, label)
	if err != nil {
		return classifyError(err)
	}

	return nil
}

// ReplaceLabels replaces the entire label set of an issue or pull request
// with exactly the given labels. An empty list removes all labels.
func (c *Client) ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]string, error) {
	if err := validateTarget(owner, repo, number); err != nil {
		return nil, err
	}

	// A nil slice would serialize as JSON null instead of an empty array.
	if labels == nil {
		labels = []string{}
	}

	replaced, _, err := c.github.Issues.ReplaceLabelsForIssue(ctx, owner, repo, number, labels)
	if err != nil {
		return nil, classifyError(err)
	}

	return labelNames(replaced), nil
}

// labelNames extracts the label names from the API representation.
func labelNames(labels []*github.Label) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		if label.Name != nil {
			names = append(names, *label.Name)
		}
	}
	return names
}
