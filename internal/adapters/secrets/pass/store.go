package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync/atomic"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
)

var (
	ErrUnavailable    = errors.New("pass command unavailable")
	ErrNotInitialized = errors.New("password store is not initialized")
)

const (
	notInStoreMarker = "is not in the password store"
	emptyStoreMarker = "password store is empty"
	noGPGIDMarker    = "You must run:"
)

// CommandError is a failed pass invocation.
type CommandError struct {
	Op     string
	Key    string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	target := "pass " + e.Op
	if e.Key != "" {
		target += fmt.Sprintf(" %q", e.Key)
	}
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", target, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", target, e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps credentials in the user's pass(1) password store. Once pass
// turns out to be missing the store stops shelling out and fails fast.
type Store struct {
	run     runFunc
	missing atomic.Bool
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	_, err := s.exec(ctx, "put", key, value+"\n", "insert", "--multiline", "--force", key)
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	stdout, err := s.exec(ctx, "get", key, "", "show", key)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(stdout, "\r\n"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.exec(ctx, "delete", key, "", "rm", "--force", key)
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return nil
	}
	return err
}

// Probe checks that pass is installed and its store has been initialized.
func (s *Store) Probe(ctx context.Context) error {
	_, err := s.exec(ctx, "probe", "", "", "ls")
	return err
}

func (s *Store) exec(ctx context.Context, op, key, input string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.missing.Load() {
		return "", &CommandError{Op: op, Key: key, Err: ErrUnavailable}
	}

	stdout, stderr, err := s.run(ctx, input, args...)
	if err == nil {
		return stdout, nil
	}

	switch {
	case errors.Is(err, ErrUnavailable):
		s.missing.Store(true)
	case strings.Contains(stderr, notInStoreMarker):
		err = fmt.Errorf("%w: %w", domain.ErrCredentialNotFound, err)
	case strings.Contains(stderr, emptyStoreMarker), strings.Contains(stderr, noGPGIDMarker):
		err = fmt.Errorf("%w: %w", ErrNotInitialized, err)
	}

	return "", &CommandError{Op: op, Key: key, Stderr: stderr, Err: err}
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
