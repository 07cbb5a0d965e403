// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package retry runs management-plane operations with bounded retries and
// exponential backoff. Only transient failures (throttling, service
// unavailability, transport errors) are retried; everything else surfaces
// immediately. The error returned after exhaustion is the operation's own
// last error, not a wrapper, so callers handle one error shape regardless
// of how many attempts were made.
package retry

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	goretry "github.com/sethvargo/go-retry"
)

// Operation performs a single attempt of a retryable call.
type Operation[T any] func(ctx context.Context) (T, error)

// retryableMarkers contains error message fragments that indicate a
// transient failure when no HTTP status code is available.
var retryableMarkers = []string{
	"429",
	"too many requests",
	"503",
	"service unavailable",
	"timeout",
	"timed out",
	"deadline exceeded",
	"connection reset",
	"connection refused",
}

// Execute invokes op until it succeeds, fails with a non-retryable error, or
// maxRetries additional attempts after the first have been spent. maxRetries
// of zero means a single attempt with no retry. label appears only in
// diagnostic log output.
//
// The wait before retry n (counting from 1) is 2^n seconds, replaced by the
// Retry-After header value when a throttled (429) response carries one, plus
// up to a quarter of the base wait of random jitter.
func Execute[T any](ctx context.Context, label string, maxRetries uint64, op Operation[T]) (T, error) {
	var result T

	state := &backoffState{label: label, maxRetries: maxRetries}
	backoff := goretry.WithMaxRetries(maxRetries, goretry.BackoffFunc(state.next))

	err := goretry.Do(ctx, backoff, func(ctx context.Context) error {
		value, err := op(ctx)
		if err != nil {
			if IsRetryable(err) {
				state.lastErr = err
				return goretry.RetryableError(err)
			}
			return err
		}

		result = value
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// backoffState carries the retry counter and the most recent transient error
// across backoff computations for a single Execute call.
type backoffState struct {
	label      string
	maxRetries uint64
	attempt    uint64
	lastErr    error
}

func (s *backoffState) next() (time.Duration, bool) {
	s.attempt++
	wait := delayFor(s.attempt, s.lastErr)
	log.Printf(
		"%s: transient failure, waiting %s before retry %d of %d: %v",
		s.label,
		wait.Round(time.Millisecond),
		s.attempt,
		s.maxRetries,
		s.lastErr,
	)
	return wait, false
}

// delayFor computes the wait before retry number attempt (starting at 1).
// The base is 2^attempt seconds, or the server-provided Retry-After value
// when the error is a throttled response carrying one. Jitter is uniform in
// [0, max(1, base/4)) seconds.
func delayFor(attempt uint64, err error) time.Duration {
	baseSeconds := int64(1) << attempt
	if seconds, ok := retryAfterSeconds(err); ok {
		baseSeconds = seconds
	}

	jitterBound := baseSeconds / 4
	if jitterBound < 1 {
		jitterBound = 1
	}
	jitter := time.Duration(rand.Float64() * float64(jitterBound) * float64(time.Second))

	return time.Duration(baseSeconds)*time.Second + jitter
}

// retryAfterSeconds extracts the integer-seconds Retry-After value from a
// throttled response. Other status codes and HTTP-date values are ignored.
func retryAfterSeconds(err error) (int64, bool) {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return 0, false
	}
	if respErr.StatusCode != http.StatusTooManyRequests || respErr.RawResponse == nil {
		return 0, false
	}

	header := respErr.RawResponse.Header.Get("Retry-After")
	if header == "" {
		return 0, false
	}
	seconds, parseErr := strconv.ParseInt(header, 10, 64)
	if parseErr != nil || seconds < 0 {
		return 0, false
	}
	return seconds, true
}

// IsRetryable reports whether err represents a transient failure: a
// throttled or unavailable service response, a transport-level network
// error, or an error whose text matches a known transient pattern.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		if respErr.StatusCode == http.StatusTooManyRequests ||
			respErr.StatusCode == http.StatusServiceUnavailable {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	text := strings.ToLower(err.Error())
	for _, marker := range retryableMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}
