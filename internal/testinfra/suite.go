//go:build integration

package testinfra

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// TestSuite holds the containers an integration run needs: a stubbed backend
// and, optionally, a broker for the audit trail.
type TestSuite struct {
	Wiremock *WiremockContainer
	Kafka    *KafkaContainer
}

type SuiteOptions struct {
	MappingsPath string
	WithKafka    bool
}

// NewTestSuite starts the containers in parallel.
func NewTestSuite(ctx context.Context, opts SuiteOptions) (*TestSuite, error) {
	suite := &TestSuite{}
	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		w, err := NewWiremock(ctx, opts.MappingsPath)
		if err != nil {
			errCh <- fmt.Errorf("wiremock: %w", err)
			return
		}
		suite.Wiremock = w
	}()

	if opts.WithKafka {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k, err := NewKafka(ctx)
			if err != nil {
				errCh <- fmt.Errorf("kafka: %w", err)
				return
			}
			suite.Kafka = k
		}()
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		suite.Cleanup(ctx)
		return nil, fmt.Errorf("failed to start containers: %w", errors.Join(errs...))
	}

	return suite, nil
}

func (s *TestSuite) Cleanup(ctx context.Context) {
	if s.Wiremock != nil {
		s.Wiremock.Cleanup(ctx)
	}
	if s.Kafka != nil {
		s.Kafka.Cleanup(ctx)
	}
}
