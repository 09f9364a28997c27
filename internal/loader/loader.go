// Package loader reads JSON documents from disk into the generic go types
// jsoncmp compares. Failures keep "couldn't read the file" distinguishable
// from "the file isn't valid JSON" so callers can report them differently;
// a partially-decoded document is never returned.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnreadable wraps missing-file & I/O failures
	ErrUnreadable = errors.New("unreadable document")
	// ErrMalformed wraps JSON syntax failures
	ErrMalformed = errors.New("malformed document")
)

// Load reads & parses one UTF-8 JSON document. Errors wrap ErrUnreadable or
// ErrMalformed, check with errors.Is.
func Load(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadable, path, err)
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, path, err)
	}
	// a document is exactly one JSON value, reject trailing content
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w %s: trailing data after document", ErrMalformed, path)
	}
	return doc, nil
}

// LoadPair reads both documents concurrently. The two reads are independent
// & share nothing, the first failure wins and cancels nothing else since
// both are plain file reads.
func LoadPair(ctx context.Context, leftPath, rightPath string) (left, right interface{}, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = Load(leftPath)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = Load(rightPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
