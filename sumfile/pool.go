package sumfile

import (
	"github.com/p7r0x7/fingerprint"
	"github.com/pkg/errors"
	"io"
	"sync"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Job names one message to hash and how to read it.
type Job struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Result is the outcome of one Job. Elapsed covers opening, reading, and hashing.
type Result struct {
	Sum     [fingerprint.Size]byte
	Elapsed time.Duration
	Err     error
}

// Run hashes jobs on up to workers goroutines, each reusing one Digest. emit is called on the
// calling goroutine once per job, strictly in job order, as soon as that job and every job before
// it have finished.
func Run(jobs []Job, workers int, emit func(dex int, r Result)) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	results := make([]Result, len(jobs))
	done := make([]chan struct{}, len(jobs))
	for i := range done {
		done[i] = make(chan struct{})
	}

	ch := make(chan int, workers*2)
	var working sync.WaitGroup
	working.Add(workers)
	for i := workers; i > 0; i-- {
		go func() {
			defer working.Done()
			d := fingerprint.New()
			for dex := range ch {
				d.Reset()
				results[dex] = hashOne(d, jobs[dex])
				close(done[dex])
			}
		}()
	}
	go func() {
		for dex := range jobs {
			ch <- dex
		}
		close(ch)
	}()

	for dex := range jobs {
		<-done[dex]
		emit(dex, results[dex])
	}
	working.Wait()
}

func hashOne(d *fingerprint.Digest, j Job) (r Result) {
	start := time.Now()
	defer func() { r.Elapsed = time.Since(start) }()

	f, err := j.Open()
	if err != nil {
		r.Err = errors.WithStack(err)
		return r
	}
	_, err = io.Copy(d, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		r.Err = errors.WithStack(err)
		return r
	}

	s, err := d.Finish()
	if err != nil {
		r.Err = err
		return r
	}
	r.Sum = s.Bytes()
	return r
}
