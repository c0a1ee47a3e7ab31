// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "sync"

// Reporter is used to accumulate and report errors during compilation.
// Processes can decide to report an error but continue processing rather than
// fail outright. The final error set can then be shown to the user.
type Reporter interface {
	// Report adds the given record to the set. If this method returns an error
	// then the given error is considered fatal.
	Report(Exception) Exception
	// Reported returns the set of accumulated exceptions.
	Reported() []Exception
	// Fatal returns the subset of Reported that is not marked non-fatal.
	Fatal() []Exception
	// IsFatal reports whether e would fail the compilation.
	IsFatal(e Exception) bool
}

// NewReporter returns a concurrent-safe implementation of Reporter.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporterLock{
		Reporter: &reporter{
			nonFatal: nf,
		},
		lock: &sync.Mutex{},
	}
}

type reporter struct {
	reported []Exception
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	return r.reported
}

func (r *reporter) Fatal() []Exception {
	var out []Exception
	for _, e := range r.reported {
		if r.IsFatal(e) {
			out = append(out, e)
		}
	}
	return out
}

func (r *reporter) IsFatal(e Exception) bool {
	return !r.nonFatal[e.Code()]
}

type reporterLock struct {
	Reporter
	lock sync.Locker
}

func (r *reporterLock) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Report(e)
}

func (r *reporterLock) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Exception(nil), r.Reporter.Reported()...)
}

func (r *reporterLock) Fatal() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Fatal()
}

func (r *reporterLock) IsFatal(e Exception) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.IsFatal(e)
}
