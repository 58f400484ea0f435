/*
Copyright 2020 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package gomock holds gomock matchers shared by the service tests.
package gomock

import (
	"context"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

type (
	cmpMatcher struct {
		x    interface{}
		diff string
	}

	errStrEq struct {
		expected string
		actual   string
	}

	contextMatcher struct {
		actual interface{}
	}
)

// DiffEq will verify cmp.Diff(expected, actual) == "" using github.com/google/go-cmp/cmp.
func DiffEq(x interface{}) gomock.Matcher {
	return &cmpMatcher{
		x: x,
	}
}

func (c *cmpMatcher) Matches(x interface{}) bool {
	c.diff = cmp.Diff(x, c.x)
	return c.diff == ""
}

func (c *cmpMatcher) String() string {
	want := fmt.Sprintf("is equal to %v", c.x)
	if c.diff != "" {
		want = fmt.Sprintf("%s, but difference is %s", want, c.diff)
	}
	return want
}

// ErrStrEq will verify the string matches error.Error().
func ErrStrEq(expected string) gomock.Matcher {
	return &errStrEq{
		expected: expected,
	}
}

func (e *errStrEq) Matches(y interface{}) bool {
	err, ok := y.(error)
	if !ok {
		return false
	}
	e.actual = err.Error()
	return e.expected == e.actual
}

func (e *errStrEq) String() string {
	return fmt.Sprintf("error.Error() %q, but got %q", e.expected, e.actual)
}

// AContext matches any context.Context.
func AContext() gomock.Matcher {
	return &contextMatcher{}
}

func (e *contextMatcher) Matches(y interface{}) bool {
	_, ok := y.(context.Context)
	e.actual = y
	return ok
}

func (e *contextMatcher) String() string {
	return fmt.Sprintf("expected a context.Context, but got %T", e.actual)
}
