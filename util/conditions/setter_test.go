/*
Copyright 2024 The Kubernetes Authors.

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

package conditions

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
)

type fakeSetter struct {
	conditions infrav1.Conditions
}

func (f *fakeSetter) GetConditions() infrav1.Conditions { return f.conditions }

func (f *fakeSetter) SetConditions(c infrav1.Conditions) { f.conditions = c }

func withClock(t *testing.T, times ...time.Time) {
	t.Helper()
	prev := now
	t.Cleanup(func() { now = prev })
	i := 0
	now = func() time.Time {
		ts := times[i]
		if i < len(times)-1 {
			i++
		}
		return ts
	}
}

func TestSet(t *testing.T) {
	g := NewWithT(t)
	first := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	third := second.Add(time.Hour)
	withClock(t, first, second, third)

	s := &fakeSetter{}
	MarkFalse(s, infrav1.VMRunningCondition, infrav1.CreatingReason, infrav1.ConditionSeverityInfo, "%s creating", "virtualmachine")
	g.Expect(s.conditions).To(HaveLen(1))
	g.Expect(s.conditions[0].Message).To(Equal("virtualmachine creating"))
	g.Expect(s.conditions[0].LastTransitionTime).To(Equal(first))

	// same status, new reason: transition time is kept
	MarkFalse(s, infrav1.VMRunningCondition, infrav1.FailedReason, infrav1.ConditionSeverityError, "boom")
	g.Expect(s.conditions[0].Reason).To(Equal(infrav1.FailedReason))
	g.Expect(s.conditions[0].LastTransitionTime).To(Equal(first))

	MarkTrue(s, infrav1.VMRunningCondition)
	g.Expect(s.conditions).To(HaveLen(1))
	g.Expect(s.conditions[0].Status).To(Equal(infrav1.ConditionTrue))
	g.Expect(s.conditions[0].LastTransitionTime).To(Equal(second))

	MarkTrue(s, infrav1.DiskReadyCondition)
	g.Expect(s.conditions).To(HaveLen(2))
	g.Expect(s.conditions.IsTrue(infrav1.DiskReadyCondition)).To(BeTrue())
}

func TestDelete(t *testing.T) {
	g := NewWithT(t)

	s := &fakeSetter{conditions: infrav1.Conditions{
		{Type: infrav1.VMRunningCondition, Status: infrav1.ConditionTrue},
		{Type: infrav1.ConfigurationDriftedCondition, Status: infrav1.ConditionTrue},
	}}
	Delete(s, infrav1.ConfigurationDriftedCondition)
	g.Expect(s.conditions).To(HaveLen(1))
	g.Expect(s.conditions.Get(infrav1.ConfigurationDriftedCondition)).To(BeNil())

	Delete(nil, infrav1.VMRunningCondition)
}
