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

// Package conditions sets the status conditions held by a node.
package conditions

import (
	"fmt"
	"time"

	infrav1 "github.com/cloudify-cosmo/cloudify-azure-plugin/api/v1alpha1"
)

// Setter is an object holding conditions.
type Setter interface {
	GetConditions() infrav1.Conditions
	SetConditions(infrav1.Conditions)
}

// now is replaced in tests.
var now = time.Now

// Set sets condition on to, replacing any condition of the same type. The last
// transition time only moves when the status changes.
func Set(to Setter, condition *infrav1.Condition) {
	if to == nil || condition == nil {
		return
	}

	conditions := to.GetConditions()
	c := *condition
	if existing := conditions.Get(c.Type); existing != nil {
		if existing.Status == c.Status {
			c.LastTransitionTime = existing.LastTransitionTime
		} else {
			c.LastTransitionTime = now().UTC().Truncate(time.Second)
		}
		*existing = c
		to.SetConditions(conditions)
		return
	}

	c.LastTransitionTime = now().UTC().Truncate(time.Second)
	to.SetConditions(append(conditions, c))
}

// MarkTrue sets the condition of type t to true.
func MarkTrue(to Setter, t infrav1.ConditionType) {
	Set(to, &infrav1.Condition{Type: t, Status: infrav1.ConditionTrue})
}

// MarkFalse sets the condition of type t to false with a reason, a severity and a message.
func MarkFalse(to Setter, t infrav1.ConditionType, reason string, severity infrav1.ConditionSeverity, messageFormat string, messageArgs ...interface{}) {
	Set(to, &infrav1.Condition{
		Type:     t,
		Status:   infrav1.ConditionFalse,
		Reason:   reason,
		Severity: severity,
		Message:  fmt.Sprintf(messageFormat, messageArgs...),
	})
}

// Delete removes the condition of type t.
func Delete(to Setter, t infrav1.ConditionType) {
	if to == nil {
		return
	}
	conditions := to.GetConditions()
	kept := make(infrav1.Conditions, 0, len(conditions))
	for _, c := range conditions {
		if c.Type != t {
			kept = append(kept, c)
		}
	}
	to.SetConditions(kept)
}
