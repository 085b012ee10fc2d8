/*
	Copyright 2025 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package testutil

import (
	"testing"

	"github.com/cuioss/cui-jsf-components-sub005/notation"
)

func TestPropertyComparator(t *testing.T) {
	for _, test := range []struct {
		description string
		comparator  *PropertyComparator
		different   bool
	}{{
		description: "equal simple properties",
		comparator: NewPropertyComparator().
			WithTestProperties(notation.NewObject("").AddProperty("greeting", notation.NewString("hello"))).
			WithWantProperties(notation.NewProperty("greeting", notation.NewString("hello"))),
	}, {
		description: "order dependence",
		comparator: NewPropertyComparator().
			WithTestProperties(
				notation.NewObject("").
					AddProperty("greeting", notation.NewString("hello")).
					AddProperty("tuba_count", notation.NewInteger(5)),
			).
			WithWantProperties(
				notation.NewProperty("tuba_count", notation.NewInteger(5)),
				notation.NewProperty("greeting", notation.NewString("hello")),
			),
		different: true,
	}, {
		description: "redefinition across providers",
		comparator: NewPropertyComparator().
			WithTestProperties(
				notation.NewObject("").AddProperty("cowbell_count", notation.NewInteger(5)),
				notation.NewObject("").AddProperty("cowbell_count", notation.NewInteger(10)),
			).
			WithWantProperties(
				notation.NewProperty("cowbell_count", notation.NewInteger(10)),
			),
	}, {
		description: "absent properties are ignored",
		comparator: NewPropertyComparator().
			WithTestProperties(
				notation.NewObject("").
					AddProperty("greeting", notation.StringOf(nil)).
					AddProperty("cowbell_count", notation.NewInteger(10)),
			).
			WithWantProperties(
				notation.NewProperty("cowbell_count", notation.NewInteger(10)),
			),
	}, {
		description: "unequal (numeric version)",
		comparator: NewPropertyComparator().
			WithTestProperties(
				notation.NewObject("").AddProperty("cowbell_count", notation.NewInteger(10)),
			).
			WithWantProperties(
				notation.NewProperty("cowbell_count", notation.NewDouble(10)),
			),
		different: true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			gotMsg, different := test.comparator.Compare(t)
			if test.different != different {
				t.Errorf("Compare() yielded unexpected return message '%s'", gotMsg)
			}
		})
	}
}
