/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package lsystem expands deterministic context-free string rewriting
// systems and walks the result on a turtle. It backs the fractal demo
// programs; the turtle core does not depend on it.
package lsystem

import (
	"strings"
	"unicode"

	"goturtle/turtle"
)

// System is an L-system: an axiom and one rewrite rule per symbol. Symbols
// without a rule are copied through unchanged.
type System struct {
	Axiom string
	Rules map[rune]string
}

// Expand applies the rules n times to the axiom and returns the final
// state. n <= 0 returns the axiom itself.
func (s System) Expand(n int) string {
	state := s.Axiom
	for i := 0; i < n; i++ {
		var b strings.Builder
		b.Grow(len(state) * 2)
		for _, c := range state {
			if r, ok := s.Rules[c]; ok {
				b.WriteString(r)
			} else {
				b.WriteRune(c)
			}
		}
		state = b.String()
	}
	return state
}

// Draw walks an expanded state on t: every letter steps forward, '+' turns
// left by angle degrees, '-' turns right. Anything else is ignored, so
// bracketless systems can carry markers through their rules.
func Draw(t *turtle.Turtle, state string, step int, angle float32) {
	for _, c := range state {
		switch {
		case c == '+':
			t.Turn(-angle)
		case c == '-':
			t.Turn(angle)
		case unicode.IsLetter(c):
			t.Forward(step)
		}
	}
}

// Letters reports how many drawing symbols the state contains, which is
// exactly the number of segments Draw will emit.
func Letters(state string) int {
	n := 0
	for _, c := range state {
		if unicode.IsLetter(c) {
			n++
		}
	}
	return n
}
