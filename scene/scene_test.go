/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goturtle/turtle"
)

const squareScene = `{
  "name": "square",
  "commands": [
    {"op": "moveto", "x": 100, "y": 100},
    {"op": "setcolor", "r": 255, "g": 0, "b": 0},
    {"op": "forward", "dist": 50},
    {"op": "turn", "deg": 90},
    {"op": "forward", "dist": 50},
    {"op": "turn", "deg": 90},
    {"op": "forward", "dist": 50},
    {"op": "turn", "deg": 90},
    {"op": "forward", "dist": 50}
  ]
}`

func TestParseAndPlay(t *testing.T) {
	s, err := Parse([]byte(squareScene))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if s.Name != "square" || len(s.Commands) != 9 {
		t.Fatalf("parsed %q with %d commands", s.Name, len(s.Commands))
	}

	tt := s.Play()
	x, y := tt.Position()
	if int(x) != 100 || int(y) != 100 {
		t.Fatalf("square did not close: (%v, %v)", x, y)
	}
	segments := 0
	for ls := tt.Lines(); ; {
		ln, ok := ls.Next()
		if !ok {
			break
		}
		if ln.Color != (turtle.Color{R: 255, G: 0, B: 0}) {
			t.Fatalf("segment color %+v, want red", ln.Color)
		}
		segments++
	}
	if segments != 4 {
		t.Fatalf("played %d segments, want 4", segments)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	if err := os.WriteFile(path, []byte(squareScene), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Name != "square" {
		t.Fatalf("loaded scene %q", s.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseRejectsUnknownOp(t *testing.T) {
	bad := `{"name": "x", "commands": [{"op": "teleport", "x": 1, "y": 2}]}`
	_, err := Parse([]byte(bad))
	if err == nil {
		t.Fatalf("unknown op accepted")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Fatalf("error %q does not mention the schema", err)
	}
}

func TestParseRejectsColorOutOfRange(t *testing.T) {
	bad := `{"name": "x", "commands": [{"op": "setcolor", "r": 300, "g": 0, "b": 0}]}`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatalf("out-of-range channel accepted")
	}
}

func TestParseRejectsMissingName(t *testing.T) {
	bad := `{"commands": []}`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatalf("scene without a name accepted")
	}
}
