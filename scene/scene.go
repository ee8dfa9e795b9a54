/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scene loads small JSON turtle programs and plays them back onto a
// fresh turtle. Files are validated against an embedded JSON schema before
// unmarshalling so malformed programs fail with a proper message instead of
// drawing garbage. A scene is program input, not a serialized op log.
package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"goturtle/turtle"
)

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "goturtle scene",
  "type": "object",
  "required": ["name", "commands"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "commands": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["op"],
        "properties": {
          "op": {"enum": ["forward", "turn", "moveto", "setcolor"]},
          "dist": {"type": "integer"},
          "deg": {"type": "number"},
          "x": {"type": "integer"},
          "y": {"type": "integer"},
          "r": {"type": "integer", "minimum": 0, "maximum": 255},
          "g": {"type": "integer", "minimum": 0, "maximum": 255},
          "b": {"type": "integer", "minimum": 0, "maximum": 255}
        },
        "additionalProperties": false
      }
    }
  }
}`

// Command is one step of a scene program. Fields beyond Op are meaningful
// per operation: dist for forward, deg for turn, x/y for moveto, r/g/b for
// setcolor.
type Command struct {
	Op   string  `json:"op"`
	Dist int     `json:"dist,omitempty"`
	Deg  float32 `json:"deg,omitempty"`
	X    int     `json:"x,omitempty"`
	Y    int     `json:"y,omitempty"`
	R    uint8   `json:"r,omitempty"`
	G    uint8   `json:"g,omitempty"`
	B    uint8   `json:"b,omitempty"`
}

// Scene is a named turtle program.
type Scene struct {
	Name     string    `json:"name"`
	Commands []Command `json:"commands"`
}

// Parse validates data against the scene schema and unmarshals it.
func Parse(data []byte) (*Scene, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate scene: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("scene does not conform to schema: %s", strings.Join(msgs, "; "))
	}
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Play replays the program onto a fresh turtle and returns it.
func (s *Scene) Play() *turtle.Turtle {
	t := turtle.New()
	for _, c := range s.Commands {
		switch c.Op {
		case "forward":
			t.Forward(c.Dist)
		case "turn":
			t.Turn(c.Deg)
		case "moveto":
			t.MoveTo(c.X, c.Y)
		case "setcolor":
			t.SetColor(c.R, c.G, c.B)
		}
	}
	return t
}
