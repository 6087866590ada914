// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"strings"

	"github.com/walteh/neatify/pkg/catalog"
)

// 🔌 Stage is one line-oriented text transform.
//
// Apply is pure and idempotent: applying a stage to its own output returns the
// same content and leaves the returned file's modified flag untouched.
type Stage interface {
	// Name identifies the stage in logs and reports
	Name() string
	// Apply returns the transformed content and the file with the modified flag OR'd in
	Apply(content string, file catalog.File) (string, catalog.File)
}

// 📦 Result holds the outcome of running a pipeline over one file
type Result struct {
	OriginalContent string
	ModifiedContent string
	File            catalog.File
	Changed         []string // Names of the stages that set the modified flag
}

// ContentChanged reports whether the final bytes differ from the original.
func (r *Result) ContentChanged() bool {
	return r.OriginalContent != r.ModifiedContent
}

// 🔄 Pipeline applies stages in a fixed order
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a pipeline that runs stages in the given order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Run threads content and file through every stage.
func (p *Pipeline) Run(content string, file catalog.File) *Result {
	result := &Result{
		OriginalContent: content,
	}

	current := content
	for _, stage := range p.stages {
		fresh := file
		fresh.IsModified = false

		var touched catalog.File
		current, touched = stage.Apply(current, fresh)
		if touched.IsModified {
			result.Changed = append(result.Changed, stage.Name())
		}
		file = touched.MarkModified(file.IsModified)
	}

	result.ModifiedContent = current
	result.File = file
	return result
}

// splitLines splits on line feeds, dropping the empty element a terminal line
// feed would produce. Carriage returns stay part of the line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
