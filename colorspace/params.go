// Copyright 2025 go-highway Authors
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

package colorspace

// Params is the analog definition of a standard.
type Params struct {
	// Luma weights of red and blue. The green weight is 1 - Rf - Bf.
	Rf, Bf float64

	// Digital luma range.
	YMin, YMax float64

	// Digital chroma span: 255 for full range, 224 (16..240) for studio.
	ChromaSpan float64
}

// Analog definitions, indexed by Standard.
var params = [numStandards]Params{
	FullRange: {Rf: 0.299, Bf: 0.114, YMin: 0, YMax: 255, ChromaSpan: 255},
	BT601:     {Rf: 0.299, Bf: 0.114, YMin: 16, YMax: 235, ChromaSpan: 224},
	BT709:     {Rf: 0.2126, Bf: 0.0722, YMin: 16, YMax: 235, ChromaSpan: 224},
}

// ParamsFor returns the analog definition of s.
// It panics if s is not a valid standard.
func ParamsFor(s Standard) Params {
	return params[s]
}

// Gf returns the green luma weight.
func (p Params) Gf() float64 {
	return 1 - p.Rf - p.Bf
}
