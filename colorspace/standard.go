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

//go:generate go tool stringer -type=Standard

// Standard selects a colorimetry standard: a luma matrix and a digital range.
type Standard int

const (
	// FullRange is the JPEG / ITU-T T.871 matrix (Rf=0.299, Bf=0.114) with
	// luma and chroma spanning 0..255.
	FullRange Standard = iota

	// BT601 is the ITU-R BT.601 matrix (Rf=0.299, Bf=0.114) in studio range:
	// luma 16..235, chroma 16..240.
	BT601

	// BT709 is the ITU-R BT.709 matrix (Rf=0.2126, Bf=0.0722) in studio
	// range: luma 16..235, chroma 16..240.
	BT709

	numStandards int = iota
)

// Standards lists every supported standard in enumeration order.
var Standards = []Standard{FullRange, BT601, BT709}

// Valid reports whether s is one of the supported standards.
func (s Standard) Valid() bool {
	return s >= 0 && int(s) < numStandards
}
